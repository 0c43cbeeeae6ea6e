package services

import (
	"errors"
	"fmt"
	"time"

	"jobboard-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
)

// token roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(subjectID uint, role string) (string, time.Time, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService signs and verifies HS256 tokens
type JWTService struct {
	secretKey string
	issuer    string
	expiry    time.Duration
}

// JWTClaims carries the verified subject and its identity class
type JWTClaims struct {
	SubjectID uint   `json:"subject_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "jobboard-http-service",
		expiry:    cfg.JWTExpiry(),
	}
}

// 1 GenerateToken issues a token for subjectID with role
func (s *JWTService) GenerateToken(subjectID uint, role string) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.expiry)

	claims := &JWTClaims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expirationTime, nil
}

// 2 ValidateToken parses and verifies tokenString
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3 ExtractClaims validates tokenString and returns its claims
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Issuer != s.issuer {
		return nil, errors.New("invalid token issuer")
	}
	if claims.Role != RoleAdmin && claims.Role != RoleUser {
		return nil, fmt.Errorf("invalid token role %q", claims.Role)
	}
	return claims, nil
}
