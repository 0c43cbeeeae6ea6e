package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T, tweak ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:              "sqlite",
		DBName:                filepath.Join(t.TempDir(), "routes.sqlite"),
		DBLogLevel:            "silent",
		CORSAllowedOrigins:    []string{"*"},
		JWTSecretKey:          "routes-test-secret",
		JWTExpiryHours:        1,
		OwnershipCompanyMatch: true,
		DashboardCacheTTL:     time.Minute,
	}
	for _, fn := range tweak {
		fn(cfg)
	}

	pool, err := database.NewConnectionPool(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	require.NoError(t, database.Migrate(pool.DB, "auto"))

	// the response cache is process wide
	middleware.PurgeCache()
	t.Cleanup(middleware.PurgeCache)

	return SetupRouter(pool, cfg, nil)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

// signup registers and logs in an account, returning its token and id
func signup(t *testing.T, r *gin.Engine, role string, body gin.H) (string, uint) {
	t.Helper()

	w, _ := doRequest(t, r, http.MethodPost, "/api/auth/"+role+"/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/"+role+"/login", "", gin.H{
		"email":    body["email"],
		"password": body["password"],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
		ID    uint   `json:"id"`
	}
	decode(t, env, &login)
	require.NotEmpty(t, login.Token)
	return login.Token, login.ID
}

func signupAdmin(t *testing.T, r *gin.Engine, email, company string) string {
	token, _ := signup(t, r, "admin", gin.H{
		"email":        email,
		"password":     "secret123",
		"name":         "Recruiter",
		"company_name": company,
	})
	return token
}

func signupUser(t *testing.T, r *gin.Engine, email string) string {
	token, _ := signup(t, r, "user", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     "Candidate " + email,
	})
	return token
}

func createJob(t *testing.T, r *gin.Engine, token string, body gin.H) uint {
	t.Helper()
	w, env := doRequest(t, r, http.MethodPost, "/api/admin/jobs", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var job struct {
		ID uint `json:"id"`
	}
	decode(t, env, &job)
	return job.ID
}

func TestPingAndHealth(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, code.ErrSuccess, env.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w, _ = doRequest(t, r, http.MethodGet, "/api/health/status", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestApplicationLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupAdmin(t, r, "hr@acme.io", "Acme Corp")
	userToken := signupUser(t, r, "dev@mail.io")

	jobID := createJob(t, r, adminToken, gin.H{"title": "Backend Engineer", "location": "Remote", "status": "published"})
	applyPath := fmt.Sprintf("/api/jobs/%d/apply", jobID)

	t.Run("missing resume is rejected", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPost, applyPath, userToken, gin.H{"resume_ref": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, code.ErrValidation, env.Code)
	})

	var applicationID uint
	t.Run("apply", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPost, applyPath, userToken, gin.H{"resume_ref": "resumes/dev.pdf"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var application struct {
			ID          uint   `json:"id"`
			Status      string `json:"status"`
			JobTitle    string `json:"job_title"`
			CompanyName string `json:"company_name"`
		}
		decode(t, env, &application)
		applicationID = application.ID
		assert.Equal(t, "pending", application.Status)
		assert.Equal(t, "Backend Engineer", application.JobTitle)
		assert.Equal(t, "Acme Corp", application.CompanyName)
	})

	t.Run("second apply conflicts", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPost, applyPath, userToken, gin.H{"resume_ref": "resumes/dev.pdf"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, code.ErrApplicationDuplicate, env.Code)
	})

	t.Run("public job shows one application", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var job struct {
			ApplicationCount int64 `json:"application_count"`
			ViewCount        int64 `json:"view_count"`
		}
		decode(t, env, &job)
		assert.Equal(t, int64(1), job.ApplicationCount)
		assert.Equal(t, int64(1), job.ViewCount)
	})

	t.Run("applicant sees own application", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/me/applications", userToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var applications []map[string]interface{}
		decode(t, env, &applications)
		assert.Len(t, applications, 1)
	})

	t.Run("owner shortlists", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/applications/%d/status", applicationID), adminToken, gin.H{"status": "shortlisted"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var application struct {
			Status string `json:"status"`
		}
		decode(t, env, &application)
		assert.Equal(t, "shortlisted", application.Status)
	})

	t.Run("status change is logged", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/admin/applications/%d/history", applicationID), adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var history []struct {
			OperationType string `json:"operation_type"`
			ToStatus      string `json:"to_status"`
		}
		decode(t, env, &history)
		require.Len(t, history, 1)
		assert.Equal(t, "status_change", history[0].OperationType)
		assert.Equal(t, "shortlisted", history[0].ToStatus)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/applications/%d/status", applicationID), adminToken, gin.H{"status": "hired"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, code.ErrValidation, env.Code)
	})

	t.Run("dashboard summary", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/admin/dashboard/summary", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var summary struct {
			Total    int64            `json:"total"`
			ByStatus map[string]int64 `json:"by_status"`
		}
		decode(t, env, &summary)
		assert.Equal(t, int64(1), summary.Total)
		assert.Equal(t, int64(1), summary.ByStatus["shortlisted"])
	})

	t.Run("candidate search", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/admin/candidates?search=dev@mail", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var candidates []struct {
			ApplicantEmail string `json:"applicant_email"`
		}
		decode(t, env, &candidates)
		require.Len(t, candidates, 1)
		assert.Equal(t, "dev@mail.io", candidates[0].ApplicantEmail)
	})
}

func TestForeignAdminIsForbidden(t *testing.T) {
	r := setupTestRouter(t)

	ownerToken := signupAdmin(t, r, "hr@acme.io", "Acme Corp")
	strangerToken := signupAdmin(t, r, "hr@globex.io", "Globex")
	userToken := signupUser(t, r, "dev@mail.io")

	jobID := createJob(t, r, ownerToken, gin.H{"title": "Data Engineer", "status": "published"})

	w, env := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), userToken, gin.H{"resume_ref": "cv.pdf"})
	require.Equal(t, http.StatusCreated, w.Code)
	var application struct {
		ID uint `json:"id"`
	}
	decode(t, env, &application)

	w, env = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/applications/%d/status", application.ID), strangerToken, gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrForbidden, env.Code)

	w, env = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/jobs/%d", jobID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrJobNotOwned, env.Code)

	w, env = doRequest(t, r, http.MethodGet, "/api/admin/dashboard/summary", strangerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Total int64 `json:"total"`
	}
	decode(t, env, &summary)
	assert.Zero(t, summary.Total)

	// status unchanged for the owner
	w, env = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/admin/applications/%d", application.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored struct {
		Status string `json:"status"`
	}
	decode(t, env, &stored)
	assert.Equal(t, "pending", stored.Status)
}

func TestSelfApplicationIsForbidden(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupAdmin(t, r, "founder@startup.io", "Startup")
	userToken := signupUser(t, r, "Founder@Startup.io")

	jobID := createJob(t, r, adminToken, gin.H{"title": "CTO", "status": "published"})

	w, env := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), userToken, gin.H{"resume_ref": "cv.pdf"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrSelfApplication, env.Code)
}

func TestPublicListingHidesDrafts(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupAdmin(t, r, "hr@acme.io", "Acme Corp")
	draftID := createJob(t, r, adminToken, gin.H{"title": "Secret Role"})
	createJob(t, r, adminToken, gin.H{"title": "Open Role", "status": "published"})

	w, env := doRequest(t, r, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int64                    `json:"total"`
		Data  []map[string]interface{} `json:"data"`
	}
	decode(t, env, &list)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Open Role", list.Data[0]["title"])

	w, _ = doRequest(t, r, http.MethodGet, "/api/jobs?status=draft", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/jobs/%d", draftID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrJobNotFound, env.Code)

	// the owner still sees both
	w, env = doRequest(t, r, http.MethodGet, "/api/admin/jobs", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var owned []map[string]interface{}
	decode(t, env, &owned)
	assert.Len(t, owned, 2)
}

func TestRoleChecks(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupAdmin(t, r, "hr@acme.io", "Acme Corp")
	userToken := signupUser(t, r, "dev@mail.io")

	w, env := doRequest(t, r, http.MethodPost, "/api/jobs/1/apply", "", gin.H{"resume_ref": "cv.pdf"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrTokenInvalid, env.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/api/admin/dashboard/summary", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/jobs/1/apply", adminToken, gin.H{"resume_ref": "cv.pdf"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doRequest(t, r, http.MethodPost, "/api/auth/user/login", "", gin.H{"email": "dev@mail.io", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrUserPasswordIncorrect, env.Code)
}

func TestCORSConfig(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://jobs.example.com"}}
	corsCfg := corsConfig(cfg)
	assert.False(t, corsCfg.AllowAllOrigins)
	assert.True(t, corsCfg.AllowCredentials)
	assert.Equal(t, []string{"https://jobs.example.com"}, corsCfg.AllowOrigins)

	assert.True(t, corsConfig(&config.Config{}).AllowAllOrigins)
	assert.True(t, corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://a.io", "*"}}).AllowAllOrigins)
}
