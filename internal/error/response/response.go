package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/error/code"
	Logger "jobboard-http-service/pkg/logger"
)

// Response is the envelope every endpoint returns
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responds 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Created responds 201 with the new resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail responds with the status and default message of errorCode
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage responds with the status of errorCode and a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError responds 400 for unbindable input
func ParamError(c *gin.Context, message string) {
	if message == "" {
		Fail(c, code.ErrBind, nil)
		return
	}
	FailWithMessage(c, code.ErrBind, message, nil)
}

// Unauthorized responds 401
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		Fail(c, code.ErrTokenInvalid, nil)
		return
	}
	FailWithMessage(c, code.ErrTokenInvalid, message, nil)
}

// Forbidden responds 403
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		Fail(c, code.ErrForbidden, nil)
		return
	}
	FailWithMessage(c, code.ErrForbidden, message, nil)
}

// Error maps a service error onto its code and status.
// Anything unrecognised is logged and reported as a 500 without details.
func Error(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		duplicateErr  *services.DuplicateApplicationError
		selfErr       *services.SelfApplicationError
		notFoundErr   *services.NotFoundError
		authErr       *services.AuthorizationError
		transitionErr *services.StatusTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		data := gin.H{"reason": validationErr.Reason}
		if validationErr.Field != "" {
			data["field"] = validationErr.Field
		}
		FailWithMessage(c, code.ErrValidation, validationErr.Error(), data)
	case errors.As(err, &duplicateErr):
		Fail(c, code.ErrApplicationDuplicate, gin.H{"job_id": duplicateErr.JobID})
	case errors.As(err, &selfErr):
		Fail(c, code.ErrSelfApplication, gin.H{"job_id": selfErr.JobID})
	case errors.As(err, &notFoundErr):
		Fail(c, notFoundCode(notFoundErr.Resource), gin.H{"id": notFoundErr.ID})
	case errors.As(err, &authErr):
		if authErr.Resource == services.ResourceJob {
			Fail(c, code.ErrJobNotOwned, nil)
			return
		}
		Fail(c, code.ErrForbidden, nil)
	case errors.As(err, &transitionErr):
		FailWithMessage(c, code.ErrApplicationStatusInvalid, transitionErr.Error(),
			gin.H{"from": transitionErr.From, "to": transitionErr.To})
	case errors.Is(err, services.ErrInvalidCredentials):
		Fail(c, code.ErrUserPasswordIncorrect, nil)
	case errors.Is(err, services.ErrEmailTaken):
		Fail(c, code.ErrUserAlreadyExist, nil)
	default:
		Logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Fail(c, code.ErrDatabase, nil)
	}
}

func notFoundCode(resource string) int {
	switch resource {
	case services.ResourceJob:
		return code.ErrJobNotFound
	case services.ResourceApplication:
		return code.ErrApplicationNotFound
	case services.ResourceUser:
		return code.ErrUserNotFound
	case services.ResourceAdmin:
		return code.ErrAdminNotFound
	}
	return code.ErrRecordNotFound
}
