package code

var codeMessageMap = map[int]string{
	// common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests, please retry later",
	ErrForbidden:       "operation not permitted",

	// identity
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "email already registered",
	ErrUserPasswordIncorrect: "invalid email or password",
	ErrAdminNotFound:         "admin not found",

	// database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	// job
	ErrJobNotFound: "job not found",
	ErrJobNotOwned: "you do not manage this job",

	// application
	ErrApplicationNotFound:      "application not found",
	ErrApplicationDuplicate:     "you have already applied to this job",
	ErrSelfApplication:          "you cannot apply to a job you posted",
	ErrApplicationStatusInvalid: "invalid application status",
}

var codeStatusMap = map[int]int{
	// common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,

	// identity
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrAdminNotFound:         StatusNotFound,

	// database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// job
	ErrJobNotFound: StatusNotFound,
	ErrJobNotOwned: StatusForbidden,

	// application
	ErrApplicationNotFound:      StatusNotFound,
	ErrApplicationDuplicate:     StatusConflict,
	ErrSelfApplication:          StatusForbidden,
	ErrApplicationStatusInvalid: StatusBadRequest,
}

// GetMessage returns the default message for a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
