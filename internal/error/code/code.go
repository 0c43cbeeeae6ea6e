package code

// HTTP status codes.
const (
	// StatusOK - 200.
	StatusOK = 200
	// StatusCreated - 201.
	StatusCreated = 201
	// StatusBadRequest - 400.
	StatusBadRequest = 400
	// StatusUnauthorized - 401.
	StatusUnauthorized = 401
	// StatusForbidden - 403.
	StatusForbidden = 403
	// StatusNotFound - 404.
	StatusNotFound = 404
	// StatusConflict - 409.
	StatusConflict = 409
	// StatusTooManyRequests - 429.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: token missing or invalid.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
	// ErrForbidden - 403: caller is not allowed to perform the operation.
	ErrForbidden
)

// Identity error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: email already registered.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: bad credentials.
	ErrUserPasswordIncorrect
	// ErrAdminNotFound - 404: admin does not exist.
	ErrAdminNotFound
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)

// Job error codes (106xxx).
const (
	// ErrJobNotFound - 404: job does not exist.
	ErrJobNotFound int = iota + 106000
	// ErrJobNotOwned - 403: admin does not own the job.
	ErrJobNotOwned
)

// Application error codes (107xxx).
const (
	// ErrApplicationNotFound - 404: application does not exist.
	ErrApplicationNotFound int = iota + 107000
	// ErrApplicationDuplicate - 409: user already applied to the job.
	ErrApplicationDuplicate
	// ErrSelfApplication - 403: job owner applying to own posting.
	ErrSelfApplication
	// ErrApplicationStatusInvalid - 400: status outside the enum or transition refused.
	ErrApplicationStatusInvalid
)
