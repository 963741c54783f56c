package errors

import (
	"net/http"

	"pesantren/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Access gate and unlock errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Silakan masuk terlebih dahulu",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Nominal infaq tidak valid",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Layanan sedang tidak tersedia, silakan coba lagi",
		"",
	)

	ErrSubmissionInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_PROGRESS",
		"Permintaan sebelumnya masih diproses",
		"",
	)

	ErrUnlockNotAvailable = NewBaseError(
		http.StatusConflict,
		"UNLOCK_NOT_AVAILABLE",
		"Akses materi belum dapat dibuka saat ini",
		"",
	)

	ErrPaymentNotConfirmed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_CONFIRMED",
		"Pembayaran belum terkonfirmasi",
		"",
	)

	// Catalogue errors
	ErrCourseNotFound = NewBaseError(
		http.StatusNotFound,
		"COURSE_NOT_FOUND",
		"Kelas tidak ditemukan",
		"",
	)

	ErrCourseAlreadyExists = NewBaseError(
		http.StatusConflict,
		"COURSE_ALREADY_EXISTS",
		"Kode kelas sudah digunakan",
		"",
	)

	ErrLessonNotFound = NewBaseError(
		http.StatusNotFound,
		"LESSON_NOT_FOUND",
		"Materi tidak ditemukan",
		"",
	)

	ErrLessonAlreadyExists = NewBaseError(
		http.StatusConflict,
		"LESSON_ALREADY_EXISTS",
		"Slug materi sudah digunakan di kelas ini",
		"",
	)

	ErrInvalidLessonOrder = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LESSON_ORDER",
		"Urutan materi tidak valid",
		"",
	)

	ErrQuizNotFound = NewBaseError(
		http.StatusNotFound,
		"QUIZ_NOT_FOUND",
		"Kuis tidak ditemukan",
		"",
	)

	// Entitlement errors
	ErrEntitlementNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITLEMENT_NOT_FOUND",
		"Data infaq tidak ditemukan",
		"",
	)

	ErrInvalidReceipt = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECEIPT",
		"Kode bukti infaq tidak valid",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Data yang dikirim tidak valid",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Transaksi basis data gagal",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Akses ditolak",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Data tidak ditemukan",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Gagal menjalankan perintah basis data"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
