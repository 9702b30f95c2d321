package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrLayoutInvalid  ErrorCode = "LAYOUT_INVALID"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Resolution errors
	ErrDirNotFound    ErrorCode = "DIR_NOT_FOUND"
	ErrDirAccess      ErrorCode = "DIR_ACCESS"
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrPackageMissing ErrorCode = "PACKAGE_MISSING"
	ErrPathOutsideDir ErrorCode = "PATH_OUTSIDE_DIR"

	// Content errors
	ErrFileRead ErrorCode = "FILE_READ"
)

// Category groups error codes by the phase that produces them
type Category string

const (
	CategoryUnknown       Category = "unknown"
	CategoryConfiguration Category = "configuration"
	CategoryResolution    Category = "resolution"
	CategoryContent       Category = "content"
)

var codeCategories = map[ErrorCode]Category{
	ErrConfigLoad:     CategoryConfiguration,
	ErrConfigParse:    CategoryConfiguration,
	ErrConfigInvalid:  CategoryConfiguration,
	ErrLayoutInvalid:  CategoryConfiguration,
	ErrPatternInvalid: CategoryConfiguration,

	ErrDirNotFound:    CategoryResolution,
	ErrDirAccess:      CategoryResolution,
	ErrNotADirectory:  CategoryResolution,
	ErrPackageMissing: CategoryResolution,
	ErrPathOutsideDir: CategoryResolution,

	ErrFileRead: CategoryContent,
}

// CategoryOf returns the category an error code belongs to
func CategoryOf(code ErrorCode) Category {
	if c, ok := codeCategories[code]; ok {
		return c
	}
	return CategoryUnknown
}

// HomefilesError represents a structured error with code and details
type HomefilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HomefilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HomefilesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HomefilesError) Is(target error) bool {
	var targetErr *HomefilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Category returns the category of the error's code
func (e *HomefilesError) Category() Category {
	return CategoryOf(e.Code)
}

// New creates a new HomefilesError with the given code and message
func New(code ErrorCode, message string) *HomefilesError {
	return &HomefilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HomefilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HomefilesError {
	return &HomefilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HomefilesError
func Wrap(err error, code ErrorCode, message string) *HomefilesError {
	if err == nil {
		return nil
	}
	return &HomefilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HomefilesError {
	if err == nil {
		return nil
	}
	return &HomefilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HomefilesError) WithDetail(key string, value interface{}) *HomefilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HomefilesError) WithDetails(details map[string]interface{}) *HomefilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hfErr *HomefilesError
	if errors.As(err, &hfErr) {
		return hfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HomefilesError
func GetErrorCode(err error) ErrorCode {
	var hfErr *HomefilesError
	if errors.As(err, &hfErr) {
		return hfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HomefilesError
func GetErrorDetails(err error) map[string]interface{} {
	var hfErr *HomefilesError
	if errors.As(err, &hfErr) {
		return hfErr.Details
	}
	return nil
}

// IsConfigurationError reports whether err was raised while building a configuration
func IsConfigurationError(err error) bool {
	return CategoryOf(GetErrorCode(err)) == CategoryConfiguration
}

// IsResolutionError reports whether err was raised while resolving mappings
func IsResolutionError(err error) bool {
	return CategoryOf(GetErrorCode(err)) == CategoryResolution
}
