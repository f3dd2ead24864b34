package errors

import (
	stderrors "errors"
	"net/http"
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password
	ShouldLog bool
	// SecurityEvent marks failures worth tracking for brute force detection
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewNotAuthenticatedError is returned when a request carries no usable session.
func NewNotAuthenticatedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		},
	}
}

// NewSessionInvalidError is returned for expired, tampered or orphaned session tokens.
func NewSessionInvalidError(details ...string) *AuthError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Invalid or expired session",
			Code:    http.StatusUnauthorized,
			Details: detail,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// IsAuthError checks if the error is an AuthError
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}
