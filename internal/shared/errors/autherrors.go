package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
)

// AuthError represents an authentication failure. SecurityEvent marks
// failures worth a warning in the logs.
type AuthError struct {
	*AppError
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

// NewInvalidCredentialsError does not reveal whether the email or the
// password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError:      newAppError(ErrorTypeInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", nil),
		SecurityEvent: true,
	}
}

// NewTokenInvalidError creates an error for malformed or forged tokens
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError:      newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized, "Invalid access token", []string{"Token is invalid or has been revoked"}),
		SecurityEvent: true,
	}
}

// NewSessionExpiredError creates an error for sessions missing from the store
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: newAppError(ErrorTypeSessionExpired, http.StatusUnauthorized, "Session has expired", []string{"Please login again"}),
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
