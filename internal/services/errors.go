package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-identity/internal/jwt"
)

// Error classes. Every error returned for a business rule matches exactly one
// of them with errors.Is.
var (
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrRateLimited         = errors.New("rate limited")
	ErrUnverifiedEmail     = errors.New("provider email is not verified")
	ErrAlreadyVerified     = errors.New("already verified")
	ErrCodeMismatch        = errors.New("verification code mismatch")
	ErrFeatureDisabled     = errors.New("feature disabled")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrInvalidArgument     = errors.New("invalid argument")
)

// Specific reasons.
var (
	ErrEmailAlreadyExists   = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrLoginIDAlreadyExists = fmt.Errorf("%w: login id already registered", ErrConflict)
	ErrRegistrationPending  = fmt.Errorf("%w: registration pending, verify or resend instead", ErrConflict)

	ErrPendingNotFound   = fmt.Errorf("%w: pending registration", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrIssueCodeNotFound = fmt.Errorf("%w: issue code", ErrNotFound)

	ErrInvalidCredentials = fmt.Errorf("%w: email or password incorrect", ErrUnauthorized)

	ErrResendTooSoon      = fmt.Errorf("%w: resend requested too soon", ErrRateLimited)
	ErrResendLimitReached = fmt.Errorf("%w: resend limit reached", ErrRateLimited)

	ErrPasswordTooLong = fmt.Errorf("%w: password longer than 72 bytes", ErrInvalidArgument)
)

// Token verification errors.
var (
	ErrInvalidToken     = jwt.ErrInvalidToken
	ErrExpiredToken     = jwt.ErrExpiredToken
	ErrMalformedPayload = jwt.ErrMalformedPayload
)
