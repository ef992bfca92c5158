package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Account errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrNonInstituteEmail = errors.New("email is not an institute address")
)

// Guidance errors
var (
	ErrMentorNotFound       = errors.New("mentor not found")
	ErrRequestNotFound      = errors.New("mentor request not found")
	ErrRequestAlreadyExists = errors.New("mentor request already exists")
	ErrChatUnavailable      = errors.New("chat is available only after approval")
	ErrNotParticipant       = errors.New("not a participant of this chat")
)
