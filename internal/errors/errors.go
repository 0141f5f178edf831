package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenSigning       = errors.New("token signing failed")
	ErrForbidden          = errors.New("access denied")
	ErrMissingClaims      = errors.New("no identity claims attached to request")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrSamePassword       = errors.New("new password must differ from the old one")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain a digit and an uppercase letter")
)
