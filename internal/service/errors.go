package service

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrGeneratorNotFound      = errors.New("generator not found")
	ErrGeneratorInUse         = errors.New("generator has events")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAuthenticationFailed   = errors.New("invalid email or password")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrTokenExpired           = errors.New("token expired")
	ErrPasswordTooLong        = errors.New("password too long")
)
