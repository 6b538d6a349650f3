package util

import "errors"

var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("resource not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrAccountNotFound  = errors.New("no account found with this email")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrPermissionDenied = errors.New("permission denied")
)
