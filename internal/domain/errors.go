package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound               = errors.New("resource not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email is already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrRenderFailure          = errors.New("receipt rendering failed")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("access denied")
	ErrConflict               = errors.New("conflict with current state")
)
