package core

import "errors"

// Sentinel errors returned (wrapped) by the map model and fill operations.
// Test for them with errors.Is.
var (
	ErrNilArgument         = errors.New("missing argument")
	ErrUnknownParameter    = errors.New("unknown parameter")
	ErrInvalidValue        = errors.New("invalid value")
	ErrOutOfRange          = errors.New("coordinate out of range")
	ErrInvalidAxis         = errors.New("invalid axis")
	ErrInvalidGeometry     = errors.New("invalid geometry argument")
	ErrInvalidConstruction = errors.New("invalid construction argument")
	ErrDuplicateParameter  = errors.New("duplicate parameter name")
)
