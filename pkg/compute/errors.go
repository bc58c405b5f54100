package compute

import "errors"

var (
	// construction
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	ErrTooManyParameters    = errors.New("too many parameters")
	ErrIllegalArgumentType  = errors.New("illegal argument type")
	ErrTypeConversion       = errors.New("type conversion failed")

	// runtime
	ErrResourceLimitExceeded = errors.New("resource limit exceeded")
	ErrCorruptedState        = errors.New("corrupted state")
	ErrUnknownFunction       = errors.New("unknown function")
	ErrStateMismatch         = errors.New("state mismatch")
)
