package multisend

import (
	"errors"
	"fmt"
	"math/big"

	sdkerrors "github.com/smartcontractkit/multisend/sdk/errors"
)

var (
	// ErrInsufficientValue is matched by InsufficientValueError through errors.Is.
	ErrInsufficientValue = errors.New("insufficient value")

	// ErrInvalidValue is returned when a caller supplied value cannot be read as an unsigned
	// 256 bit integer.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedInput is returned when a packed batch cannot be decoded.
	ErrMalformedInput = sdkerrors.ErrMalformedInput
)

// InsufficientValueError is returned when the value supplied with a batch does not cover the sum
// of the values of its calls. Required is the amount to retry with.
type InsufficientValueError struct {
	Required *big.Int
	Supplied *big.Int
}

// NewInsufficientValueError creates a new InsufficientValueError. supplied is nil when no value
// was provided.
func NewInsufficientValueError(required, supplied *big.Int) *InsufficientValueError {
	return &InsufficientValueError{Required: required, Supplied: supplied}
}

func (e *InsufficientValueError) Error() string {
	if e.Supplied == nil {
		return fmt.Sprintf("insufficient value: batch requires %s, none supplied", e.Required)
	}

	return fmt.Sprintf("insufficient value: batch requires %s, supplied %s", e.Required, e.Supplied)
}

// Is allows errors.Is(err, ErrInsufficientValue).
func (e *InsufficientValueError) Is(target error) bool {
	return target == ErrInsufficientValue
}
