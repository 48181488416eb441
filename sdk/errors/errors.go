package sdkerrors

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smartcontractkit/multisend/types"
)

// ErrUnsupportedChain is matched by UnsupportedChainError through errors.Is.
var ErrUnsupportedChain = errors.New("unsupported chain")

// UnsupportedChainError is returned when no executor instance can be resolved for a chain.
type UnsupportedChainError struct {
	ChainSelector types.ChainSelector
	Reason        string
}

func (e *UnsupportedChainError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported chain: no MultiSend instance for chain selector %d", e.ChainSelector)
	}

	return fmt.Sprintf("unsupported chain: no MultiSend instance for chain selector %d: %s", e.ChainSelector, e.Reason)
}

// Is allows errors.Is(err, ErrUnsupportedChain).
func (e *UnsupportedChainError) Is(target error) bool {
	return target == ErrUnsupportedChain
}

func NewUnsupportedChainError(sel types.ChainSelector, reason string) *UnsupportedChainError {
	return &UnsupportedChainError{ChainSelector: sel, Reason: reason}
}

// ErrMalformedInput is matched by MalformedInputError through errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError is returned when a packed batch cannot be decoded. Offset is the position
// of the field that could not be read, Want the number of bytes it needs and Have the number of
// bytes left in the buffer.
type MalformedInputError struct {
	Field  string
	Offset int
	Want   *big.Int
	Have   int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: field %s at offset %d needs %s bytes, %d remaining", e.Field, e.Offset, e.Want, e.Have)
}

// Is allows errors.Is(err, ErrMalformedInput).
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func NewMalformedInputError(field string, offset int, want *big.Int, have int) *MalformedInputError {
	return &MalformedInputError{Field: field, Offset: offset, Want: new(big.Int).Set(want), Have: have}
}
