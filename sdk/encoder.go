package sdk

import (
	"github.com/smartcontractkit/multisend/types"
)

// Encoder serializes calls into the packed batch layout understood by the executor.
type Encoder interface {
	// Encode returns the concatenated packed records for calls, in order.
	Encode(calls []types.Call) ([]byte, error)
}
