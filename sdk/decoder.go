package sdk

import (
	"github.com/smartcontractkit/multisend/types"
)

// Decoder reconstructs the calls of a batch from its packed layout.
type Decoder interface {
	// Decode parses every record in data, in order. It fails if data does not end exactly at a
	// record boundary.
	Decode(data []byte) ([]types.Call, error)
}
