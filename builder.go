package multisend

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/sdk"
	"github.com/smartcontractkit/multisend/sdk/evm"
	"github.com/smartcontractkit/multisend/types"
)

// Batch accumulates an ordered list of calls to be executed atomically by the MultiSend
// contract. Calls are never reordered, merged or removed once added.
//
// A Batch is safe for concurrent use: appends are serialized and every read works on a snapshot
// of the call list.
type Batch struct {
	mu    sync.RWMutex
	calls []types.Call

	encoder sdk.Encoder
	decoder sdk.Decoder
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{
		calls:   make([]types.Call, 0),
		encoder: evm.NewEncoder(),
		decoder: evm.NewDecoder(),
	}
}

// DecodeBatch rebuilds a batch from a packed blob. It fails with ErrMalformedInput if the blob is
// truncated or a declared payload length runs past its end.
func DecodeBatch(blob []byte) (*Batch, error) {
	b := NewBatch()
	if err := b.AddEncoded(blob); err != nil {
		return nil, err
	}

	return b, nil
}

// Add appends a regular call to the batch and returns the batch for chaining. A nil value is
// read as zero. Neither the target nor the payload are inspected.
func (b *Batch) Add(to common.Address, value *big.Int, data []byte) *Batch {
	return b.AddCall(types.NewCall(to, value, data))
}

// AddCall appends a call with an explicit operation and returns the batch for chaining.
func (b *Batch) AddCall(call types.Call) *Batch {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, call.Clone())

	return b
}

// AddEncoded decodes a packed blob and appends every call in it, in order. Nothing is appended
// if the blob is malformed.
func (b *Batch) AddEncoded(blob []byte) error {
	calls, err := b.decoder.Decode(blob)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, calls...)

	return nil
}

// AddFromCalldata decodes full multiSend(bytes) calldata and appends every call it carries.
func (b *Batch) AddFromCalldata(calldata []byte) error {
	blob, err := evm.UnpackMultiSend(calldata)
	if err != nil {
		return err
	}

	if err := b.AddEncoded(blob); err != nil {
		return fmt.Errorf("failed to decode multiSend transactions: %w", err)
	}

	return nil
}

// Calls returns a copy of the calls in insertion order.
func (b *Batch) Calls() []types.Call {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]types.Call, 0, len(b.calls))
	for _, call := range b.calls {
		out = append(out, call.Clone())
	}

	return out
}

// Len returns the number of calls in the batch.
func (b *Batch) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.calls)
}

// RequiredValue returns the sum of the values of all calls.
func (b *Batch) RequiredValue() *big.Int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return requiredValue(b.calls)
}

func requiredValue(calls []types.Call) *big.Int {
	total := new(big.Int)
	for _, call := range calls {
		total.Add(total, call.ValueOrZero())
	}

	return total
}

// Encode returns the packed records of all calls, in order. An empty batch encodes to an empty
// blob.
func (b *Batch) Encode() ([]byte, error) {
	return b.encoder.Encode(b.Calls())
}
