package evm

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/sdk"
	"github.com/smartcontractkit/multisend/types"
)

// Widths of the fixed fields of a packed MultiSend record:
//
//	operation(1) | to(20) | value(32, big endian) | dataLength(32, big endian) | data(dataLength)
const (
	OperationSize  = 1
	AddressSize    = common.AddressLength
	ValueSize      = 32
	DataLengthSize = 32

	// RecordHeaderSize is the size of a record with an empty payload.
	RecordHeaderSize = OperationSize + AddressSize + ValueSize + DataLengthSize
)

var _ sdk.Encoder = (*Encoder)(nil)

// Encoder packs calls into the layout expected by the MultiSend contract.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode concatenates the packed records of calls in order. An empty list yields an empty blob.
func (e *Encoder) Encode(calls []types.Call) ([]byte, error) {
	return EncodeCalls(calls)
}

// EncodeCalls concatenates the packed records of calls, in order, with no delimiter.
func EncodeCalls(calls []types.Call) ([]byte, error) {
	size := 0
	for _, call := range calls {
		size += RecordHeaderSize + len(call.Data)
	}

	out := make([]byte, 0, size)
	for i, call := range calls {
		record, err := EncodeCall(call)
		if err != nil {
			return nil, fmt.Errorf("failed to encode call %d: %w", i, err)
		}
		out = append(out, record...)
	}

	return out, nil
}

// EncodeCall packs a single call. It fails only when the value does not fit an unsigned 256 bit
// integer.
func EncodeCall(call types.Call) ([]byte, error) {
	value, err := uint256Bytes(call.ValueOrZero())
	if err != nil {
		return nil, err
	}

	out := make([]byte, RecordHeaderSize+len(call.Data))
	out[0] = byte(call.Operation)

	offset := OperationSize
	copy(out[offset:], call.To.Bytes())
	offset += AddressSize

	copy(out[offset:], value)
	offset += ValueSize

	// A payload length always fits in the low 8 bytes of the 32 byte length word.
	binary.BigEndian.PutUint64(out[offset+DataLengthSize-8:offset+DataLengthSize], uint64(len(call.Data)))
	offset += DataLengthSize

	copy(out[offset:], call.Data)

	return out, nil
}

// uint256Bytes returns v as a 32 byte big endian word.
func uint256Bytes(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("invalid EVM value: %v is negative", v)
	}
	if v.BitLen() > ValueSize*8 {
		return nil, fmt.Errorf("invalid EVM value: %v exceeds 256 bits", v)
	}

	return v.FillBytes(make([]byte, ValueSize)), nil
}
