package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/internal/utils/safecast"
	"github.com/smartcontractkit/multisend/sdk"
	sdkerrors "github.com/smartcontractkit/multisend/sdk/errors"
	"github.com/smartcontractkit/multisend/types"
)

var _ sdk.Decoder = (*Decoder)(nil)

// Decoder unpacks a MultiSend blob back into its calls.
type Decoder struct{}

// NewDecoder returns a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses every record in data.
func (d *Decoder) Decode(data []byte) ([]types.Call, error) {
	return DecodeCalls(data)
}

// DecodeCalls reads records until the buffer is exhausted. The last record must end exactly at
// the end of data. An empty blob yields an empty list.
func DecodeCalls(data []byte) ([]types.Call, error) {
	cursor := NewCursor(data)
	calls := make([]types.Call, 0)

	for !cursor.Done() {
		call, err := DecodeCall(cursor)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}

	return calls, nil
}

// DecodeCall reads a single record at the cursor and advances past it. The payload is copied out
// of the buffer. Any operation tag, address, value or payload content is accepted.
func DecodeCall(c *Cursor) (types.Call, error) {
	op, err := c.Next("operation", OperationSize)
	if err != nil {
		return types.Call{}, err
	}

	to, err := c.Next("to", AddressSize)
	if err != nil {
		return types.Call{}, err
	}

	value, err := c.Next("value", ValueSize)
	if err != nil {
		return types.Call{}, err
	}

	lengthWord, err := c.Next("dataLength", DataLengthSize)
	if err != nil {
		return types.Call{}, err
	}

	length, err := payloadLength(c, lengthWord)
	if err != nil {
		return types.Call{}, err
	}

	payload, err := c.Next("data", length)
	if err != nil {
		return types.Call{}, err
	}

	data := make([]byte, len(payload))
	copy(data, payload)

	return types.Call{
		Operation: types.Operation(op[0]),
		To:        common.BytesToAddress(to),
		Value:     new(big.Int).SetBytes(value),
		Data:      data,
	}, nil
}

// payloadLength converts the declared length word into an int, rejecting lengths that could
// never fit the remaining buffer before anything is allocated.
func payloadLength(c *Cursor, word []byte) (int, error) {
	declared := new(big.Int).SetBytes(word)
	if !declared.IsUint64() {
		return 0, sdkerrors.NewMalformedInputError("data", c.Offset(), declared, c.Remaining())
	}

	length, err := safecast.Uint64ToInt(declared.Uint64())
	if err != nil || length > c.Remaining() {
		return 0, sdkerrors.NewMalformedInputError("data", c.Offset(), declared, c.Remaining())
	}

	return length, nil
}
