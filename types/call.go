package types

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Call is a single planned call inside a batch.
type Call struct {
	Operation Operation      `json:"operation"`
	To        common.Address `json:"to"`
	Value     *big.Int       `json:"value"`
	Data      []byte         `json:"data"`
}

// NewCall creates a Call performing a regular CALL. A nil value is stored as zero.
func NewCall(to common.Address, value *big.Int, data []byte) Call {
	return Call{
		Operation: OperationCall,
		To:        to,
		Value:     copyValue(value),
		Data:      copyBytes(data),
	}
}

// ValueOrZero returns the value carried by the call, treating nil as zero.
func (c Call) ValueOrZero() *big.Int {
	if c.Value == nil {
		return new(big.Int)
	}

	return c.Value
}

// Clone returns a deep copy of the call so the copy can be handed out without sharing the value
// or the payload with the original.
func (c Call) Clone() Call {
	return Call{
		Operation: c.Operation,
		To:        c.To,
		Value:     copyValue(c.Value),
		Data:      copyBytes(c.Data),
	}
}

// Equal reports whether both calls carry the same fields. A nil value equals zero and a nil
// payload equals an empty one.
func (c Call) Equal(other Call) bool {
	return c.Operation == other.Operation &&
		c.To == other.To &&
		c.ValueOrZero().Cmp(other.ValueOrZero()) == 0 &&
		string(c.Data) == string(other.Data)
}

// MarshalJSON renders the payload as 0x-prefixed hex.
func (c Call) MarshalJSON() ([]byte, error) {
	type Alias Call

	return json.Marshal(struct {
		Alias
		Value *big.Int      `json:"value"`
		Data  hexutil.Bytes `json:"data"`
	}{
		Alias: Alias(c),
		Value: c.ValueOrZero(),
		Data:  c.Data,
	})
}

// UnmarshalJSON parses a call with a 0x-prefixed hex payload. A missing value is read as zero.
func (c *Call) UnmarshalJSON(data []byte) error {
	type Alias Call
	aux := struct {
		*Alias
		Data hexutil.Bytes `json:"data"`
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.Data = []byte(aux.Data)
	if c.Value == nil {
		c.Value = new(big.Int)
	}

	return nil
}

func copyValue(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(v)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out
}
