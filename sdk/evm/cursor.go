package evm

import (
	"math/big"

	sdkerrors "github.com/smartcontractkit/multisend/sdk/errors"
)

// Cursor is a forward-only reader over a fully received buffer.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// Done reports whether the cursor sits exactly at the end of the buffer.
func (c *Cursor) Done() bool {
	return c.offset == len(c.data)
}

// Next consumes exactly n bytes. The returned slice aliases the underlying buffer. The cursor does
// not move when fewer than n bytes remain.
func (c *Cursor) Next(field string, n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, sdkerrors.NewMalformedInputError(field, c.offset, big.NewInt(int64(n)), c.Remaining())
	}

	out := c.data[c.offset : c.offset+n]
	c.offset += n

	return out, nil
}
