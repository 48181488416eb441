package multisend

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/multisend/types"
)

// BatchFile is the JSON representation of a batch planned for a given chain.
type BatchFile struct {
	Version       string              `json:"version" validate:"required"`
	ChainSelector types.ChainSelector `json:"chainSelector" validate:"required"`
	Description   string              `json:"description"`
	Calls         []types.Call        `json:"calls" validate:"required"`
}

// NewBatchFile reads and validates a batch file.
func NewBatchFile(reader io.Reader) (*BatchFile, error) {
	var out BatchFile
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

// NewBatchFileFromBatch snapshots the calls of b into a batch file.
func NewBatchFileFromBatch(version string, sel types.ChainSelector, description string, b *Batch) *BatchFile {
	return &BatchFile{
		Version:       version,
		ChainSelector: sel,
		Description:   description,
		Calls:         b.Calls(),
	}
}

// MarshalJSON marshals the batch file to JSON
func (f *BatchFile) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	type Alias BatchFile

	return json.Marshal((*Alias)(f))
}

// UnmarshalJSON unmarshals the JSON to a batch file
func (f *BatchFile) UnmarshalJSON(data []byte) error {
	type Alias BatchFile
	if err := json.Unmarshal(data, (*Alias)(f)); err != nil {
		return err
	}

	return f.Validate()
}

// Validate runs tag based validation and checks every call value fits an unsigned 256 bit
// integer.
func (f *BatchFile) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(f); err != nil {
		return err
	}

	for i, call := range f.Calls {
		if _, err := checkUint256(call.ValueOrZero()); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}

	return nil
}

// Batch returns a new batch holding the calls of the file, in order.
func (f *BatchFile) Batch() *Batch {
	b := NewBatch()
	for _, call := range f.Calls {
		b.AddCall(call)
	}

	return b
}

// Write writes the batch file as indented JSON.
func (f *BatchFile) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(f)
}
