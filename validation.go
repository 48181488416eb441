package multisend

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/multisend/internal/utils/safecast"
	"github.com/smartcontractkit/multisend/types"
)

// Validate checks that supplied covers the value required by the batch. A batch that requires no
// value always passes, even without a supplied value. Excess value is accepted. Neither the batch
// nor supplied are modified.
func (b *Batch) Validate(supplied *big.Int) error {
	return validateCalls(b.Calls(), supplied)
}

// validateCalls runs the value check against one snapshot of the calls, so that the same snapshot
// can then be encoded.
func validateCalls(calls []types.Call, supplied *big.Int) error {
	required := requiredValue(calls)
	if required.Sign() == 0 {
		return nil
	}

	if supplied == nil || supplied.Cmp(required) < 0 {
		return NewInsufficientValueError(required, supplied)
	}

	return nil
}

// NormalizeValue converts a caller supplied amount into an unsigned 256 bit integer. nil means no
// value was supplied and yields nil. Strings may be decimal or 0x-prefixed hex.
func NormalizeValue(v any) (*big.Int, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case *big.Int:
		if val == nil {
			return nil, nil
		}

		return checkUint256(new(big.Int).Set(val))
	case big.Int:
		return checkUint256(new(big.Int).Set(&val))
	case string:
		return parseValue(val)
	case json.Number:
		return parseValue(val.String())
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		return new(big.Int).SetUint64(u), nil
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		u, err := safecast.Int64ToUint64(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		return new(big.Int).SetUint64(u), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

func parseValue(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidValue)
	}

	parsed, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an unsigned 256 bit integer", ErrInvalidValue, s)
	}

	return checkUint256(parsed)
}

func checkUint256(v *big.Int) (*big.Int, error) {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %s is out of the uint256 range", ErrInvalidValue, v)
	}

	return v, nil
}
