package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
var ErrChainFamilyNotFound = errors.New("chain family not found")

// GetChainSelectorFamily returns the family of the chain selector.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, sel)
	}

	return family, nil
}
