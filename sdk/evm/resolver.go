package evm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/multisend/sdk"
	sdkerrors "github.com/smartcontractkit/multisend/sdk/errors"
	"github.com/smartcontractkit/multisend/types"
)

const (
	// DefaultMultiSendAddress is the deterministic deployment address of MultiSendCallOnly
	// v1.3.0, present on most EVM chains. That contract reverts on records tagged
	// OperationDelegateCall; batches carrying them need an override pointing at a full MultiSend.
	DefaultMultiSendAddress = "0x40A2aCCbd92BCA938b02010E17A5b8929b49130D"

	// AddressOverrideEnvPrefix prefixes environment variables overriding the MultiSend address of
	// a chain, e.g. MULTISEND_ADDRESS_16015286601757825753=0x...
	AddressOverrideEnvPrefix = "MULTISEND_ADDRESS_"
)

var _ sdk.AddressResolver = (*AddressResolver)(nil)

// AddressResolver resolves which MultiSend instance to target on a chain. Overrides take
// precedence over the default deployment.
type AddressResolver struct {
	overrides map[types.ChainSelector]common.Address
}

// NewAddressResolver creates a resolver with the given per chain overrides. overrides may be nil.
func NewAddressResolver(overrides map[types.ChainSelector]common.Address) *AddressResolver {
	o := make(map[types.ChainSelector]common.Address, len(overrides))
	for sel, addr := range overrides {
		o[sel] = addr
	}

	return &AddressResolver{overrides: o}
}

// Resolve returns the MultiSend address for the chain.
func (r *AddressResolver) Resolve(sel types.ChainSelector) (common.Address, error) {
	if addr, ok := r.overrides[sel]; ok {
		return addr, nil
	}

	family, err := types.GetChainSelectorFamily(sel)
	if err != nil {
		return common.Address{}, sdkerrors.NewUnsupportedChainError(sel, err.Error())
	}

	if family != chainsel.FamilyEVM {
		return common.Address{}, sdkerrors.NewUnsupportedChainError(sel, "chain family "+family)
	}

	return common.HexToAddress(DefaultMultiSendAddress), nil
}

// LoadAddressOverrides extracts MultiSend address overrides from environment style key/value
// pairs. Keys without AddressOverrideEnvPrefix are ignored.
func LoadAddressOverrides(env map[string]string) (map[types.ChainSelector]common.Address, error) {
	overrides := make(map[types.ChainSelector]common.Address)
	for key, value := range env {
		rawSel, ok := strings.CutPrefix(key, AddressOverrideEnvPrefix)
		if !ok {
			continue
		}

		sel, err := strconv.ParseUint(rawSel, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain selector in %s: %w", key, err)
		}

		value = strings.TrimSpace(value)
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("invalid address in %s: %q", key, value)
		}

		overrides[types.ChainSelector(sel)] = common.HexToAddress(value)
	}

	return overrides, nil
}
