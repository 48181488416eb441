package chaintest

import (
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/multisend/types"
)

var (
	Chain1RawSelector = cselectors.GETH_TESTNET.Selector       // 3379446385462418246
	Chain1Selector    = types.ChainSelector(Chain1RawSelector) // 3379446385462418246
	Chain1EVMID       = cselectors.GETH_TESTNET.EvmChainID     // 1337

	Chain2RawSelector = cselectors.ETHEREUM_TESTNET_SEPOLIA.Selector   // 16015286601757825753
	Chain2Selector    = types.ChainSelector(Chain2RawSelector)         // 16015286601757825753
	Chain2EVMID       = cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID // 11155111

	// Chain4Selector belongs to a non EVM family.
	Chain4RawSelector = cselectors.SOLANA_DEVNET.Selector
	Chain4Selector    = types.ChainSelector(Chain4RawSelector)

	// ChainInvalidSelector is a chain selector that doesn't exist.
	ChainInvalidSelector = types.ChainSelector(0)
)
