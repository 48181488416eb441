package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/types"
)

// Submitter hands an unsigned batch transaction to a chain. Signing, broadcasting and receipt
// handling are up to the implementation.
type Submitter interface {
	Submit(ctx context.Context, tx types.Transaction) (types.TransactionResult, error)
}

// AddressResolver resolves the executor contract address for a chain.
type AddressResolver interface {
	Resolve(sel types.ChainSelector) (common.Address, error)
}
