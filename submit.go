package multisend

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/sdk"
	"github.com/smartcontractkit/multisend/sdk/evm"
	"github.com/smartcontractkit/multisend/types"
)

// SubmitOpts configures how a batch is turned into a transaction.
type SubmitOpts struct {
	// Value is sent along with the transaction. It must cover the batch's required value.
	Value *big.Int

	// Operation overrides the batch level dispatch mode. When unset the batch is delegatecalled,
	// unless Impersonate is set.
	Operation *types.Operation

	// Impersonate marks a submission that calls MultiSend directly from an impersonated account
	// instead of through a Safe, so the default dispatch mode is a regular call.
	Impersonate bool

	// CollapseSingleCall sends a batch made of a single regular call straight to its target
	// instead of wrapping it in multiSend.
	CollapseSingleCall bool
}

// operation returns the batch level dispatch mode. This is independent from the per call tags,
// which default to OperationCall when calls are added.
func (o SubmitOpts) operation() types.Operation {
	if o.Operation != nil {
		return *o.Operation
	}
	if o.Impersonate {
		return types.OperationCall
	}

	return types.OperationDelegateCall
}

func (o SubmitOpts) value() *big.Int {
	if o.Value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(o.Value)
}

// Transaction validates the batch against opts.Value and builds the unsigned multiSend
// transaction to the executor at multiSendAddr, without sending it.
func (b *Batch) Transaction(multiSendAddr common.Address, opts SubmitOpts) (types.Transaction, error) {
	calls := b.Calls()
	if err := validateCalls(calls, opts.Value); err != nil {
		return types.Transaction{}, err
	}

	return b.transaction(multiSendAddr, calls, opts)
}

// transaction builds the transaction for an already validated snapshot of the calls.
func (b *Batch) transaction(multiSendAddr common.Address, calls []types.Call, opts SubmitOpts) (types.Transaction, error) {
	if opts.CollapseSingleCall && len(calls) == 1 && calls[0].Operation == types.OperationCall {
		return types.Transaction{
			To:        calls[0].To,
			Data:      calls[0].Data,
			Value:     opts.value(),
			Operation: types.OperationCall,
		}, nil
	}

	blob, err := b.encoder.Encode(calls)
	if err != nil {
		return types.Transaction{}, err
	}

	data, err := evm.PackMultiSend(blob)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("failed to pack multiSend calldata: %w", err)
	}

	return types.Transaction{
		To:        multiSendAddr,
		Data:      data,
		Value:     opts.value(),
		Operation: opts.operation(),
	}, nil
}

// Submit resolves the executor for the chain, builds the batch transaction and hands it to the
// submitter. The value check runs before anything is encoded or submitted. Failures are returned
// as is and never retried.
func (b *Batch) Submit(
	ctx context.Context,
	resolver sdk.AddressResolver,
	sel types.ChainSelector,
	submitter sdk.Submitter,
	opts SubmitOpts,
) (types.TransactionResult, error) {
	calls := b.Calls()
	if err := validateCalls(calls, opts.Value); err != nil {
		return types.TransactionResult{}, err
	}

	addr, err := resolver.Resolve(sel)
	if err != nil {
		return types.TransactionResult{}, err
	}

	tx, err := b.transaction(addr, calls, opts)
	if err != nil {
		return types.TransactionResult{}, err
	}

	lggr := sdk.LoggerFrom(ctx)
	lggr.Infof("submitting batch of %d calls to %s on chain %d (operation %s, value %s)",
		len(calls), tx.To.Hex(), sel, tx.Operation, tx.Value)

	result, err := submitter.Submit(ctx, tx)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to submit batch on chain %d: %w", sel, err)
	}

	lggr.Infof("batch submitted on chain %d: %s", sel, result.Hash)

	return result, nil
}
