package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Transaction is the unsigned request handed to a submission collaborator. Data is the full
// calldata for the executor, Operation is the batch level dispatch mode.
type Transaction struct {
	To        common.Address `json:"to"`
	Data      hexutil.Bytes  `json:"data"`
	Value     *big.Int       `json:"value"`
	Operation Operation      `json:"operation"`
}

// TransactionResult represents a generic blockchain transaction.
// It contains the hash of the transaction and the transaction itself.
// Users of this struct should cast the transaction to the appropriate type.
type TransactionResult struct {
	Hash           string `json:"hash"`
	ChainFamily    string `json:"chainFamily"`
	RawTransaction any    `json:"tx"`
}
