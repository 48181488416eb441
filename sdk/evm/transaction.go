package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/multisend/types"
)

// ToCallMsg returns the go-ethereum call message for a batch transaction sent from the given
// account, for collaborators that simulate with eth_call before sending.
func ToCallMsg(from common.Address, tx types.Transaction) ethereum.CallMsg {
	to := tx.To
	value := new(big.Int)
	if tx.Value != nil {
		value.Set(tx.Value)
	}

	return ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  []byte(tx.Data),
	}
}
