package evm

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	geth_abi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/multisend/internal/utils/abi"
)

// MultiSendABI is the ABI of the entry point of the MultiSend contract.
//
// https://github.com/safe-global/safe-smart-account/blob/main/contracts/libraries/MultiSend.sol
const MultiSendABI = `[{"inputs":[{"internalType":"bytes","name":"transactions","type":"bytes"}],"name":"multiSend","outputs":[],"stateMutability":"payable","type":"function"}]`

const (
	multiSendMethod = "multiSend"
	multiSendArgs   = `[{"type":"bytes"}]`
)

// ErrNotMultiSendCalldata is returned when calldata does not target multiSend(bytes).
var ErrNotMultiSendCalldata = errors.New("calldata is not a multiSend call")

var multiSendABI = mustParseABI(MultiSendABI)

func mustParseABI(def string) geth_abi.ABI {
	parsed, err := geth_abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}

// MultiSendSelector returns the 4 byte selector of multiSend(bytes).
func MultiSendSelector() []byte {
	return bytes.Clone(multiSendABI.Methods[multiSendMethod].ID)
}

// PackMultiSend encodes a packed batch as calldata for multiSend(bytes transactions).
func PackMultiSend(transactions []byte) ([]byte, error) {
	args, err := abi.Encode(multiSendArgs, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode multiSend arguments: %w", err)
	}

	return append(MultiSendSelector(), args...), nil
}

// UnpackMultiSend extracts the packed batch from multiSend calldata.
func UnpackMultiSend(calldata []byte) ([]byte, error) {
	if len(calldata) < 4 {
		return nil, fmt.Errorf("%w: calldata too short (%d bytes)", ErrNotMultiSendCalldata, len(calldata))
	}

	method, err := multiSendABI.MethodById(calldata[:4])
	if err != nil || method.Name != multiSendMethod {
		return nil, fmt.Errorf("%w: unexpected selector %s", ErrNotMultiSendCalldata, hexutil.Encode(calldata[:4]))
	}

	args, err := abi.Decode(multiSendArgs, calldata[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode multiSend arguments: %w", err)
	}

	transactions, ok := args[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected multiSend argument type %T", args[0])
	}

	return transactions, nil
}

// IsMultiSendCalldata reports whether data starts with the multiSend(bytes) selector.
func IsMultiSendCalldata(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], MultiSendSelector())
}
