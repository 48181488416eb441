package types

import "fmt"

// Operation is the single-byte tag that tells the executor how to dispatch a call.
//
// The codec treats the tag as opaque: any byte value round-trips unchanged. Only the executor
// decides whether a tag is meaningful.
type Operation uint8

const (
	// OperationCall performs a regular CALL to the target.
	OperationCall Operation = 0

	// OperationDelegateCall performs a DELEGATECALL to the target. This is the default dispatch
	// mode for a whole batch handed to a Safe, since MultiSend must run in the Safe's context.
	OperationDelegateCall Operation = 1
)

// String returns the human readable name of the operation.
func (o Operation) String() string {
	switch o {
	case OperationCall:
		return "call"
	case OperationDelegateCall:
		return "delegatecall"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}
