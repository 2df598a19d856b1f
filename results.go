package governance

import (
	"github.com/tendermint/tendermint/libs/common"
)

// ExecResult captures any non-error outcome of an authorized call
// to make sure people use error for error cases
type ExecResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Diff, if present, carries the weight changes applied by this call
	Diff []WeightChange
	// Tags, if present, can be used by the embedding application to index
	// and search the call history
	Tags []common.KVPair
}
