package stellarrpc

import (
	"errors"
	"fmt"

	"github.com/creachadair/jrpc2"
)

// RpcError lifts a JSON-RPC error object {code, message, data} into a typed
// Go error, per spec.md's "Rpc — JSON-RPC error object; includes code and
// message verbatim" error category.
type RpcError struct {
	Code    int64
	Message string
	Data    string
}

func (e *RpcError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("stellarrpc: %s (code %d, data %s)", e.Message, e.Code, e.Data)
	}
	return fmt.Sprintf("stellarrpc: %s (code %d)", e.Message, e.Code)
}

// asRpcError converts an error returned by (*jrpc2.Client).CallResult into
// an *RpcError when it originated as a JSON-RPC error response, leaving
// transport-level errors (connection refused, timeout) untouched.
func asRpcError(err error) error {
	if err == nil {
		return nil
	}
	var jerr *jrpc2.Error
	if errors.As(err, &jerr) {
		return &RpcError{Code: int64(jerr.Code), Message: jerr.Message, Data: string(jerr.Data)}
	}
	return err
}

// SendTransactionFailedError is raised by AssembledTransaction.submit when
// sendTransaction returns anything other than PENDING.
type SendTransactionFailedError struct {
	Status SendTransactionStatus
}

func (e *SendTransactionFailedError) Error() string {
	return fmt.Sprintf("stellarrpc: sendTransaction returned status %s", e.Status)
}
