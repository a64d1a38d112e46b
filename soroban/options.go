package soroban

import (
	"github.com/stellar/go-stellar-sdk/soroban/auth"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// defaultSubmitTimeoutSec bounds submit's total polling window, matching
// the JS SDK's default of five minutes.
const defaultSubmitTimeoutSec = 300

// ParseResultFunc converts a host function's raw return value into a
// caller-chosen native shape. AssembledTransaction.result and the final
// SUCCESS parse both apply it when set; otherwise the raw ScVal is
// returned.
type ParseResultFunc func(xdr.ScVal) (interface{}, error)

// DelegateFunc signs a single authorization entry remotely (a hardware
// wallet, a signing service) instead of through a local auth.Signer.
type DelegateFunc func(entry xdr.SorobanAuthorizationEntry) (xdr.SorobanAuthorizationEntry, error)

// Option configures an AssembledTransaction or ContractClient invocation.
type Option func(*options)

type options struct {
	submitTimeoutSec  int
	parseResultXdrFn  ParseResultFunc
	transactionSigner auth.Signer
	autoSubmit        bool
	autoSimulate      bool
}

func newOptions(opts ...Option) *options {
	o := &options{submitTimeoutSec: defaultSubmitTimeoutSec, autoSubmit: true, autoSimulate: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSubmitTimeout overrides submit's total polling window, in seconds.
func WithSubmitTimeout(seconds int) Option {
	return func(o *options) { o.submitTimeoutSec = seconds }
}

// WithParseResultXdrFn installs the function applied to a successfully
// parsed ScVal, for both the pre-submission simulation result and the
// post-submission meta return value.
func WithParseResultXdrFn(fn ParseResultFunc) Option {
	return func(o *options) { o.parseResultXdrFn = fn }
}

// WithTransactionSigner supplies the signer used by the restore-footprint
// sub-pipeline, which always signs and submits on its own regardless of
// whether the caller intends to sign the primary transaction.
func WithTransactionSigner(signer auth.Signer) Option {
	return func(o *options) { o.transactionSigner = signer }
}

// WithAutoSubmit controls whether ContractClient.invoke signs and submits a
// write call automatically (the default) or stops after simulation,
// returning the simulation result only.
func WithAutoSubmit(autoSubmit bool) Option {
	return func(o *options) { o.autoSubmit = autoSubmit }
}

// WithAutoSimulate controls whether ContractClient.invoke simulates the
// built transaction automatically (the default). Disabling it is only
// useful in combination with InvokeWithXdr's caller-controlled flow.
func WithAutoSimulate(autoSimulate bool) Option {
	return func(o *options) { o.autoSimulate = autoSimulate }
}
