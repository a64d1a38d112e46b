// Package soroban orchestrates the simulate/sign/submit lifecycle of a
// Soroban contract invocation against a Soroban RPC server, the way the
// Soroban SDKs' AssembledTransaction and ContractClient do.
package soroban

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/stellar/go-stellar-sdk/clients/stellarrpc"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/auth"
	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// AssembledTransaction drives one Soroban transaction through simulate,
// sign (including per-entry authorization signing) and submit. An instance
// wraps a single operation — almost always an invokeHostFunction, or a
// restoreFootprint for the internal restore sub-pipeline — and is not safe
// for concurrent use.
type AssembledTransaction struct {
	rpc     *stellarrpc.Client
	network network.Network

	sourceAccountID string
	operation       txnbuild.Operation
	preconditions   txnbuild.Preconditions

	opts *options

	preparedAccount *txnbuild.SimpleAccount
	preparedFee     int64
	sorobanData     xdr.SorobanTransactionData

	built                   *txnbuild.Transaction
	simulateResponse        *stellarrpc.SimulateTransactionResponse
	sendTransactionResponse *stellarrpc.SendTransactionResponse
	getTransactionResponse  *stellarrpc.GetTransactionResponse

	restorePending bool
}

// NewAssembledTransaction wraps a single operation (an *txnbuild.
// InvokeHostFunction for a contract call, or an *txnbuild.RestoreFootprint
// for the restore sub-pipeline) bound to sourceAccountID on rpc/net.
func NewAssembledTransaction(rpc *stellarrpc.Client, net network.Network, sourceAccountID string, operation txnbuild.Operation, opts ...Option) *AssembledTransaction {
	return &AssembledTransaction{
		rpc:             rpc,
		network:         net,
		sourceAccountID: sourceAccountID,
		operation:       operation,
		preconditions:   txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(300)},
		opts:            newOptions(opts...),
	}
}

// fetchAccountSequence reads an account's current sequence number straight
// off the ledger via getLedgerEntries, the only account lookup this SDK's
// core performs itself (Horizon's loadAccount is the peripheral
// alternative spec'd for callers that prefer it).
func fetchAccountSequence(ctx context.Context, rpc *stellarrpc.Client, accountID string) (int64, error) {
	accountId, err := xdr.AddressToAccountId(accountID)
	if err != nil {
		return 0, errors.Wrap(err, "soroban: invalid source account address")
	}
	key := xdr.LedgerKey{Type: xdr.LedgerEntryTypeAccount, Account: &xdr.LedgerKeyAccount{AccountId: accountId}}
	keyB64, err := xdr.MarshalBase64(key)
	if err != nil {
		return 0, errors.Wrap(err, "soroban: encoding account ledger key")
	}
	resp, err := rpc.GetLedgerEntries(ctx, []string{keyB64})
	if err != nil {
		return 0, err
	}
	if len(resp.Entries) == 0 {
		return 0, errors.Errorf("soroban: account %s not found", accountID)
	}
	var entry xdr.LedgerEntry
	if err := xdr.UnmarshalBase64(resp.Entries[0].XDR, &entry); err != nil {
		return 0, errors.Wrap(err, "soroban: decoding account ledger entry")
	}
	if entry.Data.Account == nil {
		return 0, errors.Errorf("soroban: ledger entry for %s is not an account", accountID)
	}
	return int64(entry.Data.Account.SeqNum), nil
}

// rebuild assembles the transaction from the currently prepared account,
// fee and Soroban data, with the operation's latest state. Any previous
// envelope signature is dropped, since it is not carried over.
func (at *AssembledTransaction) rebuild() (*txnbuild.Transaction, error) {
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        at.preparedAccount,
		IncrementSequenceNum: false,
		Operations:           []txnbuild.Operation{at.operation},
		BaseFee:              at.preparedFee,
		Preconditions:        at.preconditions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "soroban: rebuilding transaction")
	}
	return tx.WithSorobanData(at.sorobanData)
}

// Simulate fetches the source account's current sequence, builds (or
// rebuilds) the transaction against it, and calls simulateTransaction. When
// restore is true and the response carries a restorePreamble, it runs the
// restore sub-pipeline once and re-simulates with restore=false.
func (at *AssembledTransaction) Simulate(ctx context.Context, restore bool) error {
	seq, err := fetchAccountSequence(ctx, at.rpc, at.sourceAccountID)
	if err != nil {
		return err
	}
	account := txnbuild.NewSimpleAccount(at.sourceAccountID, seq)
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{at.operation},
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        at.preconditions,
	})
	if err != nil {
		return errors.Wrap(err, "soroban: building transaction to simulate")
	}

	txB64, err := tx.Base64()
	if err != nil {
		return errors.Wrap(err, "soroban: encoding transaction to simulate")
	}

	resp, err := at.rpc.SimulateTransaction(ctx, txB64)
	if err != nil {
		return err
	}
	at.simulateResponse = &resp

	if resp.Error != "" {
		return &SimulationFailedError{Detail: resp.Error}
	}

	if resp.RestorePreamble != nil {
		if !restore {
			at.restorePending = true
			return at.prepareFrom(account, resp)
		}
		if err := at.restoreFootprint(ctx, *resp.RestorePreamble); err != nil {
			return err
		}
		at.restorePending = false
		return at.Simulate(ctx, false)
	}

	at.restorePending = false
	return at.prepareFrom(account, resp)
}

// prepareFrom stores the prepared account/fee/Soroban-data from a
// successful simulation response, updates the operation's authorization
// entries if it is an invokeHostFunction, and rebuilds the built
// transaction.
func (at *AssembledTransaction) prepareFrom(account txnbuild.SimpleAccount, resp stellarrpc.SimulateTransactionResponse) error {
	var data xdr.SorobanTransactionData
	if err := xdr.UnmarshalBase64(resp.TransactionData, &data); err != nil {
		return errors.Wrap(err, "soroban: decoding simulation transactionData")
	}

	if invokeOp, ok := at.operation.(*txnbuild.InvokeHostFunction); ok && len(resp.Results) > 0 {
		auths := make([]xdr.SorobanAuthorizationEntry, len(resp.Results[0].Auth))
		for i, a := range resp.Results[0].Auth {
			if err := xdr.UnmarshalBase64(a, &auths[i]); err != nil {
				return errors.Wrap(err, "soroban: decoding simulation authorization entry")
			}
		}
		invokeOp.Auth = auths
	}

	at.preparedAccount = &account
	at.preparedFee = txnbuild.MinBaseFee + resp.MinResourceFee
	at.sorobanData = data

	built, err := at.rebuild()
	if err != nil {
		return err
	}
	at.built = built
	return nil
}

// IsReadCall reports whether the simulated invocation needs no
// authorization and touches no writable ledger state, meaning the caller
// can use Result() directly without signing or submitting anything.
func (at *AssembledTransaction) IsReadCall() bool {
	if at.simulateResponse == nil {
		return false
	}
	for _, r := range at.simulateResponse.Results {
		if len(r.Auth) > 0 {
			return false
		}
	}
	return len(at.sorobanData.Resources.Footprint.ReadWrite) == 0
}

// NeedsNonInvokerSigningBy returns the addresses whose address-credentialed
// authorization entries still need a signature. With includeAlreadySigned
// it returns every address-credentialed entry's address regardless of
// whether it already carries a signature.
func (at *AssembledTransaction) NeedsNonInvokerSigningBy(includeAlreadySigned bool) []string {
	invokeOp, ok := at.operation.(*txnbuild.InvokeHostFunction)
	if !ok {
		return nil
	}
	var addrs []string
	for _, entry := range invokeOp.Auth {
		if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress {
			continue
		}
		if includeAlreadySigned || scval.IsVoid(entry.Credentials.Address.Signature) {
			addrs = append(addrs, entry.Credentials.Address.Address.Address())
		}
	}
	return addrs
}

// SignAuthEntries signs (locally via signer, or remotely via delegate) the
// entries of the single invokeHostFunction operation whose address
// credentials match signer's address, then rebuilds the transaction,
// dropping any previous envelope signature. validUntilLedgerSeq defaults to
// the latest ledger's sequence plus 100.
func (at *AssembledTransaction) SignAuthEntries(ctx context.Context, signer auth.Signer, validUntilLedgerSeq *uint32, delegate DelegateFunc) error {
	if at.built == nil {
		return &NotYetSimulatedError{}
	}
	invokeOp, ok := at.operation.(*txnbuild.InvokeHostFunction)
	if !ok {
		return errors.New("soroban: SignAuthEntries requires an invokeHostFunction operation")
	}

	expiry := uint32(0)
	if validUntilLedgerSeq != nil {
		expiry = *validUntilLedgerSeq
	} else {
		ledger, err := at.rpc.GetLatestLedger(ctx)
		if err != nil {
			return err
		}
		expiry = ledger.Sequence + 100
	}

	updated := make([]xdr.SorobanAuthorizationEntry, len(invokeOp.Auth))
	for i, entry := range invokeOp.Auth {
		if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress ||
			entry.Credentials.Address.Address.Address() != signer.Address() {
			updated[i] = entry
			continue
		}
		var err error
		if delegate != nil {
			updated[i], err = delegate(entry)
		} else {
			updated[i], err = auth.AuthorizeEntry(entry, signer, expiry, at.network)
		}
		if err != nil {
			return err
		}
	}
	invokeOp.Auth = updated

	built, err := at.rebuild()
	if err != nil {
		return err
	}
	at.built = built
	return nil
}

// Sign attaches signer's envelope signature. A read call requires force to
// sign; a simulation with an unrestored preamble always fails; outstanding
// address-credentialed authorization requirements (other than contract
// addresses, which cannot themselves sign) also fail.
func (at *AssembledTransaction) Sign(signer *keypair.Full, force bool) error {
	if at.built == nil {
		return &NotYetSimulatedError{}
	}
	if at.IsReadCall() && !force {
		return &NoSignatureNeededError{}
	}
	if at.restorePending {
		return &ExpiredStateError{}
	}
	var needed []string
	for _, addr := range at.NeedsNonInvokerSigningBy(false) {
		parsed, err := xdr.AddressToScAddress(addr)
		if err == nil && parsed.Type == xdr.ScAddressTypeScAddressTypeContract {
			continue
		}
		needed = append(needed, addr)
	}
	if len(needed) > 0 {
		return &NeedsMoreSignaturesError{Addresses: needed}
	}

	signedTx, err := at.built.Sign(at.network.Passphrase, signer)
	if err != nil {
		return errors.Wrap(err, "soroban: signing transaction")
	}
	at.built = signedTx
	return nil
}

// Result returns the host function's return value as observed by
// simulation, before any submission. For a read call this is the final
// answer.
func (at *AssembledTransaction) Result() (interface{}, error) {
	if at.simulateResponse == nil {
		return nil, &NotYetSimulatedError{}
	}
	if len(at.simulateResponse.Results) == 0 {
		return nil, errors.New("soroban: simulation returned no results")
	}
	var scv xdr.ScVal
	if err := xdr.UnmarshalBase64(at.simulateResponse.Results[0].XDR, &scv); err != nil {
		return nil, errors.Wrap(err, "soroban: decoding simulation result")
	}
	return at.applyParse(scv)
}

func (at *AssembledTransaction) applyParse(scv xdr.ScVal) (interface{}, error) {
	if at.opts.parseResultXdrFn != nil {
		return at.opts.parseResultXdrFn(scv)
	}
	return scv, nil
}

// Submit sends the built, signed transaction (if not already sent) and
// polls getTransaction with exponential backoff until SUCCESS or FAILED, or
// the submit timeout elapses.
func (at *AssembledTransaction) Submit(ctx context.Context) (interface{}, error) {
	if at.built == nil {
		return nil, &NotYetSimulatedError{}
	}

	if at.sendTransactionResponse == nil {
		txB64, err := at.built.Base64()
		if err != nil {
			return nil, errors.Wrap(err, "soroban: encoding transaction to submit")
		}
		resp, err := at.rpc.SendTransaction(ctx, txB64)
		if err != nil {
			return nil, err
		}
		at.sendTransactionResponse = &resp
		if resp.Status != stellarrpc.SendTransactionStatusPending {
			return nil, &stellarrpc.SendTransactionFailedError{Status: resp.Status}
		}
	}

	hash := at.sendTransactionResponse.Hash
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	bo.MaxInterval = 60 * time.Second
	bo.MaxElapsedTime = time.Duration(at.opts.submitTimeoutSec) * time.Second
	bo.Reset()

	for {
		resp, err := at.rpc.GetTransaction(ctx, hash)
		if err != nil {
			return nil, err
		}
		at.getTransactionResponse = &resp

		switch resp.Status {
		case stellarrpc.TransactionStatusSuccess:
			return at.parseSuccess(resp)
		case stellarrpc.TransactionStatusFailed:
			return nil, &TransactionFailedError{ResultCode: resp.ResultXdr}
		}

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return nil, &TransactionStillPendingError{Hash: hash}
		}
		log.Ctx(ctx).WithField("hash", hash).WithField("delay", delay).Debug("soroban: transaction still pending, backing off")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (at *AssembledTransaction) parseSuccess(resp stellarrpc.GetTransactionResponse) (interface{}, error) {
	var meta xdr.TransactionMeta
	if err := xdr.UnmarshalBase64(resp.ResultMetaXdr, &meta); err != nil {
		return nil, errors.Wrap(err, "soroban: decoding result meta")
	}
	scv, err := meta.ReturnValue()
	if err != nil {
		return nil, err
	}
	return at.applyParse(scv)
}

// SignAndSubmit signs with signer (force=false) then submits.
func (at *AssembledTransaction) SignAndSubmit(ctx context.Context, signer *keypair.Full) (interface{}, error) {
	if err := at.Sign(signer, false); err != nil {
		return nil, err
	}
	return at.Submit(ctx)
}

// restoreFootprint runs the one-shot restore sub-pipeline: a sibling
// AssembledTransaction wrapping a restoreFootprint operation, simulated
// without recursive restore, carrying the original preamble's Soroban data,
// signed with the configured transaction signer and submitted.
func (at *AssembledTransaction) restoreFootprint(ctx context.Context, preamble stellarrpc.RestorePreamble) error {
	if at.opts.transactionSigner == nil {
		return &RestorationFailureError{Detail: "no transaction signer configured for restore"}
	}

	restoreOp := &txnbuild.RestoreFootprint{SourceAccount: at.sourceAccountID}
	sibling := NewAssembledTransaction(at.rpc, at.network, at.sourceAccountID, restoreOp,
		WithSubmitTimeout(at.opts.submitTimeoutSec))
	sibling.preconditions = txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()}

	if err := sibling.Simulate(ctx, false); err != nil {
		return &RestorationFailureError{Detail: err.Error()}
	}
	if sibling.simulateResponse.RestorePreamble != nil {
		return &RestorationFailureError{Detail: "restore simulation itself required a restore"}
	}

	var preambleData xdr.SorobanTransactionData
	if err := xdr.UnmarshalBase64(preamble.TransactionData, &preambleData); err != nil {
		return &RestorationFailureError{Detail: "decoding preamble transactionData: " + err.Error()}
	}
	sibling.sorobanData = preambleData
	rebuilt, err := sibling.rebuild()
	if err != nil {
		return &RestorationFailureError{Detail: err.Error()}
	}
	sibling.built = rebuilt

	signer, ok := at.opts.transactionSigner.(*keypair.Full)
	if !ok {
		return &RestorationFailureError{Detail: "restore signer must be a local *keypair.Full"}
	}
	if err := sibling.Sign(signer, true); err != nil {
		return &RestorationFailureError{Detail: err.Error()}
	}

	if _, err := sibling.Submit(ctx); err != nil {
		return &RestorationFailureError{Detail: err.Error()}
	}
	return nil
}
