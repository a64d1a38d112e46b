package soroban

import "fmt"

// NotYetSimulatedError is returned by any AssembledTransaction method that
// requires a built transaction (Sign, SignAuthEntries, Submit, Result)
// before Simulate has produced one.
type NotYetSimulatedError struct{}

func (e *NotYetSimulatedError) Error() string {
	return "soroban: transaction has not been simulated yet"
}

// SimulationFailedError wraps the detail string simulateTransaction
// returned in its error field.
type SimulationFailedError struct{ Detail string }

func (e *SimulationFailedError) Error() string {
	return fmt.Sprintf("soroban: simulation failed: %s", e.Detail)
}

// RestorationFailureError is raised when the one-shot restore-then-retry
// sub-pipeline cannot complete, including the disallowed case of a restore
// simulation that itself requires a restore.
type RestorationFailureError struct{ Detail string }

func (e *RestorationFailureError) Error() string {
	return fmt.Sprintf("soroban: footprint restoration failed: %s", e.Detail)
}

// NoSignatureNeededError is raised by sign when the call is read-only and
// the caller did not pass force=true.
type NoSignatureNeededError struct{}

func (e *NoSignatureNeededError) Error() string {
	return "soroban: read-only call needs no signature"
}

// NeedsMoreSignaturesError reports the addresses whose authorization
// entries still carry a void signature.
type NeedsMoreSignaturesError struct{ Addresses []string }

func (e *NeedsMoreSignaturesError) Error() string {
	return fmt.Sprintf("soroban: needs authorization signatures from %v", e.Addresses)
}

// ExpiredStateError is raised by sign when the simulation carried a
// restorePreamble that was never run through the restore sub-pipeline.
type ExpiredStateError struct{}

func (e *ExpiredStateError) Error() string {
	return "soroban: simulation requires footprint restoration before signing"
}

// TransactionStillPendingError is raised when submit's polling loop
// exhausts its timeout without observing SUCCESS or FAILED. The hash lets
// the caller resume polling getTransaction out-of-band.
type TransactionStillPendingError struct{ Hash string }

func (e *TransactionStillPendingError) Error() string {
	return fmt.Sprintf("soroban: transaction %s is still pending", e.Hash)
}

// TransactionFailedError is raised when getTransaction reports status
// FAILED.
type TransactionFailedError struct{ ResultCode string }

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("soroban: transaction failed: %s", e.ResultCode)
}
