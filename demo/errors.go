package demo

import "errors"

var (
	// ErrProviderAbsent means no wallet was detected at startup
	ErrProviderAbsent = errors.New("no wallet provider found")
	// ErrConnectionRejected means the provider refused or failed to connect
	ErrConnectionRejected = errors.New("wallet connection rejected or failed")
	// ErrAirdropFailed means the airdrop was not granted or not confirmed
	ErrAirdropFailed = errors.New("airdrop failed")
	// ErrTransferPrecondition is the parent of ErrNoReceiver and ErrNoSender
	ErrTransferPrecondition = errors.New("transfer precondition unmet")
	// ErrSubmissionFailed means the transfer could not be built, sent or confirmed
	ErrSubmissionFailed = errors.New("transaction submission failed")

	// ErrNoReceiver means no wallet is connected to receive the transfer
	ErrNoReceiver error = &preconditionError{msg: "receiver public key is undefined"}
	// ErrNoSender means no sender keypair was created yet
	ErrNoSender error = &preconditionError{msg: "sender keypair is undefined, create an account first"}
)

type preconditionError struct{ msg string }

func (e *preconditionError) Error() string { return e.msg }

func (e *preconditionError) Unwrap() error { return ErrTransferPrecondition }

// ErrorCode maps an operation error to a stable code for API responses
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProviderAbsent):
		return "PROVIDER_ABSENT"
	case errors.Is(err, ErrConnectionRejected):
		return "CONNECTION_REJECTED"
	case errors.Is(err, ErrAirdropFailed):
		return "AIRDROP_FAILED"
	case errors.Is(err, ErrTransferPrecondition):
		return "TRANSFER_PRECONDITION_UNMET"
	case errors.Is(err, ErrSubmissionFailed):
		return "TRANSACTION_SUBMISSION_FAILED"
	}
	return "INTERNAL"
}
