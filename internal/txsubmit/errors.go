package txsubmit

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrValidation marks a malformed request. It is local and never retried.
	ErrValidation = errors.New("invalid transaction request")

	// ErrSigning marks a signer that is unavailable or refused to sign. It is fatal.
	ErrSigning = errors.New("transaction signing failed")

	// ErrNetwork marks an unreachable or failing endpoint. Callers may retry
	// the submission with a fresh nonce.
	ErrNetwork = errors.New("network request failed")

	// ErrTimeout marks a confirmation that was not observed in time. The
	// transaction may still be included later.
	ErrTimeout = errors.New("confirmation timed out")

	// ErrDropped marks a transaction evicted from the pending pool. It must be
	// resubmitted.
	ErrDropped = errors.New("transaction dropped from pending pool")
)

// ValidationError reports the request field that failed local validation.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ValidationError) Unwrap() error        { return e.Err }

// SigningError wraps a signer failure.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSigning, e.Err)
}

func (e *SigningError) Is(target error) bool { return target == ErrSigning }
func (e *SigningError) Unwrap() error        { return e.Err }

// NetworkError wraps an endpoint failure together with the operation that failed
// (e.g., "broadcast", "chain id").
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrNetwork, e.Op, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
func (e *NetworkError) Unwrap() error        { return e.Err }

// TimeoutError reports how long confirmation was awaited.
type TimeoutError struct {
	Hash    common.Hash
	Timeout time.Duration
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %s not confirmed after %s (timeout %s)", ErrTimeout, e.Hash.Hex(), e.Elapsed.Round(time.Millisecond), e.Timeout)
}

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// DroppedError reports a transaction the network no longer knows about.
type DroppedError struct {
	Hash  common.Hash
	Polls int // Consecutive polls that found neither a receipt nor a pending transaction
}

func (e *DroppedError) Error() string {
	return fmt.Sprintf("%s: %s unknown to the network for %d consecutive polls", ErrDropped, e.Hash.Hex(), e.Polls)
}

func (e *DroppedError) Is(target error) bool { return target == ErrDropped }

// signingFailure classifies an error returned by a Signer. Lookup failures the
// signer already reported as network or validation errors keep their kind.
func signingFailure(err error) error {
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrValidation) || errors.Is(err, ErrSigning) {
		return err
	}
	return &SigningError{Err: err}
}

// networkFailure wraps err as a NetworkError for op unless it already is one.
func networkFailure(op string, err error) error {
	if errors.Is(err, ErrNetwork) {
		return err
	}
	return &NetworkError{Op: op, Err: err}
}
