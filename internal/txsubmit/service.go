// Package txsubmit submits signed transactions to a network and awaits their
// confirmation.
//
// Submission and confirmation are separate operations: Submit broadcasts exactly
// once and returns as soon as the node accepts the transaction, while
// AwaitConfirmation polls for a receipt until a caller-supplied timeout. Giving
// up on confirmation never affects a transaction that was already broadcast.
package txsubmit

import (
	"context"
	"strings"
	"time"

	"github.com/gabapcia/txsend/internal/pkg/telemetry"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultConfirmTimeout = 2 * time.Minute
	defaultPollInterval   = 4 * time.Second
	defaultConfirmations  = 1
	defaultDropTolerance  = 3
)

// Service defines the transaction submission workflow.
type Service interface {
	// Submit validates, signs and broadcasts req once.
	//
	// It fails with a *ValidationError before any network call when the request
	// is malformed, a *SigningError when the signer cannot sign, or a
	// *NetworkError when the broadcast fails.
	Submit(ctx context.Context, req Request) (SignedTransaction, error)

	// AwaitConfirmation polls every pollInterval until hash has a receipt with
	// enough confirmations or timeout elapses.
	//
	// It fails with a *TimeoutError on expiry (immediately when timeout <= 0)
	// and a *DroppedError when the network reports the transaction evicted.
	// Polling is read-only; the transaction is never rebroadcast.
	AwaitConfirmation(ctx context.Context, hash common.Hash, timeout, pollInterval time.Duration) (Receipt, error)

	// Resubmit rebroadcasts an already signed transaction. It reuses the
	// original nonce, so at most one of the broadcasts can be included.
	Resubmit(ctx context.Context, tx SignedTransaction) (common.Hash, error)

	// SubmitAndWait submits req and awaits its confirmation with the service
	// defaults. The signed transaction is returned even when confirmation fails.
	SubmitAndWait(ctx context.Context, req Request) (SignedTransaction, Receipt, error)
}

type service struct {
	signer       Signer
	network      Network
	receiptStore ReceiptStore

	confirmTimeout time.Duration
	pollInterval   time.Duration
	confirmations  uint64
	dropTolerance  int
	explorerURL    string

	tracer      trace.Tracer
	instruments instruments
}

var _ Service = (*service)(nil)

type config struct {
	receiptStore   ReceiptStore
	confirmTimeout time.Duration
	pollInterval   time.Duration
	confirmations  uint64
	dropTolerance  int
	explorerURL    string
}

// Option customizes the service.
type Option func(*config)

// New creates a Service that signs with signer and talks to network.
//
// Defaults: 2m confirmation timeout, 4s poll interval, 1 confirmation, a
// transaction is considered dropped after 3 consecutive polls in which the
// network does not know it, and no receipt cache.
func New(signer Signer, network Network, opts ...Option) *service {
	cfg := config{
		receiptStore:   nopReceiptStore{},
		confirmTimeout: defaultConfirmTimeout,
		pollInterval:   defaultPollInterval,
		confirmations:  defaultConfirmations,
		dropTolerance:  defaultDropTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		signer:         signer,
		network:        network,
		receiptStore:   cfg.receiptStore,
		confirmTimeout: cfg.confirmTimeout,
		pollInterval:   cfg.pollInterval,
		confirmations:  cfg.confirmations,
		dropTolerance:  cfg.dropTolerance,
		explorerURL:    cfg.explorerURL,
		tracer:         otel.Tracer(telemetry.InstrumentationName + "/txsubmit"),
		instruments:    newInstruments(),
	}
}

// WithReceiptStore caches confirmed receipts in rs.
func WithReceiptStore(rs ReceiptStore) Option {
	return func(c *config) {
		c.receiptStore = rs
	}
}

// WithConfirmTimeout sets the timeout used by SubmitAndWait.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *config) {
		c.confirmTimeout = d
	}
}

// WithPollInterval sets the poll interval used by SubmitAndWait.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithConfirmations sets how many blocks, counting the inclusion block, must
// exist before a receipt is reported. Values below 1 are treated as 1.
func WithConfirmations(n uint64) Option {
	return func(c *config) {
		c.confirmations = max(n, 1)
	}
}

// WithDropTolerance sets how many consecutive polls may find the transaction
// unknown before it is reported dropped. Values below 1 are treated as 1.
func WithDropTolerance(n int) Option {
	return func(c *config) {
		c.dropTolerance = max(n, 1)
	}
}

// WithExplorerURL sets the block explorer base URL used in log output.
func WithExplorerURL(u string) Option {
	return func(c *config) {
		c.explorerURL = u
	}
}

// TransactionURL returns the explorer page of hash, or an empty string when
// no explorer is configured.
func TransactionURL(explorerURL string, hash common.Hash) string {
	if explorerURL == "" {
		return ""
	}
	return strings.TrimRight(explorerURL, "/") + "/tx/" + hash.Hex()
}
