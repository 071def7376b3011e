package txsubmit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txsend/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
)

// AwaitConfirmation implements Service.
func (s *service) AwaitConfirmation(ctx context.Context, hash common.Hash, timeout, pollInterval time.Duration) (Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "txsubmit.AwaitConfirmation")
	span.SetAttributes(
		attribute.String("tx.hash", hash.Hex()),
		attribute.String("confirm.timeout", timeout.String()),
	)

	start := time.Now()
	receipt, err := s.awaitConfirmation(ctx, hash, timeout, pollInterval)
	if err == nil {
		span.SetAttributes(attribute.Int64("tx.block_number", int64(receipt.BlockNumber)))
	}

	s.instruments.recordConfirmation(ctx, err, time.Since(start))
	endSpan(span, err)

	return receipt, err
}

func (s *service) awaitConfirmation(ctx context.Context, hash common.Hash, timeout, pollInterval time.Duration) (Receipt, error) {
	if timeout <= 0 {
		return Receipt{}, &TimeoutError{Hash: hash, Timeout: timeout}
	}

	if pollInterval <= 0 {
		return Receipt{}, &ValidationError{Field: "pollInterval", Reason: "must be positive"}
	}

	ctx = logger.Derive(ctx, "tx.hash", hash.Hex())

	cached, err := s.receiptStore.LoadReceipt(ctx, hash)
	switch {
	case err == nil:
		logger.Debug(ctx, "receipt served from store")
		return cached, nil
	case !errors.Is(err, ErrReceiptNotFound):
		logger.Warn(ctx, "failed to load stored receipt", "error", err)
	}

	start := time.Now()

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	tracker := confirmationTracker{hash: hash, dropTolerance: s.dropTolerance}
	for {
		receipt, confirmed, err := s.poll(pollCtx, &tracker)
		if err != nil {
			return Receipt{}, err
		}

		if confirmed {
			if err := s.receiptStore.SaveReceipt(ctx, receipt); err != nil {
				logger.Warn(ctx, "failed to store receipt", "error", err)
			}

			logger.Info(ctx, "transaction confirmed",
				"tx.status", receipt.Status.String(),
				"tx.block_number", receipt.BlockNumber,
				"tx.gas_used", receipt.GasUsed,
				"tx.explorer_url", TransactionURL(s.explorerURL, hash),
			)
			return receipt, nil
		}

		select {
		case <-pollCtx.Done():
			if err := ctx.Err(); err != nil {
				return Receipt{}, fmt.Errorf("awaiting confirmation of %s: %w", hash.Hex(), err)
			}
			return Receipt{}, &TimeoutError{Hash: hash, Timeout: timeout, Elapsed: time.Since(start)}
		case <-ticker.C:
		}
	}
}

// confirmationTracker carries the poll state of a single AwaitConfirmation call.
type confirmationTracker struct {
	hash          common.Hash
	dropTolerance int
	polls         int
	misses        int // consecutive polls in which the network did not know the transaction
}

// poll performs one read-only round against the network. Transient read
// failures are logged and reported as "not confirmed yet".
func (s *service) poll(ctx context.Context, t *confirmationTracker) (Receipt, bool, error) {
	t.polls++

	receipt, err := s.network.GetReceipt(ctx, t.hash)
	if err != nil {
		logPollFailure(ctx, t, "receipt lookup failed", err)
		return Receipt{}, false, nil
	}

	if receipt == nil {
		known, err := s.network.TransactionKnown(ctx, t.hash)
		if err != nil {
			logPollFailure(ctx, t, "transaction lookup failed", err)
			return Receipt{}, false, nil
		}

		if known {
			t.misses = 0
			logger.Debug(ctx, "transaction pending", "poll", t.polls)
			return Receipt{}, false, nil
		}

		t.misses++
		if t.misses >= t.dropTolerance {
			return Receipt{}, false, &DroppedError{Hash: t.hash, Polls: t.misses}
		}

		logger.Debug(ctx, "transaction unknown to the network", "poll", t.polls, "misses", t.misses)
		return Receipt{}, false, nil
	}

	t.misses = 0

	if s.confirmations > 1 {
		head, err := s.network.BlockNumber(ctx)
		if err != nil {
			logPollFailure(ctx, t, "block number lookup failed", err)
			return Receipt{}, false, nil
		}

		if depth := confirmationDepth(head, receipt.BlockNumber); depth < s.confirmations {
			logger.Debug(ctx, "awaiting more confirmations",
				"tx.block_number", receipt.BlockNumber,
				"confirmations", depth,
				"required", s.confirmations,
			)
			return Receipt{}, false, nil
		}
	}

	return *receipt, true, nil
}

// confirmationDepth counts the blocks from the inclusion block up to head, both included.
func confirmationDepth(head, included uint64) uint64 {
	if head < included {
		return 0
	}
	return head - included + 1
}

func logPollFailure(ctx context.Context, t *confirmationTracker, msg string, err error) {
	if ctx.Err() != nil {
		return
	}
	logger.Warn(ctx, msg, "poll", t.polls, "error", err)
}
