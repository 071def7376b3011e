package txsubmit

import (
	"context"
	"fmt"

	"github.com/gabapcia/txsend/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
)

// Submit implements Service.
func (s *service) Submit(ctx context.Context, req Request) (SignedTransaction, error) {
	ctx, span := s.tracer.Start(ctx, "txsubmit.Submit")

	tx, err := s.submit(ctx, req)
	if err == nil {
		span.SetAttributes(attribute.String("tx.hash", tx.Hash.Hex()))
	}

	s.instruments.recordSubmission(ctx, "submit", err)
	endSpan(span, err)

	return tx, err
}

func (s *service) submit(ctx context.Context, req Request) (SignedTransaction, error) {
	if err := req.Validate(); err != nil {
		return SignedTransaction{}, err
	}

	tx, err := s.signer.Sign(ctx, req)
	if err != nil {
		return SignedTransaction{}, signingFailure(err)
	}

	if err := tx.verifyHash(); err != nil {
		return SignedTransaction{}, &SigningError{Err: err}
	}

	if err := s.broadcast(ctx, tx); err != nil {
		return SignedTransaction{}, err
	}

	logger.Info(ctx, "transaction broadcast",
		"tx.hash", tx.Hash.Hex(),
		"tx.from", tx.From.Hex(),
		"tx.to", req.RawRecipient(),
		"tx.nonce", tx.Nonce,
		"tx.value", req.Value().String(),
		"tx.explorer_url", TransactionURL(s.explorerURL, tx.Hash),
	)

	return tx, nil
}

// broadcast sends the raw transaction once and checks the node agrees on its hash.
func (s *service) broadcast(ctx context.Context, tx SignedTransaction) error {
	hash, err := s.network.Broadcast(ctx, tx.Raw)
	if err != nil {
		return networkFailure("broadcast", err)
	}

	if hash != tx.Hash {
		return &NetworkError{
			Op:  "broadcast",
			Err: fmt.Errorf("%w: node reported %s for %s", errHashMismatch, hash.Hex(), tx.Hash.Hex()),
		}
	}

	return nil
}

// Resubmit implements Service.
func (s *service) Resubmit(ctx context.Context, tx SignedTransaction) (common.Hash, error) {
	ctx, span := s.tracer.Start(ctx, "txsubmit.Resubmit")
	span.SetAttributes(attribute.String("tx.hash", tx.Hash.Hex()))

	err := s.resubmit(ctx, tx)

	s.instruments.recordSubmission(ctx, "resubmit", err)
	endSpan(span, err)

	if err != nil {
		return common.Hash{}, err
	}
	return tx.Hash, nil
}

func (s *service) resubmit(ctx context.Context, tx SignedTransaction) error {
	if len(tx.Raw) == 0 {
		return &ValidationError{Field: "raw", Reason: "signed transaction has no encoding"}
	}

	if err := tx.verifyHash(); err != nil {
		return &ValidationError{Field: "hash", Reason: "does not match the signed encoding", Err: err}
	}

	if err := s.broadcast(ctx, tx); err != nil {
		return err
	}

	logger.Info(ctx, "transaction rebroadcast",
		"tx.hash", tx.Hash.Hex(),
		"tx.explorer_url", TransactionURL(s.explorerURL, tx.Hash),
	)

	return nil
}

// SubmitAndWait implements Service.
func (s *service) SubmitAndWait(ctx context.Context, req Request) (SignedTransaction, Receipt, error) {
	tx, err := s.Submit(ctx, req)
	if err != nil {
		return SignedTransaction{}, Receipt{}, err
	}

	receipt, err := s.AwaitConfirmation(ctx, tx.Hash, s.confirmTimeout, s.pollInterval)
	if err != nil {
		return tx, Receipt{}, err
	}

	return tx, receipt, nil
}
