// Package local implements txsubmit.Signer with a private key held in memory.
// Chain state needed for signing (chain id, nonce, fees, gas limit) is read
// through a Chain, typically the Ethereum JSON-RPC client.
package local

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/txsend/internal/pkg/logger"
	"github.com/gabapcia/txsend/internal/pkg/resilience/retry"
	"github.com/gabapcia/txsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txsend/internal/txsubmit"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrMissingKey is returned by Sign when the signer was built without a private key.
	ErrMissingKey = errors.New("no private key configured")

	// ErrInvalidKey is returned by NewSigner when the private key cannot be parsed.
	ErrInvalidKey = errors.New("invalid private key")

	// ErrDynamicFeeUnsupported is returned when a request asks for EIP-1559 fees
	// on a network without a base fee.
	ErrDynamicFeeUnsupported = errors.New("network does not support dynamic fee transactions")
)

// Chain is the read-only view of the network needed to sign a transaction.
type Chain interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonce(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)

	// BaseFee returns nil when the network has no base fee.
	BaseFee(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
}

type signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chain   Chain
	retry   retry.Retry

	mu      sync.Mutex
	chainID *big.Int // resolved once, the endpoint never changes networks
}

// Ensure signer implements the txsubmit.Signer interface at compile time.
var _ txsubmit.Signer = (*signer)(nil)

// Option customizes the signer.
type Option func(*signer)

// WithRetry sets the retry policy applied to chain lookups.
func WithRetry(r retry.Retry) Option {
	return func(s *signer) {
		s.retry = r
	}
}

// isTransient reports whether a lookup failure is worth another attempt.
// Errors answered by the node itself are deterministic.
func isTransient(err error) bool {
	return !errors.Is(err, jsonrpc.ErrProviderReturnedError)
}

// NewSigner parses a hex private key, with or without the 0x prefix. An empty
// key builds a signer without key material: it can be wired into read-only
// flows, but Sign fails with ErrMissingKey.
func NewSigner(privateKeyHex string, chain Chain, opts ...Option) (*signer, error) {
	s := &signer{
		chain: chain,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(250*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithRetryIf(isTransient),
		),
	}
	for _, opt := range opts {
		opt(s)
	}

	privateKeyHex = strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if privateKeyHex == "" {
		return s, nil
	}

	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)

	return s, nil
}

// Address implements txsubmit.Signer. It is the zero address when no key is configured.
func (s *signer) Address() common.Address {
	return s.address
}

// lookup runs a read-only chain call under the retry policy. Failures are
// reported as network errors so the submitter does not mistake them for
// signing problems.
func (s *signer) lookup(ctx context.Context, op string, fn func() error) error {
	if err := s.retry.Execute(ctx, fn); err != nil {
		return &txsubmit.NetworkError{Op: op, Err: err}
	}
	return nil
}

func (s *signer) resolveChainID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID != nil {
		return s.chainID, nil
	}

	var id *big.Int
	err := s.lookup(ctx, "chain id", func() (err error) {
		id, err = s.chain.ChainID(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.chainID = id
	return id, nil
}

// Sign implements txsubmit.Signer.
//
// Missing gas settings are filled from the network: a legacy price when the
// request sets one or the network has no base fee, otherwise an EIP-1559 fee
// cap of twice the latest base fee plus the tip. A zero gas limit is estimated.
func (s *signer) Sign(ctx context.Context, req txsubmit.Request) (txsubmit.SignedTransaction, error) {
	if s.key == nil {
		return txsubmit.SignedTransaction{}, ErrMissingKey
	}

	chainID, err := s.resolveChainID(ctx)
	if err != nil {
		return txsubmit.SignedTransaction{}, err
	}

	var nonce uint64
	err = s.lookup(ctx, "pending nonce", func() (err error) {
		nonce, err = s.chain.PendingNonce(ctx, s.address)
		return err
	})
	if err != nil {
		return txsubmit.SignedTransaction{}, err
	}

	gas, err := s.resolveFees(ctx, req.Gas())
	if err != nil {
		return txsubmit.SignedTransaction{}, err
	}

	if gas.Limit == 0 {
		err = s.lookup(ctx, "estimate gas", func() (err error) {
			gas.Limit, err = s.chain.EstimateGas(ctx, s.callMsg(req, gas))
			return err
		})
		if err != nil {
			return txsubmit.SignedTransaction{}, err
		}
	}

	tx := buildTransaction(chainID, nonce, req, gas)

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return txsubmit.SignedTransaction{}, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return txsubmit.SignedTransaction{}, fmt.Errorf("encoding signed transaction: %w", err)
	}

	v, r, sig := signed.RawSignatureValues()

	logger.Debug(ctx, "transaction signed",
		"tx.hash", signed.Hash().Hex(),
		"tx.type", signed.Type(),
		"tx.nonce", nonce,
		"tx.gas_limit", gas.Limit,
	)

	return txsubmit.SignedTransaction{
		Request: req,
		From:    s.address,
		Nonce:   nonce,
		ChainID: new(big.Int).Set(chainID),
		Gas:     gas,
		V:       v,
		R:       r,
		S:       sig,
		Raw:     raw,
		Hash:    signed.Hash(),
	}, nil
}

// resolveFees fills the fee fields the request left empty.
func (s *signer) resolveFees(ctx context.Context, gas txsubmit.GasParams) (txsubmit.GasParams, error) {
	if gas.IsLegacy() {
		return gas, nil
	}

	var baseFee *big.Int
	err := s.lookup(ctx, "base fee", func() (err error) {
		baseFee, err = s.chain.BaseFee(ctx)
		return err
	})
	if err != nil {
		return gas, err
	}

	if baseFee == nil {
		if gas.FeeCap != nil || gas.TipCap != nil {
			return gas, ErrDynamicFeeUnsupported
		}

		err := s.lookup(ctx, "gas price", func() (err error) {
			gas.Price, err = s.chain.SuggestGasPrice(ctx)
			return err
		})
		return gas, err
	}

	if gas.TipCap == nil {
		err := s.lookup(ctx, "gas tip cap", func() (err error) {
			gas.TipCap, err = s.chain.SuggestGasTipCap(ctx)
			return err
		})
		if err != nil {
			return gas, err
		}
	}

	if gas.FeeCap == nil {
		gas.FeeCap = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), gas.TipCap)
	}

	// A suggested tip can exceed a caller-provided cap.
	if gas.TipCap.Cmp(gas.FeeCap) > 0 {
		gas.TipCap = new(big.Int).Set(gas.FeeCap)
	}

	return gas, nil
}

func (s *signer) callMsg(req txsubmit.Request, gas txsubmit.GasParams) geth.CallMsg {
	return geth.CallMsg{
		From:      s.address,
		To:        req.Recipient(),
		GasPrice:  gas.Price,
		GasFeeCap: gas.FeeCap,
		GasTipCap: gas.TipCap,
		Value:     req.Value(),
		Data:      req.Data(),
	}
}

func buildTransaction(chainID *big.Int, nonce uint64, req txsubmit.Request, gas txsubmit.GasParams) *types.Transaction {
	if gas.IsLegacy() {
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gas.Price,
			Gas:      gas.Limit,
			To:       req.Recipient(),
			Value:    req.Value(),
			Data:     req.Data(),
		})
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gas.TipCap,
		GasFeeCap: gas.FeeCap,
		Gas:       gas.Limit,
		To:        req.Recipient(),
		Value:     req.Value(),
		Data:      req.Data(),
	})
}
