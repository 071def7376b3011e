package txsubmit

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	errEmptyHash    = errors.New("signed transaction has an empty hash")
	errHashMismatch = errors.New("transaction hash does not match its encoding")
)

// SignedTransaction is a Request after signing: the resolved sender, nonce,
// chain and gas settings, the signature values, the encoded transaction ready
// for broadcast, and its hash.
type SignedTransaction struct {
	Request Request
	From    common.Address
	Nonce   uint64
	ChainID *big.Int
	Gas     GasParams // Resolved gas settings; Limit is always set
	V, R, S *big.Int
	Raw     []byte      // Canonical encoding (typed envelope or RLP for legacy)
	Hash    common.Hash // keccak256(Raw)
}

// verifyHash checks that the hash is set and matches keccak256 of the raw encoding.
func (t SignedTransaction) verifyHash() error {
	if t.Hash == (common.Hash{}) {
		return errEmptyHash
	}

	if computed := crypto.Keccak256Hash(t.Raw); computed != t.Hash {
		return fmt.Errorf("%w: hash %s, encoding hashes to %s", errHashMismatch, t.Hash.Hex(), computed.Hex())
	}

	return nil
}

// Signer turns a Request into a SignedTransaction. Nonce selection and gas
// resolution are the signer's responsibility.
type Signer interface {
	// Address returns the account transactions are sent from.
	Address() common.Address

	// Sign resolves the request against the network and signs it.
	//
	// Lookup failures should be returned as *NetworkError; anything else is
	// reported by Submit as a signing failure.
	Sign(ctx context.Context, req Request) (SignedTransaction, error)
}

// Network is the endpoint transactions are broadcast to and confirmed on.
type Network interface {
	// Broadcast announces the encoded transaction to the pending pool and
	// returns the hash reported by the node.
	Broadcast(ctx context.Context, raw []byte) (common.Hash, error)

	// GetReceipt returns the receipt for hash, or nil when the transaction has
	// not been included yet.
	GetReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)

	// TransactionKnown reports whether the node still knows the transaction,
	// either pending or mined.
	TransactionKnown(ctx context.Context, hash common.Hash) (bool, error)

	// BlockNumber returns the latest block number.
	BlockNumber(ctx context.Context) (uint64, error)
}
