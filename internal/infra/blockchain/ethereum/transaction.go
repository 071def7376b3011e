package ethereum

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/txsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// alreadyKnownMessages are pool rejections meaning the node already holds the
// exact transaction being sent.
var alreadyKnownMessages = []string{
	"already known",
	"known transaction",
	"alreadyknown",
}

// isAlreadyKnown reports whether err is a node rejection for a transaction it already has.
func isAlreadyKnown(err error) bool {
	var providerErr *jsonrpc.ProviderError
	if !errors.As(err, &providerErr) {
		return false
	}

	msg := strings.ToLower(providerErr.Message)
	for _, known := range alreadyKnownMessages {
		if strings.Contains(msg, known) {
			return true
		}
	}

	return false
}

// Broadcast implements txsubmit.Network using eth_sendRawTransaction.
//
// A node answering that it already knows the transaction is treated as a
// successful broadcast; the hash is then derived from the encoding.
func (c *client) Broadcast(ctx context.Context, raw []byte) (common.Hash, error) {
	var hash common.Hash
	if _, err := c.call(ctx, &hash, "eth_sendRawTransaction", hexutil.Encode(raw)); err != nil {
		if isAlreadyKnown(err) {
			return crypto.Keccak256Hash(raw), nil
		}
		return common.Hash{}, err
	}

	return hash, nil
}

// getTransaction returns the transaction for hash, or nil when the node does not know it.
func (c *client) getTransaction(ctx context.Context, hash common.Hash) (*TransactionResponse, error) {
	var tx TransactionResponse
	found, err := c.call(ctx, &tx, "eth_getTransactionByHash", hash)
	if err != nil || !found {
		return nil, err
	}

	return &tx, nil
}

// GetReceipt implements txsubmit.Network using eth_getTransactionReceipt.
// The transaction is fetched too, so the receipt can echo its value and payload.
func (c *client) GetReceipt(ctx context.Context, hash common.Hash) (*txsubmit.Receipt, error) {
	var res ReceiptResponse
	found, err := c.call(ctx, &res, "eth_getTransactionReceipt", hash)
	if err != nil || !found {
		return nil, err
	}

	tx, err := c.getTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}

	receipt := res.toReceipt(tx)
	return &receipt, nil
}

// TransactionKnown implements txsubmit.Network using eth_getTransactionByHash.
func (c *client) TransactionKnown(ctx context.Context, hash common.Hash) (bool, error) {
	tx, err := c.getTransaction(ctx, hash)
	if err != nil {
		return false, err
	}

	return tx != nil, nil
}
