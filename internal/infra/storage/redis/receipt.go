package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/redis/go-redis/v9"
)

// receiptKeyPrefix is the namespace prefix for stored receipts.
const receiptKeyPrefix = "txsubmit"

// receiptKey constructs the Redis key of the receipt for a transaction hash:
//
//	"txsubmit:receipt:<hash>"
func receiptKey(hash common.Hash) string {
	return fmt.Sprintf("%s:receipt:%s", receiptKeyPrefix, hash.Hex())
}

// receiptRecord is the JSON document stored for a receipt.
type receiptRecord struct {
	TxHash            common.Hash     `json:"transactionHash"`
	Status            hexutil.Uint64  `json:"status"`
	BlockHash         common.Hash     `json:"blockHash"`
	BlockNumber       hexutil.Uint64  `json:"blockNumber"`
	From              common.Address  `json:"from"`
	To                *common.Address `json:"to,omitempty"`
	ContractAddress   *common.Address `json:"contractAddress,omitempty"`
	GasUsed           hexutil.Uint64  `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big    `json:"effectiveGasPrice,omitempty"`
	Value             *hexutil.Big    `json:"value,omitempty"`
	Data              hexutil.Bytes   `json:"data,omitempty"`
}

func newReceiptRecord(r txsubmit.Receipt) receiptRecord {
	return receiptRecord{
		TxHash:            r.TxHash,
		Status:            hexutil.Uint64(r.Status),
		BlockHash:         r.BlockHash,
		BlockNumber:       hexutil.Uint64(r.BlockNumber),
		From:              r.From,
		To:                r.To,
		ContractAddress:   r.ContractAddress,
		GasUsed:           hexutil.Uint64(r.GasUsed),
		EffectiveGasPrice: (*hexutil.Big)(r.EffectiveGasPrice),
		Value:             (*hexutil.Big)(r.Value),
		Data:              r.Data,
	}
}

func (r receiptRecord) toReceipt() txsubmit.Receipt {
	return txsubmit.Receipt{
		TxHash:            r.TxHash,
		Status:            txsubmit.ReceiptStatus(r.Status),
		BlockHash:         r.BlockHash,
		BlockNumber:       uint64(r.BlockNumber),
		From:              r.From,
		To:                r.To,
		ContractAddress:   r.ContractAddress,
		GasUsed:           uint64(r.GasUsed),
		EffectiveGasPrice: r.EffectiveGasPrice.ToInt(),
		Value:             r.Value.ToInt(),
		Data:              r.Data,
	}
}

// SaveReceipt implements the txsubmit.ReceiptStore interface.
//
// The receipt is stored as JSON under its transaction hash and expires after
// the configured TTL. Saving the same receipt again overwrites it with
// identical content.
func (c *client) SaveReceipt(ctx context.Context, receipt txsubmit.Receipt) error {
	data, err := json.Marshal(newReceiptRecord(receipt))
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, receiptKey(receipt.TxHash), data, c.receiptTTL).Err()
}

// LoadReceipt implements the txsubmit.ReceiptStore interface.
//
// If no receipt was stored for hash, it returns txsubmit.ErrReceiptNotFound.
func (c *client) LoadReceipt(ctx context.Context, hash common.Hash) (txsubmit.Receipt, error) {
	data, err := c.conn.Get(ctx, receiptKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txsubmit.ErrReceiptNotFound
		}

		return txsubmit.Receipt{}, err
	}

	var record receiptRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return txsubmit.Receipt{}, fmt.Errorf("decoding stored receipt %s: %w", hash.Hex(), err)
	}

	return record.toReceipt(), nil
}

// Compile-time assertion to ensure client implements the ReceiptStore interface.
var _ txsubmit.ReceiptStore = new(client)
