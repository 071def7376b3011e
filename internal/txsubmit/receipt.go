package txsubmit

import (
	"bytes"
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrReceiptNotFound is returned by ReceiptStore.LoadReceipt when no receipt
// was stored for the requested hash.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptStatus is the execution outcome recorded in a receipt.
type ReceiptStatus uint64

const (
	ReceiptStatusFailed     ReceiptStatus = 0
	ReceiptStatusSuccessful ReceiptStatus = 1
)

func (s ReceiptStatus) String() string {
	if s == ReceiptStatusSuccessful {
		return "success"
	}
	return "failed"
}

// Receipt is the network's record of a transaction's inclusion in a block,
// with the transfer fields of the original request echoed back.
type Receipt struct {
	TxHash            common.Hash
	Status            ReceiptStatus
	BlockHash         common.Hash
	BlockNumber       uint64
	From              common.Address
	To                *common.Address // nil for contract creations
	ContractAddress   *common.Address // set for contract creations
	GasUsed           uint64
	EffectiveGasPrice *big.Int
	Value             *big.Int
	Data              []byte
}

// Succeeded reports whether the transaction executed without reverting.
func (r Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccessful
}

// Clone returns a deep copy of the receipt.
func (r Receipt) Clone() Receipt {
	c := r
	c.To = cloneAddress(r.To)
	c.ContractAddress = cloneAddress(r.ContractAddress)
	c.EffectiveGasPrice = cloneBig(r.EffectiveGasPrice)
	c.Value = cloneBig(r.Value)
	c.Data = bytes.Clone(r.Data)
	return c
}

func cloneAddress(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// ReceiptStore keeps receipts of confirmed transactions so repeated
// confirmation requests for the same hash are answered consistently.
type ReceiptStore interface {
	// SaveReceipt records a confirmed receipt. Saving the same receipt twice
	// must be harmless.
	SaveReceipt(ctx context.Context, receipt Receipt) error

	// LoadReceipt returns the stored receipt for hash, or ErrReceiptNotFound.
	LoadReceipt(ctx context.Context, hash common.Hash) (Receipt, error)
}

// nopReceiptStore stores nothing and never finds a receipt.
type nopReceiptStore struct{}

func (nopReceiptStore) SaveReceipt(_ context.Context, _ Receipt) error {
	return nil
}

func (nopReceiptStore) LoadReceipt(_ context.Context, _ common.Hash) (Receipt, error) {
	return Receipt{}, ErrReceiptNotFound
}
