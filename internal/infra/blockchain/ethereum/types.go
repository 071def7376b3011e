package ethereum

import (
	"github.com/gabapcia/txsend/internal/pkg/types"
	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// TransactionResponse represents a transaction object returned by eth_getTransactionByHash.
	TransactionResponse struct {
		Type                 types.Hex       `json:"type"`
		ChainID              types.Hex       `json:"chainId"`
		Nonce                types.Hex       `json:"nonce"`
		Gas                  types.Hex       `json:"gas"`
		GasPrice             types.Hex       `json:"gasPrice"`
		MaxFeePerGas         types.Hex       `json:"maxFeePerGas"`
		MaxPriorityFeePerGas types.Hex       `json:"maxPriorityFeePerGas"`
		From                 common.Address  `json:"from"`
		To                   *common.Address `json:"to"`
		Value                types.Hex       `json:"value"`
		Input                hexutil.Bytes   `json:"input"`
		Hash                 common.Hash     `json:"hash"`
		BlockHash            *common.Hash    `json:"blockHash"`
		BlockNumber          types.Hex       `json:"blockNumber"`
		V                    types.Hex       `json:"v"`
		R                    types.Hex       `json:"r"`
		S                    types.Hex       `json:"s"`
	}

	// ReceiptResponse represents a receipt object returned by eth_getTransactionReceipt.
	ReceiptResponse struct {
		Type              types.Hex       `json:"type"`
		TransactionHash   common.Hash     `json:"transactionHash"`
		TransactionIndex  types.Hex       `json:"transactionIndex"`
		BlockHash         common.Hash     `json:"blockHash"`
		BlockNumber       types.Hex       `json:"blockNumber"`
		From              common.Address  `json:"from"`
		To                *common.Address `json:"to"`
		ContractAddress   *common.Address `json:"contractAddress"`
		CumulativeGasUsed types.Hex       `json:"cumulativeGasUsed"`
		GasUsed           types.Hex       `json:"gasUsed"`
		EffectiveGasPrice types.Hex       `json:"effectiveGasPrice"`
		Status            types.Hex       `json:"status"`
	}

	// BlockHeaderResponse holds the header fields of an eth_getBlockByNumber result.
	BlockHeaderResponse struct {
		Hash          common.Hash `json:"hash"`
		Number        types.Hex   `json:"number"`
		BaseFeePerGas types.Hex   `json:"baseFeePerGas"`
	}

	// callArgs is the transaction call object accepted by eth_estimateGas.
	callArgs struct {
		From                 common.Address  `json:"from"`
		To                   *common.Address `json:"to,omitempty"`
		Gas                  types.Hex       `json:"gas,omitempty"`
		GasPrice             types.Hex       `json:"gasPrice,omitempty"`
		MaxFeePerGas         types.Hex       `json:"maxFeePerGas,omitempty"`
		MaxPriorityFeePerGas types.Hex       `json:"maxPriorityFeePerGas,omitempty"`
		Value                types.Hex       `json:"value,omitempty"`
		Data                 hexutil.Bytes   `json:"data,omitempty"`
	}
)

// toReceipt converts a ReceiptResponse into a txsubmit.Receipt, echoing the
// value and payload of the transaction it belongs to.
func (r ReceiptResponse) toReceipt(tx *TransactionResponse) txsubmit.Receipt {
	receipt := txsubmit.Receipt{
		TxHash:          r.TransactionHash,
		Status:          txsubmit.ReceiptStatus(r.Status.Uint64()),
		BlockHash:       r.BlockHash,
		BlockNumber:     r.BlockNumber.Uint64(),
		From:            r.From,
		To:              r.To,
		ContractAddress: r.ContractAddress,
		GasUsed:         r.GasUsed.Uint64(),
	}

	if !r.EffectiveGasPrice.IsEmpty() {
		receipt.EffectiveGasPrice = r.EffectiveGasPrice.Big()
	}

	if tx != nil {
		receipt.Value = tx.Value.Big()
		receipt.Data = tx.Input
	}

	return receipt
}
