package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/txsend/internal/pkg/types"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// quantity fetches a method whose result is a single hex quantity.
func (c *client) quantity(ctx context.Context, method string, params ...any) (types.Hex, error) {
	var v types.Hex
	found, err := c.call(ctx, &v, method, params...)
	if err != nil {
		return "", err
	}

	if !found {
		return "", fmt.Errorf("%s returned no result", method)
	}

	return v, nil
}

// BlockNumber returns the number of the most recent block.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.quantity(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	return n.Uint64(), nil
}

// ChainID returns the EIP-155 chain id of the network.
func (c *client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.quantity(ctx, "eth_chainId")
	if err != nil {
		return nil, err
	}

	return id.Big(), nil
}

// PendingNonce returns the next nonce for account, counting transactions
// still in the pending pool.
func (c *client) PendingNonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.quantity(ctx, "eth_getTransactionCount", account, "pending")
	if err != nil {
		return 0, err
	}

	return nonce.Uint64(), nil
}

// SuggestGasPrice returns the node's legacy gas price suggestion.
func (c *client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.quantity(ctx, "eth_gasPrice")
	if err != nil {
		return nil, err
	}

	return price.Big(), nil
}

// SuggestGasTipCap returns the node's priority fee suggestion.
func (c *client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	tip, err := c.quantity(ctx, "eth_maxPriorityFeePerGas")
	if err != nil {
		return nil, err
	}

	return tip.Big(), nil
}

// BaseFee returns the base fee of the latest block, or nil when the network
// does not price gas with a base fee.
func (c *client) BaseFee(ctx context.Context) (*big.Int, error) {
	var header BlockHeaderResponse
	found, err := c.call(ctx, &header, "eth_getBlockByNumber", "latest", false)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("eth_getBlockByNumber returned no latest block")
	}

	if header.BaseFeePerGas.IsEmpty() {
		return nil, nil
	}

	return header.BaseFeePerGas.Big(), nil
}

// EstimateGas returns the gas needed to execute msg against the pending state.
func (c *client) EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error) {
	args := callArgs{
		From: msg.From,
		To:   msg.To,
		Data: msg.Data,
	}

	if msg.Gas > 0 {
		args.Gas = types.HexFromUint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		args.GasPrice = types.HexFromBig(msg.GasPrice)
	}
	if msg.GasFeeCap != nil {
		args.MaxFeePerGas = types.HexFromBig(msg.GasFeeCap)
	}
	if msg.GasTipCap != nil {
		args.MaxPriorityFeePerGas = types.HexFromBig(msg.GasTipCap)
	}
	if msg.Value != nil {
		args.Value = types.HexFromBig(msg.Value)
	}

	gas, err := c.quantity(ctx, "eth_estimateGas", args)
	if err != nil {
		return 0, err
	}

	return gas.Uint64(), nil
}
