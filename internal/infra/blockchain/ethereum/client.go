// Package ethereum implements the txsubmit.Network interface, and the chain
// lookups needed by a local signer, for Ethereum-compatible nodes using a
// JSON-RPC client.
package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txsend/internal/txsubmit"
)

// client implements the txsubmit.Network interface for Ethereum-based networks.
// It communicates with an Ethereum node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
}

// Ensure client implements the txsubmit.Network interface at compile time.
var _ txsubmit.Network = (*client)(nil)

// NewClient creates a new Ethereum client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// call fetches method and decodes its result into out. It reports whether the
// node returned a non-null result.
func (c *client) call(ctx context.Context, out any, method string, params ...any) (bool, error) {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return false, err
	}

	if len(data) == 0 || string(data) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding %s result: %w", method, err)
	}

	return true, nil
}
