package cli

import (
	"context"

	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v3"
)

// parseHash decodes a 0x-prefixed 32-byte transaction hash.
func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, &txsubmit.ValidationError{Field: "hash", Reason: "not 0x-prefixed hex", Err: err}
	}

	if len(b) != common.HashLength {
		return common.Hash{}, &txsubmit.ValidationError{Field: "hash", Reason: "must be 32 bytes"}
	}

	return common.BytesToHash(b), nil
}

// waitCommand returns a CLI command that waits for the receipt of a broadcast transaction.
//
// Usage example:
//
//	txsend wait --hash 0x88df... --timeout 5m
func waitCommand(svc txsubmit.Service, opts Options) *cli.Command {
	return &cli.Command{
		Name:        "wait",
		Description: "Poll the network until the transaction is included, dropped, or the timeout expires.",
		Usage:       "Waits for a transaction receipt. Must provide the transaction hash.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash (0x-prefixed, 32 bytes)",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Maximum time to wait for the receipt",
				Value: opts.ConfirmTimeout,
			},
			&cli.DurationFlag{
				Name:  "poll-interval",
				Usage: "Time between receipt lookups",
				Value: opts.PollInterval,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			hash, err := parseHash(c.String("hash"))
			if err != nil {
				return err
			}

			receipt, err := svc.AwaitConfirmation(ctx, hash, c.Duration("timeout"), c.Duration("poll-interval"))
			if err != nil {
				return err
			}

			printReceipt(output(c), receipt, opts.ExplorerURL)
			return nil
		},
	}
}

// resubmitCommand returns a CLI command that rebroadcasts an already signed
// transaction, as printed by the send command.
//
// Usage example:
//
//	txsend resubmit --raw 0x02f8...
func resubmitCommand(svc txsubmit.Service, opts Options) *cli.Command {
	return &cli.Command{
		Name:        "resubmit",
		Description: "Rebroadcast a signed transaction. The nonce is unchanged, so it can never be included twice.",
		Usage:       "Rebroadcasts a signed transaction. Must provide its raw encoding.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "raw",
				Usage:    "Signed transaction encoding (0x-prefixed hex)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			raw, err := hexutil.Decode(c.String("raw"))
			if err != nil {
				return &txsubmit.ValidationError{Field: "raw", Reason: "not 0x-prefixed hex", Err: err}
			}

			hash, err := svc.Resubmit(ctx, txsubmit.SignedTransaction{
				Raw:  raw,
				Hash: crypto.Keccak256Hash(raw),
			})
			if err != nil {
				return err
			}

			printHash(output(c), hash, opts.ExplorerURL)
			return nil
		},
	}
}
