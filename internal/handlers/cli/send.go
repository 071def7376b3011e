package cli

import (
	"context"
	"math/big"

	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"
)

// parseAmount parses a wei amount in decimal or 0x-prefixed hex. An empty
// string yields nil. Sign checks are left to request validation.
func parseAmount(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}

	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, &txsubmit.ValidationError{Field: field, Reason: "not a decimal or 0x-prefixed integer: " + s}
	}

	return v, nil
}

// parsePayload decodes the --data and --message flags. Only one of them may be set.
func parsePayload(data, message string) ([]byte, error) {
	switch {
	case data != "" && message != "":
		return nil, &txsubmit.ValidationError{Field: "data", Reason: "--data and --message are mutually exclusive"}
	case message != "":
		return []byte(message), nil
	case data == "":
		return nil, nil
	}

	payload, err := hexutil.Decode(data)
	if err != nil {
		return nil, &txsubmit.ValidationError{Field: "data", Reason: "not 0x-prefixed hex", Err: err}
	}

	return payload, nil
}

// requestFromFlags builds the Request described by the send command flags.
func requestFromFlags(c *cli.Command) (txsubmit.Request, error) {
	value, err := parseAmount("value", c.String("value"))
	if err != nil {
		return txsubmit.Request{}, err
	}

	payload, err := parsePayload(c.String("data"), c.String("message"))
	if err != nil {
		return txsubmit.Request{}, err
	}

	var opts []txsubmit.RequestOption

	if limit := c.Uint("gas-limit"); limit > 0 {
		opts = append(opts, txsubmit.WithGasLimit(limit))
	}

	price, err := parseAmount("gas.price", c.String("gas-price"))
	if err != nil {
		return txsubmit.Request{}, err
	}
	if price != nil {
		opts = append(opts, txsubmit.WithGasPrice(price))
	}

	feeCap, err := parseAmount("gas.feeCap", c.String("max-fee"))
	if err != nil {
		return txsubmit.Request{}, err
	}

	tipCap, err := parseAmount("gas.tipCap", c.String("max-priority-fee"))
	if err != nil {
		return txsubmit.Request{}, err
	}

	if feeCap != nil || tipCap != nil {
		opts = append(opts, txsubmit.WithDynamicFee(feeCap, tipCap))
	}

	if c.Bool("create") {
		if c.String("to") != "" {
			return txsubmit.Request{}, &txsubmit.ValidationError{Field: "to", Reason: "--to cannot be combined with --create"}
		}
		return txsubmit.NewContractCreation(payload, value, opts...), nil
	}

	if payload != nil {
		opts = append(opts, txsubmit.WithData(payload))
	}

	return txsubmit.NewRequest(c.String("to"), value, opts...), nil
}

// sendCommand returns a CLI command that signs and broadcasts a transaction,
// printing its hash and explorer link.
//
// Usage example:
//
//	txsend send --to 0xABCD... --value 1000000000000000 --message "Sent" --wait
func sendCommand(svc txsubmit.Service, opts Options) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Sign and broadcast a native transfer, optionally carrying a payload or deploying a contract.",
		Usage:       "Sends a transaction. Gas settings left empty are resolved from the network.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "to",
				Usage:   "Recipient address (0x-prefixed, 20 bytes)",
				Sources: cli.EnvVars("TXSEND_ADDRESS_TO"),
			},
			&cli.BoolFlag{
				Name:  "create",
				Usage: "Deploy a contract using --data as init code instead of sending to --to",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Amount in wei (decimal or 0x-prefixed hex)",
				Value: "0",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Payload as 0x-prefixed hex",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Payload as UTF-8 text",
			},
			&cli.UintFlag{
				Name:  "gas-limit",
				Usage: "Gas limit; estimated when zero",
			},
			&cli.StringFlag{
				Name:  "gas-price",
				Usage: "Legacy gas price in wei",
			},
			&cli.StringFlag{
				Name:  "max-fee",
				Usage: "EIP-1559 max fee per gas in wei",
			},
			&cli.StringFlag{
				Name:  "max-priority-fee",
				Usage: "EIP-1559 max priority fee per gas in wei",
			},
			&cli.BoolFlag{
				Name:  "wait",
				Usage: "Wait for the receipt after broadcasting",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := requestFromFlags(c)
			if err != nil {
				return err
			}

			w := output(c)

			if !c.Bool("wait") {
				tx, err := svc.Submit(ctx, req)
				if err != nil {
					return err
				}

				printTransaction(w, tx, opts.ExplorerURL)
				return nil
			}

			tx, receipt, err := svc.SubmitAndWait(ctx, req)
			if tx.Hash != (common.Hash{}) {
				printTransaction(w, tx, opts.ExplorerURL)
			}
			if err != nil {
				return err
			}

			printReceipt(w, receipt, opts.ExplorerURL)
			return nil
		},
	}
}
