package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

var errNoAccount = errors.New("no signing key configured (set TXSEND_PRIVATE_KEY)")

// addressCommand returns a CLI command that prints the address transactions are sent from.
func addressCommand(opts Options) *cli.Command {
	return &cli.Command{
		Name:        "address",
		Description: "Print the address derived from the configured private key.",
		Usage:       "Prints the sender address.",
		Action: func(_ context.Context, c *cli.Command) error {
			if opts.Account == (common.Address{}) {
				return errNoAccount
			}

			_, err := fmt.Fprintln(output(c), opts.Account.Hex())
			return err
		},
	}
}
