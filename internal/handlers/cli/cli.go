package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

// Options holds the settings the commands need besides the service itself.
type Options struct {
	Account        common.Address // Address transactions are sent from; zero when no key is configured
	ExplorerURL    string         // Block explorer base URL used to print transaction links
	ConfirmTimeout time.Duration  // Default --timeout of the wait command
	PollInterval   time.Duration  // Default --poll-interval of the wait command
}

// Run initializes and executes the txsend CLI application.
//
// It registers all available commands, including:
//
//   - `send`: Signs and broadcasts a transfer, optionally waiting for its receipt.
//   - `wait`: Waits for the receipt of a broadcast transaction.
//   - `resubmit`: Rebroadcasts an already signed transaction.
//   - `address`: Prints the account transactions are sent from.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc txsubmit.Service, opts Options) error {
	return newApp(svc, opts).Run(ctx, os.Args)
}

func newApp(svc txsubmit.Service, opts Options) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txsend",
		Description:           "Command-line interface for signing, broadcasting and confirming transactions.",
		Usage:                 "txsend [command] [flags]",
		Commands: []*cli.Command{
			sendCommand(svc, opts),
			waitCommand(svc, opts),
			resubmitCommand(svc, opts),
			addressCommand(opts),
		},
	}
}

// Process exit codes, one per error kind.
const (
	ExitOK = iota
	ExitFailure
	ExitValidation
	ExitSigning
	ExitNetwork
	ExitTimeout
	ExitDropped
)

// ExitCode maps an error returned by Run to the process exit code of its kind.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, txsubmit.ErrValidation):
		return ExitValidation
	case errors.Is(err, txsubmit.ErrSigning):
		return ExitSigning
	case errors.Is(err, txsubmit.ErrNetwork):
		return ExitNetwork
	case errors.Is(err, txsubmit.ErrTimeout):
		return ExitTimeout
	case errors.Is(err, txsubmit.ErrDropped):
		return ExitDropped
	default:
		return ExitFailure
	}
}

// output returns the writer command results are printed to.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
