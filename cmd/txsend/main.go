// Command txsend signs, broadcasts and confirms transactions on an
// Ethereum-compatible network.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txsend/internal/handlers/cli"
	"github.com/gabapcia/txsend/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txsend/internal/infra/signer/local"
	"github.com/gabapcia/txsend/internal/infra/storage/redis"
	"github.com/gabapcia/txsend/internal/pkg/logger"
	"github.com/gabapcia/txsend/internal/pkg/telemetry"
	"github.com/gabapcia/txsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()

	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "txsend: configuration:", err)
		return cli.ExitFailure
	}

	if cfg.OTelEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "txsend: telemetry:", err)
			return cli.ExitFailure
		}
		defer shutdown(context.Background())
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "txsend: logger:", err)
		return cli.ExitFailure
	}
	defer logger.Sync()

	svc, account, closeFn, err := newService(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to initialize", "error", err)
		fmt.Fprintln(os.Stderr, "txsend:", err)
		return cli.ExitFailure
	}
	defer closeFn()

	err = cli.Run(ctx, svc, cli.Options{
		Account:        account,
		ExplorerURL:    cfg.ExplorerURL,
		ConfirmTimeout: cfg.ConfirmTimeout,
		PollInterval:   cfg.PollInterval,
	})
	if err != nil {
		logger.Error(ctx, "command failed", "error", err)
		fmt.Fprintln(os.Stderr, "txsend:", err)
	}

	return cli.ExitCode(err)
}

// newService wires the JSON-RPC transport, the Ethereum client, the local
// signer and the optional Redis receipt store into a txsubmit.Service.
func newService(ctx context.Context, cfg config) (txsubmit.Service, common.Address, func(), error) {
	conn := jsonrpc.NewClient(cfg.RPCURL,
		jsonrpc.WithTimeout(cfg.RPCTimeout),
		jsonrpc.WithRetryMax(cfg.RPCRetryMax),
	)
	network := ethereum.NewClient(conn)

	signer, err := local.NewSigner(cfg.PrivateKey, network)
	if err != nil {
		return nil, common.Address{}, nil, err
	}

	opts := []txsubmit.Option{
		txsubmit.WithConfirmTimeout(cfg.ConfirmTimeout),
		txsubmit.WithPollInterval(cfg.PollInterval),
		txsubmit.WithConfirmations(cfg.Confirmations),
		txsubmit.WithDropTolerance(cfg.DropTolerance),
		txsubmit.WithExplorerURL(cfg.ExplorerURL),
	}

	closeFn := func() {}
	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
			redis.WithReceiptTTL(cfg.ReceiptTTL),
		)
		if err != nil {
			return nil, common.Address{}, nil, fmt.Errorf("connecting to redis: %w", err)
		}

		opts = append(opts, txsubmit.WithReceiptStore(store))
		closeFn = func() { _ = store.Close() }
	}

	return txsubmit.New(signer, network, opts...), signer.Address(), closeFn, nil
}
