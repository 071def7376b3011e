package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/txsend/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every configuration variable, e.g. TXSEND_RPC_URL.
const envPrefix = "txsend"

// config holds the process configuration, read from the environment.
type config struct {
	RPCURL      string        `envconfig:"RPC_URL" required:"true" validate:"url"`
	RPCTimeout  time.Duration `envconfig:"RPC_TIMEOUT" default:"10s"`
	RPCRetryMax int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`

	PrivateKey  string `envconfig:"PRIVATE_KEY"`
	ExplorerURL string `envconfig:"EXPLORER_URL" validate:"omitempty,url"`

	ConfirmTimeout time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"2m"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"4s"`
	Confirmations  uint64        `envconfig:"CONFIRMATIONS" default:"1" validate:"gte=1"`
	DropTolerance  int           `envconfig:"DROP_TOLERANCE" default:"3" validate:"gte=1"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	ReceiptTTL    time.Duration `envconfig:"RECEIPT_TTL" default:"24h"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OTelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"txsend"`
}

var errNonPositiveDuration = errors.New("must be a positive duration")

// loadConfig reads the configuration from the environment. Variables found in
// the optional env files are added first, without overriding the ones already set.
func loadConfig(envFiles ...string) (config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return config{}, err
	}

	durations := map[string]time.Duration{
		"RPC_TIMEOUT":     cfg.RPCTimeout,
		"CONFIRM_TIMEOUT": cfg.ConfirmTimeout,
		"POLL_INTERVAL":   cfg.PollInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return config{}, fmt.Errorf("TXSEND_%s: %w", name, errNonPositiveDuration)
		}
	}

	return cfg, nil
}
