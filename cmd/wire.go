package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/argo-agent-cli/internal/adapters/argo"
	"github.com/bnema/argo-agent-cli/internal/adapters/extract"
	"github.com/bnema/argo-agent-cli/internal/adapters/record"
	"github.com/bnema/argo-agent-cli/internal/adapters/registry"
	"github.com/bnema/argo-agent-cli/internal/adapters/tokenizer"
	"github.com/bnema/argo-agent-cli/internal/application"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

const tokenizerModelHint = "gpt-4"

type app struct {
	models     *registry.Models
	library    *registry.Library
	aggregator *application.Aggregator
	counter    ports.TokenCounter
	recorder   ports.Recorder
	clock      ports.Clock
	logger     *slog.Logger
	logLevel   *slog.LevelVar

	gatewayURL   string
	gatewayUser  string
	newCompleter func(endpoint string, timeout time.Duration) ports.Completer
}

func wireApp() (*app, error) {
	_ = godotenv.Load()

	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg := viper.New()
	cfg.SetEnvPrefix("AA")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	models, err := registry.NewModels(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire model registry: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	library := registry.NewLibrary(filepath.Join(homeDir, ".argo-agent", "tasks"), logger)

	var counter ports.TokenCounter
	if tiktoken, err := tokenizer.New(tokenizerModelHint); err == nil {
		counter = tiktoken
	} else {
		logger.Warn("token counting unavailable", "error", err)
		counter = tokenizer.Unavailable{}
	}

	extractor := extract.NewReader(logger)
	resolver := application.NewResolver(extract.IsSupportedPath, logger)

	return &app{
		models:     models,
		library:    library,
		aggregator: application.NewAggregator(resolver, extractor, counter, logger),
		counter:    counter,
		recorder:   record.NewRecorder(envOrDefault("ARGO_INTERACTIONS_DIR", "interactions")),
		clock:      ports.SystemClock{},
		logger:     logger,
		logLevel:   logLevel,

		gatewayURL:  os.Getenv("ARGO_URL"),
		gatewayUser: os.Getenv("ARGO_USER"),
		newCompleter: func(endpoint string, timeout time.Duration) ports.Completer {
			return argo.NewClient(endpoint, &http.Client{Timeout: timeout}, logger)
		},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
