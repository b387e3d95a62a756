package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inboundlab/triage/internal/config"
	"github.com/inboundlab/triage/internal/extract"
	"github.com/inboundlab/triage/internal/llmcall"
	"github.com/inboundlab/triage/internal/providers"
)

// newExtractor builds an extractor from configuration: resolves the provider
// registry, picks the requested (or default) LLM client, and attaches a call
// recorder.
func newExtractor(logger *slog.Logger) (*extract.Extractor, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg := cm.Get()

	registry := providers.NewRegistryFromConfig(cfg.ToProviderRegistryConfig())
	registry.SetLogger(logger)

	// Pick up config edits made while a long extraction is in flight.
	cm.OnChange(func(updated *config.Config) {
		registry.Reload(updated.ToProviderRegistryConfig())
	})
	cm.WatchConfig()

	name := providerName
	if name == "" {
		name = cfg.Defaults.LLMProvider
	}
	client, err := registry.GetLLM(name)
	if err != nil {
		return nil, fmt.Errorf("%w (is its API key set and the provider enabled?)", err)
	}

	recorder := llmcall.NewRecorder(logger)
	return extract.New(client,
		extract.WithRecorder(recorder),
		extract.WithLogger(logger),
	), nil
}

// inputText returns the contents of path when set, otherwise the fallback
// sample embedded in the command.
func inputText(path, sample string) (string, error) {
	if path == "" {
		return sample, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
