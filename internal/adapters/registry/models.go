// Package registry holds the process-wide read-only lookup tables: model
// capabilities, built-in system prompts, and task bundles. Everything is
// built once at startup and injected; nothing loads lazily.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	modelsPathKey  = "models.path"
	configDirName  = ".argo-agent"
	modelsFileName = "models.toml"
)

// builtinModels mirrors the gateway's published model table.
var builtinModels = map[string]domain.ModelConfig{
	"gpt35":        {Name: "gpt35", MaxTokens: 4096, SupportsStandardParams: true},
	"gpt35large":   {Name: "gpt35large", MaxTokens: 16384, SupportsStandardParams: true},
	"gpt4":         {Name: "gpt4", MaxTokens: 8192, SupportsStandardParams: true},
	"gpt4large":    {Name: "gpt4large", MaxTokens: 32768, SupportsStandardParams: true},
	"gpt4turbo":    {Name: "gpt4turbo", MaxTokens: 4096, SupportsStandardParams: true},
	"gpt4o":        {Name: "gpt4o", MaxTokens: 16384, SupportsStandardParams: true},
	"gpt4olatest":  {Name: "gpt4olatest", MaxTokens: 16384, SupportsStandardParams: true},
	"gpto1preview": {Name: "gpto1preview", MaxTokens: 16384, SupportsStandardParams: false},
	"gpto1mini":    {Name: "gpto1mini", MaxTokens: 65536, SupportsStandardParams: false},
	"gpto3mini":    {Name: "gpto3mini", MaxTokens: 100000, SupportsStandardParams: false},
	"gpto1":        {Name: "gpto1", MaxTokens: 200000, SupportsStandardParams: false},
}

type modelsFile struct {
	Models map[string]struct {
		MaxTokens              int  `toml:"max_tokens"`
		SupportsStandardParams bool `toml:"supports_standard_params"`
	} `toml:"models"`
}

// Models is the read-only model capability table.
type Models struct {
	configs map[string]domain.ModelConfig
}

var _ ports.ModelRegistry = (*Models)(nil)

// NewModels builds the table from the builtin set, merged with an optional
// TOML override file whose location comes from the supplied viper config
// (key models.path, default ~/.argo-agent/models.toml). A missing file is
// fine; a malformed one is an error.
func NewModels(cfg *viper.Viper) (*Models, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(modelsPathKey, filepath.Join(homeDir, configDirName, modelsFileName))

	configs := make(map[string]domain.ModelConfig, len(builtinModels))
	for name, config := range builtinModels {
		configs[name] = config
	}

	path := cfg.GetString(modelsPathKey)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read models file: %w", err)
		}
		return &Models{configs: configs}, nil
	}

	var file modelsFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse models file %s: %w", path, err)
	}
	for name, override := range file.Models {
		configs[name] = domain.ModelConfig{
			Name:                   name,
			MaxTokens:              override.MaxTokens,
			SupportsStandardParams: override.SupportsStandardParams,
		}
	}

	return &Models{configs: configs}, nil
}

// NewModelsFromConfigs builds a table directly from explicit configs; used by
// tests to inject a registry instead of touching the filesystem.
func NewModelsFromConfigs(configs ...domain.ModelConfig) *Models {
	table := make(map[string]domain.ModelConfig, len(configs))
	for _, config := range configs {
		table[config.Name] = config
	}
	return &Models{configs: table}
}

func (m *Models) Lookup(name string) (domain.ModelConfig, error) {
	config, ok := m.configs[name]
	if !ok {
		return domain.ModelConfig{}, domain.ErrModelNotFound
	}
	return config, nil
}

// List returns every model sorted by name.
func (m *Models) List() []domain.ModelConfig {
	configs := make([]domain.ModelConfig, 0, len(m.configs))
	for _, config := range m.configs {
		configs = append(configs, config)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })
	return configs
}
