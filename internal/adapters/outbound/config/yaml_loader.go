package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

const fileName = ".itemsetfix.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .itemsetfix.yaml from
// the champions root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .itemsetfix.yaml from root. Returns DefaultToolConfig if the
// file does not exist.
func (l *YAMLLoader) Load(root string) (domain.ToolConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultToolConfig(), nil
		}
		return domain.ToolConfig{}, err
	}

	var cfg domain.ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
