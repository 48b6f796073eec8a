// Package yaml loads chatdocx configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/chatdocx"
	"github.com/goccy/go-yaml"
)

// MaxInputSize limits configuration input (1MB).
const MaxInputSize = 1 << 20

// Parse decodes data over chatdocx.DefaultConfig. Keys missing from data
// keep their defaults; unknown keys are rejected. Empty data yields the
// defaults.
func Parse(data []byte) (*chatdocx.Config, error) {
	cfg := chatdocx.DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if len(data) > MaxInputSize {
		return nil, chatdocx.Errorf(chatdocx.EINVALID, "config exceeds maximum size: %d bytes (max %d)", len(data), MaxInputSize)
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, chatdocx.Errorf(chatdocx.EINVALID, "invalid config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path. An empty path yields the
// defaults; a path that does not exist is an error.
func Load(path string) (*chatdocx.Config, error) {
	if path == "" {
		return chatdocx.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, chatdocx.Errorf(chatdocx.EINVALID, "config file not found: %s", path)
	} else if err != nil {
		return nil, chatdocx.Errorf(chatdocx.EINVALID, "cannot read config %s: %v", path, err)
	}
	return Parse(data)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *chatdocx.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, chatdocx.Errorf(chatdocx.EINTERNAL, "cannot encode config: %v", err)
	}
	return data, nil
}
