package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Adravilag/sagebox-lab/internal/env"
	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/tidwall/sjson"
)

// LoadReader config via io.Reader.
func LoadReader(fd io.Reader) (*Config, error) {
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return &config, err
}

// Load reads the global config from the library directory and merges the
// project-local sagebox-lab.json and .sagebox-lab.json on top of it.
func Load(workingDir string, e env.Env) (*Config, error) {
	if e == nil {
		e = env.New()
	}
	libraryDir := LibraryDir(e)
	configPaths := []string{
		filepath.Join(libraryDir, configFileName),
		filepath.Join(workingDir, fmt.Sprintf("%s.json", appName)),
		filepath.Join(workingDir, fmt.Sprintf(".%s.json", appName)),
	}
	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from paths %v: %w", configPaths, err)
	}
	cfg.libraryDir = libraryDir
	cfg.workingDir = workingDir
	cfg.env = e
	return cfg, nil
}

// SetOutputPath persists outputPath into the global config file, keeping any
// other keys it holds. For the rest of the process it also takes precedence
// over WORKSPACE_PATH.
func (c *Config) SetOutputPath(outputPath string) error {
	if err := c.setConfigField("outputPath", outputPath); err != nil {
		return err
	}
	c.OutputPath = outputPath
	c.outputOverride = outputPath
	return nil
}

func (c *Config) setConfigField(key string, value any) error {
	configPath := c.ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		data = []byte("{}")
	}
	if !json.Valid(data) {
		slog.Warn("Replacing unreadable config file", "path", configPath)
		data = []byte("{}")
	}

	newValue, err := sjson.SetBytesOptions(data, key, value, &sjson.Options{Optimistic: true})
	if err != nil {
		return fmt.Errorf("failed to set config field %s: %w", key, err)
	}
	if err := fsext.WriteFile(configPath, newValue); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var configs []io.Reader

	for _, path := range configPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		if !json.Valid(data) {
			slog.Warn("Ignoring invalid config file", "path", path)
			continue
		}
		configs = append(configs, bytesReader(data))
	}

	return loadFromReaders(configs)
}

func loadFromReaders(readers []io.Reader) (*Config, error) {
	if len(readers) == 0 {
		return &Config{}, nil
	}

	merged, err := Merge(readers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge configuration readers: %w", err)
	}

	return LoadReader(merged)
}
