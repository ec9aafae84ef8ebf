// Package config loads the optional per-project rsscripter.yaml, which
// supplies connection and generation defaults the command line can override.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	AppName  string `yaml:"application_name,omitempty"`
}

type GenerationConfig struct {
	OutputDir string `yaml:"output_dir"`
	MaxRows   int64  `yaml:"max_rows"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Generation GenerationConfig `yaml:"generation"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "rsscripter.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
