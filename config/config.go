package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"soilindex/ml"
)

type Config struct {
	Models ModelsConfig `yaml:"models"`
	Log    LogConfig    `yaml:"log"`
}

type ModelsConfig struct {
	Type      string      `yaml:"type"`
	CCPath    string      `yaml:"cc_path"`
	SIPath    string      `yaml:"si_path"`
	LoadMode  ml.LoadMode `yaml:"load_mode"`
	CacheSize int         `yaml:"cache_size"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Console    bool   `yaml:"console"`
}

// SearchPaths are tried in order when Load is called with an empty path.
var SearchPaths = []string{"config.yaml", "configs/soilindex.yaml"}

func Default() *Config {
	return &Config{
		Models: ModelsConfig{
			Type:      ml.ModelTypeRandomForest,
			CCPath:    "./results/models/Cc_random_forest.json",
			SIPath:    "./results/models/SI_random_forest.json",
			LoadMode:  ml.LoadOnce,
			CacheSize: 4,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "./logs/soilindex.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the YAML file at path over the defaults. With an empty path the
// SearchPaths are tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range SearchPaths {
			data, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", p, err)
			}
			applyDefaults(cfg)
			return cfg, cfg.Validate()
		}
		applyDefaults(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, cfg.Validate()
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Models.Type == "" {
		cfg.Models.Type = def.Models.Type
	}
	if cfg.Models.CCPath == "" {
		cfg.Models.CCPath = def.Models.CCPath
	}
	if cfg.Models.SIPath == "" {
		cfg.Models.SIPath = def.Models.SIPath
	}
	if cfg.Models.LoadMode == "" {
		cfg.Models.LoadMode = def.Models.LoadMode
	}
	if cfg.Models.CacheSize <= 0 {
		cfg.Models.CacheSize = def.Models.CacheSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups < 0 {
		cfg.Log.MaxBackups = 0
	}
	if cfg.Log.MaxAgeDays < 0 {
		cfg.Log.MaxAgeDays = 0
	}
}

func (c *Config) Validate() error {
	switch c.Models.Type {
	case ml.ModelTypeRandomForest, ml.ModelTypeDecisionTree:
	default:
		return fmt.Errorf("models.type: unsupported model type %q", c.Models.Type)
	}
	if !c.Models.LoadMode.Valid() {
		return fmt.Errorf("models.load_mode: unsupported load mode %q", c.Models.LoadMode)
	}
	return nil
}

func (c *Config) Provider() ml.ProviderConfig {
	return ml.ProviderConfig{
		ModelType: c.Models.Type,
		CCPath:    c.Models.CCPath,
		SIPath:    c.Models.SIPath,
		Mode:      c.Models.LoadMode,
		CacheSize: c.Models.CacheSize,
	}
}
