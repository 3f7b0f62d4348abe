package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the wikidex tool.
type Config struct {
	Dump   DumpConfig   `yaml:"dump"`
	Paths  PathsConfig  `yaml:"paths"`
	Index  IndexConfig  `yaml:"index"`
	Search SearchConfig `yaml:"search"`
}

// DumpConfig holds dump download configuration.
type DumpConfig struct {
	URL string `yaml:"url"`
}

// PathsConfig holds the directory layout. The defaults mirror the
// layout the pipeline has always used; callers needing different
// locations override them here.
type PathsConfig struct {
	Dump         string `yaml:"dump"`
	Articles     string `yaml:"articles"`
	TitleIndex   string `yaml:"title_index"`
	ContentIndex string `yaml:"content_index"`
	Catalog      string `yaml:"catalog"`
}

// IndexConfig holds index build configuration.
type IndexConfig struct {
	Workers   int `yaml:"workers"`
	BatchSize int `yaml:"batch_size"`
}

// SearchConfig holds query configuration.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dump: DumpConfig{
			URL: "https://dumps.wikimedia.org/enwiki/latest/enwiki-latest-pages-articles-multistream.xml.bz2",
		},
		Paths: PathsConfig{
			Dump:         "wiki_raw/enwiki-latest-pages-articles-multistream.xml",
			Articles:     "wiki/articles",
			TitleIndex:   "wiki_title_index",
			ContentIndex: "wiki_index",
			Catalog:      "wiki/catalog.db",
		},
		Index: IndexConfig{
			Workers:   runtime.NumCPU(),
			BatchSize: 1000,
		},
		Search: SearchConfig{
			TopK: 5,
		},
	}
}

// Load loads configuration from a YAML file, overlaying defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for wikidex.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "wikidex.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
