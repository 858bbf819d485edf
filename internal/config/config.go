package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		// URL is the Postgres connection string. Empty means demo mode:
		// submissions are kept in an in-memory store for the session.
		URL string `yaml:"url"`
	} `yaml:"database"`
	Classifier struct {
		SimilarityThreshold float64 `yaml:"similarity_threshold"`
		SimilarityLimit     int     `yaml:"similarity_limit"`
		CorpusLimit         int     `yaml:"corpus_limit"`
		CorpusReadTimeout   int64   `yaml:"corpus_read_timeout_seconds"`
	} `yaml:"classifier"`
	API struct {
		SubmissionsPageSize int `yaml:"submissions_page_size"`
	} `yaml:"api"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":5000"
	}
	if c.Classifier.SimilarityThreshold == 0 {
		c.Classifier.SimilarityThreshold = 0.3
	}
	if c.Classifier.SimilarityLimit == 0 {
		c.Classifier.SimilarityLimit = 10
	}
	if c.Classifier.CorpusLimit == 0 {
		c.Classifier.CorpusLimit = 500
	}
	if c.Classifier.CorpusReadTimeout == 0 {
		c.Classifier.CorpusReadTimeout = 5
	}
	if c.API.SubmissionsPageSize == 0 {
		c.API.SubmissionsPageSize = 50
	}
}
