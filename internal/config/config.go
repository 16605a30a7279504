package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level collate.yaml configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Mailbox MailboxConfig `yaml:"mailbox"`
	Output  OutputConfig  `yaml:"output"`
}

// SourcesConfig holds the paths of the four export files. An empty path
// means the source is not configured and contributes zero records.
type SourcesConfig struct {
	Amazon string `yaml:"amazon,omitempty"`
	PayPal string `yaml:"paypal,omitempty"`
	Bank   string `yaml:"bank,omitempty"`
	Gmail  string `yaml:"gmail,omitempty"`
}

// MailboxConfig controls the mailbox scan.
type MailboxConfig struct {
	Keywords []string `yaml:"keywords"`
	After    string   `yaml:"after"`  // "YYYY/MM/DD", inclusive
	Before   string   `yaml:"before"` // "YYYY/MM/DD", inclusive
	Output   string   `yaml:"output"` // intermediate CSV path
}

// OutputConfig controls the consolidated ledger artifact.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // "xlsx" or "csv"
}

// Load reads a collate.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			Amazon: "amazon_order_history.csv",
			PayPal: "paypal.csv",
			Bank:   "bank.csv",
			Gmail:  "gmail_transactions.csv",
		},
		Mailbox: MailboxConfig{
			Keywords: []string{"order", "invoice", "receipt"},
			After:    "2023/04/01",
			Before:   "2024/04/10",
			Output:   "gmail_transactions.csv",
		},
		Output: OutputConfig{
			Path:   "consolidated_transactions.xlsx",
			Format: "xlsx",
		},
	}
}
