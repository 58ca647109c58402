// Package config loads the glbridge.yaml run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level glbridge.yaml configuration. Database
// credentials come from the environment, never from the file.
type Config struct {
	Period            string         `yaml:"period"`
	Currency          string         `yaml:"currency"`
	EligibilityCutoff string         `yaml:"eligibility_cutoff"`
	Database          DatabaseConfig `yaml:"database"`
	Mappings          MappingsConfig `yaml:"mappings"`
	Output            OutputConfig   `yaml:"output"`
}

// DatabaseConfig locates the measurement platform database.
type DatabaseConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Name    string `yaml:"name"`
	SSLMode string `yaml:"sslmode,omitempty"`
}

// Environment variables carrying the database credentials.
const (
	EnvDBUser     = "GLBRIDGE_DB_USER"
	EnvDBPassword = "GLBRIDGE_DB_PASSWORD"
)

// DSN assembles the connection string with credentials taken from the
// environment.
func (d DatabaseConfig) DSN() (string, error) {
	user := os.Getenv(EnvDBUser)
	pass := os.Getenv(EnvDBPassword)
	if user == "" || pass == "" {
		return "", fmt.Errorf("database credentials not set: export %s and %s", EnvDBUser, EnvDBPassword)
	}
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", user, pass, d.Host, d.Port, d.Name, sslmode), nil
}

// MappingsConfig locates the segment mapping workbooks.
type MappingsConfig struct {
	Product       string `yaml:"product"`
	OrgCostCenter string `yaml:"org_cost_center"`
	Channel       string `yaml:"channel"`
	Vehicle       string `yaml:"vehicle"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	Workbook string `yaml:"workbook"`
	RunLog   string `yaml:"run_log"`
	FactsDir string `yaml:"facts_dir,omitempty"`
}

// Load reads a glbridge.yaml file from disk and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks the fields every run needs.
func (c *Config) Validate() error {
	if c.Period == "" {
		return fmt.Errorf("config: period is required")
	}
	if c.EligibilityCutoff == "" {
		return fmt.Errorf("config: eligibility_cutoff is required")
	}
	if c.Output.Workbook == "" {
		return fmt.Errorf("config: output.workbook is required")
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(period string) *Config {
	return &Config{
		Period:            period,
		Currency:          "CNY",
		EligibilityCutoff: "",
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			Name:    "measure_platform",
			SSLMode: "disable",
		},
		Mappings: MappingsConfig{
			Product:       "mappings/products.xls",
			OrgCostCenter: "mappings/org_cost_center.xlsx",
			Channel:       "mappings/channels.xls",
			Vehicle:       "mappings/vehicles.xls",
		},
		Output: OutputConfig{
			Workbook: "unexpired_entries.xlsx",
			RunLog:   "logs/run-log.csv",
		},
	}
}
