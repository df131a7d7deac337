package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the metadata service and CLI.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Google   GoogleConfig   `yaml:"google"`
	Records  RecordsConfig  `yaml:"records"`
	Keywords KeywordsConfig `yaml:"keywords"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address string  `yaml:"address"`
	Rate    float64 `yaml:"rate"`  // keyword requests/second (0 disables throttling)
	Burst   int     `yaml:"burst"`
}

type GoogleConfig struct {
	Credentials     string `yaml:"credentials"`
	Tokens          string `yaml:"tokens"`
	Spreadsheet     string `yaml:"spreadsheet"`      // spreadsheet URL
	SpreadsheetName string `yaml:"spreadsheet-name"` // used if there is no URL
	Range           string `yaml:"range"`
	Folder          string `yaml:"folder"`           // Drive folder ID for record files
}

type RecordsConfig struct {
	Dir string `yaml:"dir"`
}

type KeywordsConfig struct {
	Max       int      `yaml:"max"`
	StopWords []string `yaml:"stopwords"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
}

// Environment variables that override the configuration file.
const (
	ENV_ADDRESS          = "METADATA_ADDRESS"
	ENV_CREDENTIALS      = "METADATA_CREDENTIALS"
	ENV_SPREADSHEET      = "METADATA_SPREADSHEET"
	ENV_SPREADSHEET_NAME = "METADATA_SPREADSHEET_NAME"
	ENV_RANGE            = "METADATA_RANGE"
	ENV_FOLDER           = "METADATA_FOLDER"
	ENV_RECORDS          = "METADATA_RECORDS"
	ENV_MAX_KEYWORDS     = "METADATA_MAX_KEYWORDS"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address: "127.0.0.1:8080",
			Rate:    5,
			Burst:   10,
		},
		Google: GoogleConfig{
			Credentials:     "credentials.json",
			SpreadsheetName: "Planilla_formulario_metadatos",
			Range:           "Sheet1!A1:P",
		},
		Records: RecordsConfig{
			Dir: "Archivos_TXT",
		},
		Keywords: KeywordsConfig{
			Max: 10,
		},
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load loads the configuration from a YAML file, returning the defaults if the file does not
// exist. Values from the environment (including a .env file in the working directory, if
// present) take precedence over the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		} else if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("Invalid configuration file %v (%w)", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("Error loading .env file (%w)", err)
	}

	if err := cfg.overlay(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (cfg *Config) overlay(lookup func(string) (string, bool)) error {
	env := func(key string, v *string) {
		if s, ok := lookup(key); ok && strings.TrimSpace(s) != "" {
			*v = strings.TrimSpace(s)
		}
	}

	env(ENV_ADDRESS, &cfg.HTTP.Address)
	env(ENV_CREDENTIALS, &cfg.Google.Credentials)
	env(ENV_SPREADSHEET, &cfg.Google.Spreadsheet)
	env(ENV_SPREADSHEET_NAME, &cfg.Google.SpreadsheetName)
	env(ENV_RANGE, &cfg.Google.Range)
	env(ENV_FOLDER, &cfg.Google.Folder)
	env(ENV_RECORDS, &cfg.Records.Dir)

	if s, ok := lookup(ENV_MAX_KEYWORDS); ok && strings.TrimSpace(s) != "" {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("Invalid %v (%w)", ENV_MAX_KEYWORDS, err)
		} else {
			cfg.Keywords.Max = v
		}
	}

	return nil
}

// Validate checks for configuration values that would prevent the service from starting.
func (cfg *Config) Validate() error {
	if cfg.Keywords.Max <= 0 {
		return fmt.Errorf("Invalid keywords.max (%v) - must be a positive integer", cfg.Keywords.Max)
	}

	if cfg.HTTP.Rate < 0 {
		return fmt.Errorf("Invalid http.rate (%v)", cfg.HTTP.Rate)
	}

	if cfg.HTTP.Rate > 0 && cfg.HTTP.Burst < 1 {
		return fmt.Errorf("Invalid http.burst (%v) - must be at least 1", cfg.HTTP.Burst)
	}

	return nil
}
