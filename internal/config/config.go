package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

const (
	// EnvConfigPath overrides the location of the config file.
	EnvConfigPath = "VRF_EVENTS_CONFIG"

	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

var SupportedOutputs = []string{OutputText, OutputJSON, OutputYAML, OutputTable}

// Define custom types for context keys to avoid collisions
type contextKey string

var ConfigKey contextKey = "config"

type Config struct {
	// ProgramId limits log parsing to data records of this program.
	ProgramId string              `yaml:"programId,omitempty"`
	Output    string              `yaml:"output,omitempty"`
	Encoding  programLog.Encoding `yaml:"encoding,omitempty"`
	Verbose   bool                `yaml:"verbose,omitempty"`
}

func (c *Config) Validate() error {
	var allErrors field.ErrorList
	if c.ProgramId != "" {
		if _, err := events.PubkeyFromBase58(c.ProgramId); err != nil {
			allErrors = append(allErrors, field.Invalid(field.NewPath("programId"), c.ProgramId, err.Error()))
		}
	}
	if !slices.Contains(SupportedOutputs, c.Output) {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("output"), c.Output, SupportedOutputs))
	}
	if !slices.Contains(programLog.SupportedEncodings, c.Encoding) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("encoding"), c.Encoding, "unsupported encoding"))
	}
	return allErrors.ToAggregate()
}

func DefaultConfig() *Config {
	return &Config{
		Output:   OutputText,
		Encoding: programLog.Encoding_Base64,
	}
}

// NewConfigFromYamlBytes parses a config, filling unset values with defaults.
func NewConfigFromYamlBytes(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal Config from YAML")
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.Encoding == "" {
		c.Encoding = programLog.Encoding_Base64
	}
	return c, nil
}

// ReadConfig parses the config file without validating it, returning
// defaults when it does not exist.
func ReadConfig() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return NewConfigFromYamlBytes(data)
}

// LoadConfig reads and validates the config file.
func LoadConfig() (*Config, error) {
	c, err := ReadConfig()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config '%s'", GetConfigPath())
	}
	return c, nil
}

func SaveConfig(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	configPath := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func GetConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vrf-events")
}

func GetConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// ToMap converts the Config to a map for display purposes
func (c *Config) ToMap() map[string]interface{} {
	result := map[string]interface{}{
		"output":   c.Output,
		"encoding": string(c.Encoding),
		"verbose":  c.Verbose,
	}
	if c.ProgramId != "" {
		result["program-id"] = c.ProgramId
	}
	return result
}
