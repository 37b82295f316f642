// Package config provides configuration management functionality for the Jira importer.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// Config represents the application configuration.
type Config struct {
	Jira JiraConfig `yaml:"jira"`
}

// JiraConfig holds the tracker connection and project settings.
type JiraConfig struct {
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	APIToken    string `yaml:"api_token"`
	ProjectKey  string `yaml:"project_key"`
	EpicTypeID  string `yaml:"epic_type_id"`
	StoryTypeID string `yaml:"story_type_id"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads and validates the configuration for an import run.
	LoadConfig(configPath string) (*Config, error)
	// LoadConfigForMetadata loads the configuration for a metadata dump,
	// requiring only the keys needed to reach the tracker.
	LoadConfigForMetadata(configPath string) (*Config, error)
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	config, err := c.load(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfigForMetadata loads configuration from the specified file path,
// validating only the connection keys.
func (c *realManager) LoadConfigForMetadata(configPath string) (*Config, error) {
	config, err := c.load(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.ValidateForMetadata(); err != nil {
		return nil, err
	}

	return config, nil
}

// load reads and parses the configuration file.
func (c *realManager) load(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return &config, nil
}

// Validate checks that every required jira key is present, reporting all
// missing keys in a single error.
func (c *Config) Validate() error {
	return c.validateKeys([]requiredKey{
		{"jira.url", c.Jira.URL},
		{"jira.username", c.Jira.Username},
		{"jira.api_token", c.Jira.APIToken},
		{"jira.project_key", c.Jira.ProjectKey},
		{"jira.epic_type_id", c.Jira.EpicTypeID},
		{"jira.story_type_id", c.Jira.StoryTypeID},
	})
}

// ValidateForMetadata checks only the keys needed to reach the tracker.
// jira.project_key may be absent: the metadata report then stops after the
// project list.
func (c *Config) ValidateForMetadata() error {
	return c.validateKeys([]requiredKey{
		{"jira.url", c.Jira.URL},
		{"jira.username", c.Jira.Username},
		{"jira.api_token", c.Jira.APIToken},
	})
}

type requiredKey struct {
	name  string
	value string
}

// validateKeys collects every missing key so the operator gets the full
// diagnostic in one pass instead of one failure per run.
func (c *Config) validateKeys(keys []requiredKey) error {
	var missing []string
	for _, key := range keys {
		if key.value == "" {
			missing = append(missing, key.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredKeys, strings.Join(missing, ", "))
	}

	return nil
}
