//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRealManager_LoadConfig(t *testing.T) {
	manager := NewManager()

	path := writeConfigFile(t, `jira:
  url: jira.example.com
  username: bot@example.com
  api_token: secret-token
  project_key: PROJ
  epic_type_id: "10000"
  story_type_id: "10001"
`)

	config, err := manager.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jira.example.com", config.Jira.URL)
	assert.Equal(t, "bot@example.com", config.Jira.Username)
	assert.Equal(t, "secret-token", config.Jira.APIToken)
	assert.Equal(t, "PROJ", config.Jira.ProjectKey)
	assert.Equal(t, "10000", config.Jira.EpicTypeID)
	assert.Equal(t, "10001", config.Jira.StoryTypeID)
}

func TestRealManager_LoadConfig_NotFound(t *testing.T) {
	manager := NewManager()

	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_LoadConfig_InvalidYAML(t *testing.T) {
	manager := NewManager()

	path := writeConfigFile(t, "jira: [unclosed")

	_, err := manager.LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_LoadConfig_MissingKeys(t *testing.T) {
	manager := NewManager()

	path := writeConfigFile(t, `jira:
  url: jira.example.com
`)

	_, err := manager.LoadConfig(path)
	require.ErrorIs(t, err, ErrMissingRequiredKeys)

	// Every missing key must appear in the single aggregated error.
	assert.Contains(t, err.Error(), "jira.username")
	assert.Contains(t, err.Error(), "jira.api_token")
	assert.Contains(t, err.Error(), "jira.project_key")
	assert.Contains(t, err.Error(), "jira.epic_type_id")
	assert.Contains(t, err.Error(), "jira.story_type_id")
	assert.NotContains(t, err.Error(), "jira.url")
}

func TestRealManager_LoadConfigForMetadata(t *testing.T) {
	manager := NewManager()

	// No project_key, no type ids: still valid for a metadata dump.
	path := writeConfigFile(t, `jira:
  url: jira.example.com
  username: bot@example.com
  api_token: secret-token
`)

	config, err := manager.LoadConfigForMetadata(path)
	require.NoError(t, err)
	assert.Empty(t, config.Jira.ProjectKey)
}

func TestRealManager_LoadConfigForMetadata_MissingConnectionKeys(t *testing.T) {
	manager := NewManager()

	path := writeConfigFile(t, `jira:
  project_key: PROJ
`)

	_, err := manager.LoadConfigForMetadata(path)
	require.ErrorIs(t, err, ErrMissingRequiredKeys)
	assert.Contains(t, err.Error(), "jira.url")
	assert.NotContains(t, err.Error(), "jira.project_key")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Jira: JiraConfig{
					URL:         "jira.example.com",
					Username:    "bot@example.com",
					APIToken:    "secret-token",
					ProjectKey:  "PROJ",
					EpicTypeID:  "10000",
					StoryTypeID: "10001",
				},
			},
			wantErr: false,
		},
		{
			name:    "empty config",
			config:  &Config{},
			wantErr: true,
		},
		{
			name: "missing single key",
			config: &Config{
				Jira: JiraConfig{
					URL:        "jira.example.com",
					Username:   "bot@example.com",
					APIToken:   "secret-token",
					ProjectKey: "PROJ",
					EpicTypeID: "10000",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingRequiredKeys)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
