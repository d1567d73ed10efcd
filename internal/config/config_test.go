package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"job_url": "https://example.com/posting",
		"user_id": "7f9c24e8-3b3a-4a9f-9c2d-111111111111",
		"verbose": true,
		"listen_addr": ":8080"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/posting", cfg.JobURL)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestValidate_JobAndJobURLMutuallyExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com"}
	require.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.json")}
	require.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigOK(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com/posting"}
	defaults := Config{
		JobURL:      "https://default.example.com",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/agent",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win; empty fields fill from defaults.
	assert.Equal(t, "https://example.com/posting", merged.JobURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/agent", merged.DatabaseURL)
}
