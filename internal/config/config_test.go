package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "gemini:\n  api_key: test-key\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.TextModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.ReasoningModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.Gemini.ImageModel)
	assert.Equal(t, int32(32768), cfg.Gemini.ThinkingBudget)
	assert.Equal(t, "disk", cfg.Storage.Type)
	assert.NotEmpty(t, cfg.Firm.OfficeAddress)
	assert.NotEmpty(t, cfg.Firm.Lawyers)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
gemini:
  api_key: test-key
  reasoning_model: gemini-3.0-pro
storage:
  type: memory
firm:
  email: escritorio@exemplo.adv.br
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-3.0-pro", cfg.Gemini.ReasoningModel)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, "escritorio@exemplo.adv.br", cfg.Firm.Email)
}

func TestLoadFallsBackToEnvForAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	path := writeConfig(t, "log:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
