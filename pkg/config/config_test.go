package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevFelipeRT/logmask/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, "[MASKED]", cfg.MaskToken)
	assert.Empty(t, cfg.SensitiveKeys)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOGMASK_SERVICE_NAME", "billing")
	t.Setenv("LOGMASK_LOG_LEVEL", "debug")
	t.Setenv("LOGMASK_SENSITIVE_KEYS", "session_id,device_id")
	t.Setenv("LOGMASK_SENSITIVE_PATTERNS", `ORD-\d{6};INV-\d{4}`)
	t.Setenv("LOGMASK_MAX_DEPTH", "4")
	t.Setenv("LOGMASK_MASK_TOKEN", "[HIDDEN]")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "billing", cfg.ServiceName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"session_id", "device_id"}, cfg.SensitiveKeys)
	assert.Equal(t, []string{`ORD-\d{6}`, `INV-\d{4}`}, cfg.SensitivePatterns)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, "[HIDDEN]", cfg.MaskToken)
}

func TestLoad_YAMLFileOverridesEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logmask.yaml")
	content := `
service_name: payments
sensitive_keys:
  - card_pan
max_depth: 6
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("LOGMASK_CONFIG_FILE", file)
	t.Setenv("LOGMASK_SERVICE_NAME", "from-env")
	t.Setenv("LOGMASK_LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)

	// File values win; fields absent from the file keep env values.
	assert.Equal(t, "payments", cfg.ServiceName)
	assert.Equal(t, []string{"card_pan"}, cfg.SensitiveKeys)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("LOGMASK_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrReadingConfigFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(file, []byte("{:::"), 0o600))
		t.Setenv("LOGMASK_CONFIG_FILE", file)

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidConfigFile)
	})
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("LOGMASK_MAX_DEPTH", "not-a-number")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestSanitizerConfig(t *testing.T) {
	t.Setenv("LOGMASK_SENSITIVE_KEYS", "session_id")
	t.Setenv("LOGMASK_MASK_TOKEN", "[HIDDEN]")

	cfg, err := config.Load()
	require.NoError(t, err)

	sc := cfg.SanitizerConfig()
	assert.Equal(t, []string{"session_id"}, sc.SensitiveKeys)
	assert.Equal(t, "[HIDDEN]", sc.MaskToken)
	assert.Equal(t, 8, sc.MaxDepth)
}

func TestMustLoad(t *testing.T) {
	t.Run("returns config", func(t *testing.T) {
		assert.NotPanics(t, func() {
			cfg := config.MustLoad()
			assert.Equal(t, "json", cfg.LogFormat)
		})
	})

	t.Run("panics on broken environment", func(t *testing.T) {
		t.Setenv("LOGMASK_MAX_DEPTH", "nope")
		assert.Panics(t, func() {
			config.MustLoad()
		})
	})
}
