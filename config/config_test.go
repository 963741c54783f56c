package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: pesantren
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: yaml-secret
infaq:
  minimumContribution: 20000
  presets:
    - label: Rp 20.000
      amount: 20000
    - label: Rp 40.000
      amount: 40000
displaySettings:
  fontSize: 30
  showTranslation: false
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfig(t, "pesantren-test", testYAML)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("pesantren-test")
	require.NoError(t, err)

	assert.Equal(t, "pesantren", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Infaq)
	assert.Equal(t, int64(20000), cfg.Infaq.MinimumContribution)
	assert.Equal(t, []PresetConfig{{Label: "Rp 20.000", Amount: 20000}, {Label: "Rp 40.000", Amount: 40000}}, cfg.Infaq.Presets)
	require.NotNil(t, cfg.DisplaySettings)
	assert.Equal(t, 30, cfg.DisplaySettings.FontSize)
	assert.False(t, cfg.DisplaySettings.ShowTranslation)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, "pesantren-test", testYAML)
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("INFAQ_MINIMUMCONTRIBUTION", "5000")

	cfg, err := LoadWithEnv[Config]("pesantren-test")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, int64(5000), cfg.Infaq.MinimumContribution)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "pesantren"

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "pesantren", cfg.Auth.Issuer)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "IDR", cfg.Infaq.Currency)
	assert.Equal(t, int64(defaultMinimumContribution), cfg.Infaq.MinimumContribution)
	assert.NotEmpty(t, cfg.Infaq.Presets)
	assert.True(t, cfg.DisplaySettings.ShowTranslation)
	assert.Equal(t, defaultFontSize, cfg.DisplaySettings.FontSize)
	assert.Equal(t, defaultMinFontSize, cfg.DisplaySettings.MinFontSize)
	assert.Equal(t, defaultMaxFontSize, cfg.DisplaySettings.MaxFontSize)
	assert.True(t, cfg.Breaker.Enabled)
	assert.Equal(t, uint32(defaultBreakerFailures), cfg.Breaker.ConsecutiveFailures)
	assert.Equal(t, defaultReferencePrefix, cfg.Reference.Prefix)
	assert.Equal(t, defaultReferenceLength, cfg.Reference.Length)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Infaq:           &InfaqConfig{Currency: "USD", MinimumContribution: 1},
		DisplaySettings: &DisplayConfig{FontSize: 20, MinFontSize: 12, MaxFontSize: 40},
	}

	applyDefaults(cfg)

	assert.Equal(t, "USD", cfg.Infaq.Currency)
	assert.Equal(t, int64(1), cfg.Infaq.MinimumContribution)
	assert.Equal(t, 20, cfg.DisplaySettings.FontSize)
	assert.Equal(t, 12, cfg.DisplaySettings.MinFontSize)
	assert.False(t, cfg.DisplaySettings.ShowTranslation)
}
