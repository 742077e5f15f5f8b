package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI2HU/sitekit/internal/config"
)

// runCLI executes the root command with a fixed environment and returns its output
func runCLI(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()

	colorEnabled = false
	cfgFile = ""
	lookupEnv = config.MapLookup(env)
	logOutput = &bytes.Buffer{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Database.URI = filepath.Join(dir, "sitekit.db")
	cfg.Server.AppURL = "http://example.com"
	cfg.Log.Level = "error"

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.Save(path))
	return path
}

func TestURLCommand(t *testing.T) {
	path := writeConfig(t)

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "no FORCE_HTTPS", env: map[string]string{}, want: "http://example.com/home"},
		{name: "FORCE_HTTPS=true", env: map[string]string{"FORCE_HTTPS": "true"}, want: "https://example.com/home"},
		{name: "FORCE_HTTPS=false", env: map[string]string{"FORCE_HTTPS": "false"}, want: "http://example.com/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.env, "", "--config", path, "url", "/home")
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestSettingsCommand(t *testing.T) {
	path := writeConfig(t)

	out, err := runCLI(t, map[string]string{"FORCE_HTTPS": "1"}, "", "--config", path, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Pagination theme: bootstrap-4")
	assert.Contains(t, out, "Forced URL scheme: https")

	out, err = runCLI(t, map[string]string{}, "", "--config", path, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Forced URL scheme: (inferred from request)")
}

func TestConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t)

	out, err := runCLI(t, map[string]string{"SITEKIT_CONFIG_PATH": path}, "", "url", "posts")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/posts", strings.TrimSpace(out))
}

func TestSeedAndMigrateCommands(t *testing.T) {
	path := writeConfig(t)

	out, err := runCLI(t, nil, "", "--config", path, "seed", "--count", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 12 posts (12 total)")

	out, err = runCLI(t, nil, "", "--config", path, "seed", "--count", "3", "--reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 12 posts")
	assert.Contains(t, out, "(3 total)")

	out, err = runCLI(t, nil, "", "--config", path, "migrate", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Current migration version: 1 (clean)")
}

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitekit", "config.yaml")

	_, err := runCLI(t, nil, "9090\nhttps://example.com/\ny\n\n25\n", "--config", path, "init")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://example.com", cfg.Server.AppURL)
	assert.True(t, cfg.Server.TrustProxies)
	assert.Equal(t, "sitekit.db", cfg.Database.URI)
	assert.Equal(t, 25, cfg.Pagination.PerPage)
}

func TestValidators(t *testing.T) {
	_, err := validatePort("70000")
	assert.Error(t, err)
	port, err := validatePort(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, "8080", port)

	_, err = validateAppURL("example.com")
	assert.Error(t, err)

	_, err = validatePerPage("0")
	assert.Error(t, err)
	n, err := validatePerPage("30")
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}
