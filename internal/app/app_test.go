package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"threshold-cli/internal/orchestrator"
	"threshold-cli/pkg/models"
)

func TestRun_HardCodedValue(t *testing.T) {
	var stdout, stderr bytes.Buffer

	request := models.NewCheckRequest()
	request.ConfigPath = filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, Run(request, &stdout, &stderr))
	assert.Equal(t, "Result = 84\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_WithoutHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "")

	var stdout, stderr bytes.Buffer

	require.NoError(t, Run(models.NewCheckRequest(), &stdout, &stderr))
	assert.Equal(t, "Result = 84\n", stdout.String())
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer

	request := models.NewCheckRequest()
	request.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	request.LogLevel = "debug"

	require.NoError(t, Run(request, &stdout, &stderr))
	assert.Equal(t, "Result = 84\n", stdout.String())
	assert.Contains(t, stderr.String(), "transform applied")
}

func TestRun_StrictPolicyFromConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`overflow_policy = "error"`), 0644))

	var stdout, stderr bytes.Buffer
	request := &models.CheckRequest{Value: 2147483600, ConfigPath: configPath}

	err := Run(request, &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, orchestrator.ErrOverflow)
	assert.Empty(t, stdout.String())
	// The returned error is the only report at the default level
	assert.Empty(t, stderr.String())
}

func TestRun_InvalidConfiguration(t *testing.T) {
	request := models.NewCheckRequest()
	request.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	request.OverflowPolicy = "saturate"

	var stdout bytes.Buffer
	err := Run(request, &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, orchestrator.ErrConfigurationInvalid)
	assert.Empty(t, stdout.String())
}
