package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/cmd/irsim/cmd"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	_, err := execute(t, "example", path)
	require.NoError(t, err, "example")
	return path
}

func TestExampleCmd(t *testing.T) {
	out, err := execute(t, "example")
	require.NoError(t, err, "example")
	require.Contains(t, out, "name: half-year short", "example yaml")

	path := writeExample(t)
	bz, err := os.ReadFile(path)
	require.NoError(t, err, "ReadFile")
	require.Equal(t, out, string(bz), "file matches stdout")
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate", writeExample(t))
	require.NoError(t, err, "validate")
	require.Equal(t, "scenario \"half-year short\" is valid: 2 accounts, 5 steps\n", out, "output")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\nstart_time: 0\n"), 0o600), "WriteFile")
	_, err = execute(t, "validate", bad)
	require.ErrorContains(t, err, "start time must be positive", "invalid scenario")

	_, err = execute(t, "validate")
	require.Error(t, err, "missing argument")
}

func TestRunCmd(t *testing.T) {
	path := writeExample(t)

	out, err := execute(t, "run", path, "--log-level", "disabled")
	require.NoError(t, err, "run")
	require.Contains(t, out, "taker settled 38.356576", "text report")

	out, err = execute(t, "run", path, "--log-level", "disabled", "--output", "json")
	require.NoError(t, err, "run json")
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report), "json report")
	require.Equal(t, "0", report["settlement_sum"], "settlement sum")

	_, err = execute(t, "run", path, "--output", "xml")
	require.ErrorContains(t, err, `unknown output format "xml"`, "bad output")

	_, err = execute(t, "run", path, "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level", "bad log level")
}

func TestRunCmdEnvironment(t *testing.T) {
	path := writeExample(t)
	t.Setenv("IRSIM_OUTPUT", "json")
	t.Setenv("IRSIM_LOG_LEVEL", "disabled")

	out, err := execute(t, "run", path)
	require.NoError(t, err, "run")
	require.True(t, json.Valid([]byte(out)), "environment selects json:\n%s", out)

	out, err = execute(t, "run", path, "--output", "text")
	require.NoError(t, err, "run")
	require.False(t, json.Valid([]byte(out)), "flag wins over environment")
}

func TestRunCmdSettingsFile(t *testing.T) {
	path := writeExample(t)
	settings := filepath.Join(t.TempDir(), "irsim.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("output: json\nlog-level: disabled\n"), 0o600), "WriteFile")

	out, err := execute(t, "run", path, "--config", settings)
	require.NoError(t, err, "run")
	require.True(t, json.Valid([]byte(out)), "settings file selects json:\n%s", out)

	_, err = execute(t, "run", path, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read settings", "missing settings file")
}

func TestLoadSettingsDefaults(t *testing.T) {
	v := viper.New()
	v.SetDefault("output", "text")
	v.SetDefault("log-level", "info")

	s, err := cmd.LoadSettings(v)
	require.NoError(t, err, "LoadSettings")
	require.Equal(t, cmd.Settings{LogLevel: "info", Output: "text"}, s, "settings")

	logger, err := cmd.NewLogger(&bytes.Buffer{}, s)
	require.NoError(t, err, "NewLogger")
	require.NotNil(t, logger, "logger")

	s.LogFormat = "xml"
	_, err = cmd.NewLogger(&bytes.Buffer{}, s)
	require.ErrorContains(t, err, `unknown log format "xml"`, "bad log format")
}
