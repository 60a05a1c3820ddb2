package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := run(t, "example", path)
	require.NoError(t, err, out)
	return path
}

func TestExampleAndValidate(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid: 3 scenario(s)")
	assert.Contains(t, out, "Retire 2037 lean (retiring 2037-01-01)")
}

func TestValidateRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personal_details: {}\nscenarios: []\n"), 0o644))
	_, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCalculateConsole(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "calculate", path, "--format", "console-lite", "--today", "2024-01-01")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "DRAWDOWN SCENARIO SUMMARY"), out)
	assert.Contains(t, out, "Retire 2035 with lump sum:")
	assert.Contains(t, out, "Recommended:")
}

func TestCalculateWritesReportFiles(t *testing.T) {
	path := writeExample(t)
	dir := filepath.Join(t.TempDir(), "reports")
	out, err := run(t, "calculate", path, "--format", "json", "--output", dir, "--today", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".json"))
}

func TestCalculateRejectsBadToday(t *testing.T) {
	path := writeExample(t)
	_, err := run(t, "calculate", path, "--today", "01/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestSensitivityCommand(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "sensitivity", path, "--scenario", "Retire 2037 lean", "--param", "cagr",
		"--min", "0", "--max", "0.1", "--steps", "3", "--today", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, `Sensitivity of "Retire 2037 lean" to cagr`)
	assert.Contains(t, out, "Pot at Retirement")
	assert.Contains(t, out, "0.05")

	_, err = run(t, "sensitivity", path, "--param", "salary", "--today", "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sweep parameter")

	_, err = run(t, "sensitivity", path, "--scenario", "nope", "--today", "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario not found")
}

func TestCompareCommand(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "compare", path, "Retire 2035", "Retire 2035 with lump sum", "--today", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Retire 2035: total income")
	assert.Contains(t, out, "Retire 2035 with lump sum: total income")
}

func TestCompareCommand_DifferentRetirementYears(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "compare", path, "Retire 2035", "Retire 2037 lean", "--today", "2024-01-01")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Retire 2037 lean: total income")
	assert.True(t, strings.Contains(out, "Break-even in") || strings.Contains(out, "No break-even"), out)
}
