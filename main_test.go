package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgaunet/millisecond/internal/units"
)

// execute runs the root command with an empty $HOME so no user config is read.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default millis", []string{"33023448000"}, "1y 17d 5h 10m 48s\n"},
		{"long style", []string{"-s", "long", "33023448000"}, "1 year 17 days 5 hours 10 minutes 48 seconds\n"},
		{"merged by default", []string{"10123"}, "10.123s\n"},
		{"no merge", []string{"--no-merge", "10123"}, "10s 123ms\n"},
		{"nanos", []string{"--unit", "ns", "1800"}, "1µs 800ns\n"},
		{"days", []string{"-u", "days", "366"}, "1y 1d\n"},
		{"components", []string{"-c", "119999"}, "1m\n59.999s\n"},
		{"zero", []string{"0"}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRootCommandYAML(t *testing.T) {
	out, err := execute(t, "-o", "yaml", "1400")
	require.NoError(t, err)
	assert.Contains(t, out, "seconds: 1")
	assert.Contains(t, out, "kind: SecsAndMillis")
	assert.Contains(t, out, "text: 1.400s")
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing value", nil, errMissingValue},
		{"bad unit", []string{"-u", "weeks", "1"}, units.ErrUnknownUnit},
		{"bad value", []string{"1.5"}, units.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := execute(t, "1", "2")
	assert.Error(t, err, "more than one value is rejected")
}

func TestConfigProvidesDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yml")
	require.NoError(t, writeFile(path, "unit: s\nstyle: long\nmerge: false\n"))

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "61"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1 minute 1 second\n", stdout.String())

	stdout.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "-s", "short", "-u", "ms", "1400"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1s 400ms\n", stdout.String(), "flags override config, merge stays off")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
