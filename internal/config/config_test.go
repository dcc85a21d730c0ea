package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/taus"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, "oadev", c.Method)
	assert.Equal(t, "octave", c.TauMode)
	assert.NoError(t, c.Validate())
}

func TestLoadEnvDotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALLANDEV_TAU_MODE=decade\nALLANDEV_MAX_M=64\nALLANDEV_EVEN=true\n"), 0o644))

	// godotenv never overrides variables that are already present
	for _, key := range []string{"ALLANDEV_TAU_MODE", "ALLANDEV_MAX_M", "ALLANDEV_EVEN"} {
		unsetEnv(t, key)
	}
	t.Setenv("ALLANDEV_METHOD", "adev")

	c, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "adev", c.Method)
	assert.Equal(t, "decade", c.TauMode)
	assert.Equal(t, 64, c.MaxM)
	assert.True(t, c.Even)
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv("ALLANDEV_METHOD", "")
	c, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "oadev", c.Method)
}

func TestLoadEnvMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALLANDEV_METHOD=\"adev\n"), 0o644))

	_, err := LoadEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("ALLANDEV_MAX_M", "lots")
	t.Setenv("ALLANDEV_VERBOSE", "maybe")

	c, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.MaxM)
	assert.False(t, c.Verbose)
}

func TestParseFlags(t *testing.T) {
	c := Defaults()
	err := c.ParseFlags("allandev", []string{"-method", "adev", "-mode", "log10", "-errors", "data.txt", "0.1", "freq"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "data.txt", c.InputFile)
	assert.Equal(t, 0.1, c.SamplePeriod)
	assert.Equal(t, "freq", c.DataType)
	assert.Equal(t, "adev", c.Method)
	assert.Equal(t, "log10", c.TauMode)
	assert.True(t, c.Errors)
}

func TestParseFlagsOverridesEnv(t *testing.T) {
	t.Setenv("ALLANDEV_TAU_MODE", "decade")
	c, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	require.NoError(t, c.ParseFlags("allandev", []string{"x.txt", "1", "phase"}, io.Discard))
	assert.Equal(t, "decade", c.TauMode)

	require.NoError(t, c.ParseFlags("allandev", []string{"-mode", "octave", "x.txt", "1", "phase"}, io.Discard))
	assert.Equal(t, "octave", c.TauMode)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing args", []string{"x.txt", "1"}, ErrUsage},
		{"bad period", []string{"x.txt", "fast", "phase"}, ErrUsage},
		{"bad method", []string{"-method", "hdev", "x.txt", "1", "phase"}, adev.ErrUnknownMethod},
		{"bad mode", []string{"-mode", "linear", "x.txt", "1", "phase"}, taus.ErrUnknownMode},
		{"negative max-m", []string{"-max-m", "-2", "x.txt", "1", "phase"}, ErrUsage},
		{"negative skip", []string{"-skip", "-1", "x.txt", "1", "phase"}, ErrUsage},
		{"decimate freq", []string{"-decimate", "4", "x.txt", "1", "freq"}, ErrUsage},
		{"replot without plot", []string{"-replot", "out.txt"}, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			err := c.ParseFlags("allandev", tt.args, io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseFlagsSkipDecimate(t *testing.T) {
	c := Defaults()
	require.NoError(t, c.ParseFlags("allandev", []string{"-skip", "10", "-decimate", "4", "x.txt", "1", "phase"}, io.Discard))
	assert.Equal(t, 10, c.Skip)
	assert.Equal(t, 4, c.Decimate)
}

func TestParseFlagsReplot(t *testing.T) {
	c := Defaults()
	require.NoError(t, c.ParseFlags("allandev", []string{"-replot", "out.txt", "-plot", "out.png"}, io.Discard))
	assert.Equal(t, "out.txt", c.ReplotPath)
	assert.Equal(t, "out.png", c.PlotPath)
}
