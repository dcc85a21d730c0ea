package timeseries

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadText(t *testing.T) {
	input := `# phase record
1.0e-9

  2.5e-9
-3e-10
# trailing comment
4`

	s, err := LoadText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0e-9, 2.5e-9, -3e-10, 4}, s.Values)
	assert.Equal(t, 0.0, s.Rate)
}

func TestLoadTextParseError(t *testing.T) {
	_, err := LoadText(strings.NewReader("1\n2\nthree\n4\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "three", perr.Text)
}

func TestLoadTextEmpty(t *testing.T) {
	_, err := LoadText(strings.NewReader("# nothing\n\n"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTextFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clock_a.txt")

	orig := New([]float64{0, 1.25e-9, -7.5e-12, 3}, 1)
	require.NoError(t, SaveText(orig, path))

	loaded, err := LoadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig.Values, loaded.Values)
	assert.Equal(t, "clock_a", loaded.Name)
}

func TestLoadTextFileMissing(t *testing.T) {
	_, err := LoadTextFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
