package adev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveInsufficient(t *testing.T) {
	rows := []Row{
		{Tau: 1, M: 1, Deviation: 0.5, Error: 0.1, N: 25},
		{Tau: 2, M: 2, Deviation: 0.4, Error: 0.2, N: 1},
		{Tau: 4, M: 4, Status: Insufficient},
		{Tau: 8, M: 8, Deviation: 0.3, Error: 0.2, N: 2},
		{Tau: 16, M: 16, Deviation: 0.2, Error: 0.2, N: 0},
	}

	out := RemoveInsufficient(rows)
	require.Len(t, out, 2)
	assert.Equal(t, rows[0], out[0])
	assert.Equal(t, rows[3], out[1])
	assert.LessOrEqual(t, len(out), len(rows))

	for _, r := range out {
		assert.Greater(t, r.N, 1)
	}

	assert.Empty(t, RemoveInsufficient(nil))
}

func TestRemoveInsufficientFreshSlice(t *testing.T) {
	rows := []Row{{N: 5}, {N: 6}}
	out := RemoveInsufficient(rows)
	out[0].N = 99
	assert.Equal(t, 5, rows[0].N)
}

func TestRemoveSmallCounts(t *testing.T) {
	taus := []float64{1, 2, 4, 8}
	devs := []float64{0.4, 0.3, 0.2, 0.1}
	errs := []float64{0.01, 0.02, 0.03, 0.04}
	ns := []int{10, 1, 0, 3}

	ot, od, oe, on, err := RemoveSmallCounts(taus, devs, errs, ns)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 8}, ot)
	assert.Equal(t, []float64{0.4, 0.1}, od)
	assert.Equal(t, []float64{0.01, 0.04}, oe)
	assert.Equal(t, []int{10, 3}, on)

	_, _, _, _, err = RemoveSmallCounts(taus, devs[:2], errs, ns)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
