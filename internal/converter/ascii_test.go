package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDensity(t *testing.T) {
	t.Parallel()
	runes := []rune(DefaultDensity)

	require.Len(t, runes, 30)
	assert.Equal(t, 'Ñ', runes[0])
	assert.Equal(t, ' ', runes[27])
	assert.Equal(t, ' ', runes[28])
	assert.Equal(t, ' ', runes[29])
}

func TestCharIndex_Endpoints(t *testing.T) {
	t.Parallel()
	n := len([]rune(DefaultDensity))

	assert.Equal(t, 0, charIndex(255, n), "white maps to the first rune")
	assert.Equal(t, n-1, charIndex(0, n), "black maps to the last rune")
}

func TestCharIndex_DarkerNeverBrighter(t *testing.T) {
	t.Parallel()
	n := len([]rune(DefaultDensity))

	prev := charIndex(0, n)
	for l := 1; l <= 255; l++ {
		idx := charIndex(float64(l), n)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
		require.LessOrEqual(t, idx, prev, "index must not grow as luminance rises (l=%d)", l)
		prev = idx
	}
}

func TestCharIndex_SingleRune(t *testing.T) {
	t.Parallel()
	for l := 0; l <= 255; l++ {
		require.Equal(t, 0, charIndex(float64(l), 1))
	}
}

func TestCharIndex_OutOfRangeClamps(t *testing.T) {
	t.Parallel()
	n := len([]rune(DefaultDensity))

	assert.Equal(t, 0, charIndex(300, n))
	assert.Equal(t, n-1, charIndex(-5, n))
}

func TestMapLuminance(t *testing.T) {
	t.Parallel()
	lg := &LuminanceGrid{Cols: 3, Rows: 2, V: []float64{255, 128, 0, 0, 128, 255}}

	cg := MapLuminance(lg, []rune(DefaultDensity))

	assert.Equal(t, 3, cg.Cols)
	assert.Equal(t, 2, cg.Rows)
	want := []rune{'Ñ', '0', ' ', ' ', '0', 'Ñ'}
	if diff := cmp.Diff(want, cg.Cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, '0', cg.At(1, 0))
	assert.Equal(t, 'Ñ', cg.At(2, 1))
}

func TestMapLuminance_EqualLuminanceEqualRune(t *testing.T) {
	t.Parallel()
	lg := &LuminanceGrid{Cols: 4, Rows: 1, V: []float64{77.3, 200, 77.3, 200}}

	cg := MapLuminance(lg, []rune(DefaultDensity))

	assert.Equal(t, cg.Cells[0], cg.Cells[2])
	assert.Equal(t, cg.Cells[1], cg.Cells[3])
}

func TestMapLuminance_CustomDensity(t *testing.T) {
	t.Parallel()
	lg := &LuminanceGrid{Cols: 4, Rows: 1, V: []float64{255, 128, 127, 0}}

	// Two bands: the upper half of the range takes the first rune.
	cg := MapLuminance(lg, []rune("@ "))

	want := []rune{'@', '@', ' ', ' '}
	if diff := cmp.Diff(want, cg.Cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}
