package norm

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linear(vmin, vmax float64) Norm  { return New(Linear).WithRange(vmin, vmax) }
func logNorm(vmin, vmax float64) Norm { return New(Log).WithRange(vmin, vmax) }

func divNorm(vmin, vmax float64, fair bool) Norm {
	n := New(Diverging).WithRange(vmin, vmax)
	n.Fair = fair
	return n
}

func power(vmin, vmax, gamma float64) Norm {
	n := New(Power).WithRange(vmin, vmax)
	n.Gamma = gamma
	return n
}

func segmented(levels ...float64) Norm {
	n := New(Segmented)
	n.Levels = levels
	return n
}

var normalizeTests = []struct {
	norm    Norm
	x, want float64
}{
	{linear(10, 20), 10, 0},
	{linear(10, 20), 15, 0.5},
	{linear(10, 20), 25, 1.5},
	{linear(3, 3), 3, 0},
	{New(Auto).WithRange(0, 4), 1, 0.25},

	{logNorm(1, 100), 1, 0},
	{logNorm(1, 100), 10, 0.5},
	{logNorm(1, 100), 100, 1},
	{logNorm(1, 100), -1, math.NaN()},

	{New(SymLog).WithRange(-100, 100), 0, 0.5},
	{New(SymLog).WithRange(-100, 100), 100, 1},
	{New(SymLog).WithRange(-100, 100), 1, 2.0 / 3},

	{power(0, 4, 2), 2, 0.25},
	{power(0, 4, 0.5), 1, 0.5},

	{divNorm(-1, 4, true), 0, 0.5},
	{divNorm(-1, 4, true), 4, 1},
	{divNorm(-1, 4, true), -1, 0.375},
	{divNorm(-1, 4, false), -1, 0},
	{divNorm(-1, 4, false), 2, 0.75},

	{segmented(0, 1, 10, 100), 0, 0},
	{segmented(0, 1, 10, 100), 1, 1.0 / 3},
	{segmented(0, 1, 10, 100), 55, 5.0 / 6},
	{segmented(0, 1, 10, 100), 1000, 1},

	{New(Linear), 3, math.NaN()},
}

func equal64(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestNormalize(t *testing.T) {
	for i, tc := range normalizeTests {
		t.Run(fmt.Sprintf("%s/%d", tc.norm.Kind, i), func(t *testing.T) {
			if got := tc.norm.Normalize(tc.x); !equal64(got, tc.want) {
				t.Errorf("%s.Normalize(%g) = %g, want %g",
					tc.norm, tc.x, got, tc.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	for i, tc := range normalizeTests {
		if math.IsNaN(tc.want) || tc.norm.Kind == Segmented && (tc.want == 0 || tc.want == 1) {
			continue
		}
		if tc.norm.Vmin == tc.norm.Vmax {
			continue
		}
		t.Run(fmt.Sprintf("%s/%d", tc.norm.Kind, i), func(t *testing.T) {
			y := tc.norm.Normalize(tc.x)
			if got := tc.norm.Inverse(y); math.Abs(got-tc.x) > 1e-9*math.Max(1, math.Abs(tc.x)) {
				t.Errorf("%s.Inverse(%g) = %g, want %g", tc.norm, y, got, tc.x)
			}
		})
	}
}

func TestSegmentedCenter(t *testing.T) {
	n := segmented(-1, 0, 1, 2, 3)
	n.Vcenter = 0
	assert.InDelta(t, 0.5, n.Normalize(0), 1e-12)
	assert.InDelta(t, 0.0, n.Normalize(-1), 1e-12)
	assert.InDelta(t, 1.0, n.Normalize(3), 1e-12)
	assert.InDelta(t, 2.0, n.Inverse(n.Normalize(2)), 1e-12)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"":          Auto,
		"linear":    Linear,
		"LOG":       Log,
		"symlog":    SymLog,
		"div":       Diverging,
		"diverging": Diverging,
		"segments":  Segmented,
		"power":     Power,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseKind("bogus")
	assert.Error(t, err)
	assert.Equal(t, "diverging", Diverging.String())
}

func TestCloneDoesNotAlias(t *testing.T) {
	n := segmented(1, 2, 3)
	m := n.WithRange(0, 1)
	m.Levels[0] = 42
	assert.Equal(t, 1.0, n.Levels[0])
}
