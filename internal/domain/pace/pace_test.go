package pace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFormat checks clamping, rounding and padding of pace strings.
func TestFormat(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		125:    "2:05",
		59:     "0:59",
		-5:     "0:00",
		0:      "0:00",
		59.5:   "1:00",
		59.49:  "0:59",
		7805:   "130:05",
		412.21: "6:52",
	}

	for in, want := range cases {
		require.Equal(t, want, Format(in), in)
	}
}

// TestCompute_ThreeHourMarathonInMiles pins the reference paces for a 3:00:00 goal.
func TestCompute_ThreeHourMarathonInMiles(t *testing.T) {
	t.Parallel()

	r := Compute(10800, Mile)
	require.NotNil(t, r)

	require.Equal(t, Mile, r.Unit)
	require.Equal(t, "min/mi", r.UnitLabel)
	require.InDelta(t, 412.21, r.BasePace, 0.01)
	require.Equal(t, "6:52", r.MP)
	require.Equal(t, "7:54 to 8:35", r.GA)
	require.Equal(t, "6:15 to 6:27", r.LT)
	require.Equal(t, "7:33 to 8:15", r.LR)
	require.EqualValues(t, 10800, r.TotalSeconds)
}

// TestCompute_ThreeHourMarathonInKilometers covers the metric distance and label.
func TestCompute_ThreeHourMarathonInKilometers(t *testing.T) {
	t.Parallel()

	r := Compute(10800, Kilometer)
	require.NotNil(t, r)

	require.Equal(t, "min/km", r.UnitLabel)
	require.Equal(t, "4:16", r.MP)
	require.Equal(t, "4:54 to 5:20", r.GA)
	require.Equal(t, "3:53 to 4:01", r.LT)
	require.Equal(t, "4:42 to 5:07", r.LR)
}

// TestCompute_Degenerate returns nil for zero, negative and unknown-unit input.
func TestCompute_Degenerate(t *testing.T) {
	t.Parallel()

	require.Nil(t, Compute(0, Mile))
	require.Nil(t, Compute(-10, Kilometer))
	require.Nil(t, Compute(10800, Unit("furlong")))
}

// TestCompute_NewSnapshotEachCall ensures results are never shared between calls.
func TestCompute_NewSnapshotEachCall(t *testing.T) {
	t.Parallel()

	a := Compute(10800, Mile)
	b := Compute(10800, Mile)

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
}

// TestCompute_ZoneOrdering verifies LT is faster and GA/LR slower than MP for any goal.
func TestCompute_ZoneOrdering(t *testing.T) {
	t.Parallel()

	for _, unit := range []Unit{Mile, Kilometer} {
		for total := int64(1); total <= 99*3600+59*60+59; total += 997 {
			r := Compute(total, unit)
			require.NotNil(t, r)

			_, ltHi := r.Bounds(LactateThreshold)
			require.Less(t, ltHi, r.BasePace)

			for _, z := range []Zone{GeneralAerobic, LongRun} {
				lo, hi := r.Bounds(z)
				require.Greater(t, lo, r.BasePace, z.Code)
				require.LessOrEqual(t, lo, hi, z.Code)
			}
		}
	}
}

// TestResult_Pace looks up formatted fields by zone.
func TestResult_Pace(t *testing.T) {
	t.Parallel()

	r := Compute(10800, Mile)

	for _, z := range Zones() {
		require.NotEmpty(t, r.Pace(z), z.Code)
	}

	require.Equal(t, r.MP, r.Pace(MarathonPace))
	require.Empty(t, r.Pace(Zone{Code: "XX"}))
	require.False(t, MarathonPace.IsRange())
	require.True(t, LongRun.IsRange())
}

// TestCompute_FieldsFollowBounds checks every field is rendered from its zone bounds.
func TestCompute_FieldsFollowBounds(t *testing.T) {
	t.Parallel()

	for _, unit := range []Unit{Mile, Kilometer} {
		r := Compute(12345, unit)
		require.NotNil(t, r)

		for _, z := range Zones() {
			lo, hi := r.Bounds(z)
			if z.IsRange() {
				require.Equal(t, FormatRange(lo, hi), r.Pace(z), z.Code)
			} else {
				require.Equal(t, Format(lo), r.Pace(z), z.Code)
				require.NotContains(t, r.Pace(z), " to ", z.Code)
			}
		}
	}
}

// TestParseUnit accepts aliases and rejects everything else.
func TestParseUnit(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"mile", "mi", " MI ", "Miles"} {
		u, err := ParseUnit(s)
		require.NoError(t, err, s)
		require.Equal(t, Mile, u, s)
	}

	for _, s := range []string{"kilometer", "km", "KM"} {
		u, err := ParseUnit(s)
		require.NoError(t, err, s)
		require.Equal(t, Kilometer, u, s)
	}

	_, err := ParseUnit("furlong")
	require.ErrorIs(t, err, ErrUnknownUnit)

	require.Equal(t, "mi", Mile.Short())
	require.Equal(t, "km", Kilometer.Short())
	require.Zero(t, Unit("x").Distance())
}
