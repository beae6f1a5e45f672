package pace

// Result is an immutable snapshot of the paces derived from one goal time.
// It is never modified after Compute returns it; recomputation builds a new one.
type Result struct {
	// Unit is the distance unit of every pace in the result.
	Unit Unit
	// UnitLabel is the display suffix, "min/mi" or "min/km".
	UnitLabel string
	// MP is the marathon pace.
	MP string
	// LT is the lactate threshold range.
	LT string
	// GA is the general aerobic range.
	GA string
	// LR is the long run range.
	LR string

	// TotalSeconds is the goal finish time the result was derived from.
	TotalSeconds int64
	// BasePace is the unrounded marathon pace in seconds per unit.
	BasePace float64
}

// Bounds returns the unrounded pace range of z in seconds per unit.
func (r *Result) Bounds(z Zone) (lo, hi float64) {
	return z.Lower * r.BasePace, z.Upper * r.BasePace
}

// format renders z as a single pace, or as "lo to hi" when z is a range.
func (r *Result) format(z Zone) string {
	lo, hi := r.Bounds(z)
	if !z.IsRange() {
		return Format(lo)
	}

	return FormatRange(lo, hi)
}

// Pace returns the formatted field for zone z, or "" for an unknown zone.
func (r *Result) Pace(z Zone) string {
	switch z.Code {
	case MarathonPace.Code:
		return r.MP
	case LactateThreshold.Code:
		return r.LT
	case GeneralAerobic.Code:
		return r.GA
	case LongRun.Code:
		return r.LR
	default:
		return ""
	}
}
