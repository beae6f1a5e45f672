package pace

// Zone is a training pace range expressed as multipliers of marathon pace.
// A multiplier above 1 is slower than marathon pace.
type Zone struct {
	// Code is the short zone name used as the Result field name.
	Code string
	// Name is the human readable zone name.
	Name string
	// Lower multiplies the base pace for the fast end of the range.
	Lower float64
	// Upper multiplies the base pace for the slow end of the range.
	Upper float64
}

// IsRange reports whether the zone spans more than a single pace.
func (z Zone) IsRange() bool {
	return z.Lower != z.Upper
}

// Training zones.
var (
	MarathonPace     = Zone{Code: "MP", Name: "Marathon Pace", Lower: 1.00, Upper: 1.00}
	LactateThreshold = Zone{Code: "LT", Name: "Lactate Threshold", Lower: 0.91, Upper: 0.94}
	GeneralAerobic   = Zone{Code: "GA", Name: "General Aerobic", Lower: 1.15, Upper: 1.25}
	LongRun          = Zone{Code: "LR", Name: "(Med) Long Run", Lower: 1.10, Upper: 1.20}
)

// Zones returns every zone in display order.
func Zones() []Zone {
	return []Zone{MarathonPace, LactateThreshold, GeneralAerobic, LongRun}
}
