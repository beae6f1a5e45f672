package pace

// Compute derives the marathon pace and training zones from a goal finish
// time. It returns nil when totalSeconds is not positive or the unit is
// unknown; that is the "nothing entered yet" outcome, not an error.
func Compute(totalSeconds int64, unit Unit) *Result {
	if totalSeconds <= 0 || !unit.Valid() {
		return nil
	}

	r := &Result{
		Unit:         unit,
		UnitLabel:    unit.Label(),
		TotalSeconds: totalSeconds,
		BasePace:     float64(totalSeconds) / unit.Distance(),
	}

	r.MP = r.format(MarathonPace)
	r.LT = r.format(LactateThreshold)
	r.GA = r.format(GeneralAerobic)
	r.LR = r.format(LongRun)

	return r
}
