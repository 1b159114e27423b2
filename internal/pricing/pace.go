package pricing

// PaceWarningMinutes is the per-person floor below which a volume shoot is
// flagged as too fast for consistent quality.
const PaceWarningMinutes = 5.0

// PacePlan is a volume-headshot logistics calculation, independent of all
// other state.
type PacePlan struct {
	Headcount   int
	Days        float64
	HoursPerDay float64
}

// MinutesPerPerson returns the time budget per subject.
func (p PacePlan) MinutesPerPerson() float64 {
	if p.Headcount <= 0 {
		return 0
	}
	return p.Days * p.HoursPerDay * 60 / float64(p.Headcount)
}

// TotalShootingHours returns the total time on set.
func (p PacePlan) TotalShootingHours() float64 {
	return p.Days * p.HoursPerDay
}

// TooFast reports whether the pace falls below the warning threshold.
func (p PacePlan) TooFast() bool {
	return p.MinutesPerPerson() < PaceWarningMinutes
}
