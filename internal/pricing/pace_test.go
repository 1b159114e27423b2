package pricing

import "testing"

func TestPacePlanWorkedExample(t *testing.T) {
	p := PacePlan{Headcount: 50, Days: 1, HoursPerDay: 6}

	approx(t, "MinutesPerPerson", p.MinutesPerPerson(), 7.2)
	approx(t, "TotalShootingHours", p.TotalShootingHours(), 6)
	if p.TooFast() {
		t.Error("7.2 min/person should not trigger the pace warning")
	}
}

func TestPacePlanWarning(t *testing.T) {
	p := PacePlan{Headcount: 100, Days: 1, HoursPerDay: 6}

	approx(t, "MinutesPerPerson", p.MinutesPerPerson(), 3.6)
	if !p.TooFast() {
		t.Error("3.6 min/person should trigger the pace warning")
	}
}

func TestPacePlanZeroHeadcount(t *testing.T) {
	p := PacePlan{Headcount: 0, Days: 2, HoursPerDay: 8}
	if got := p.MinutesPerPerson(); got != 0 {
		t.Errorf("MinutesPerPerson with no headcount = %v, want 0", got)
	}
}
