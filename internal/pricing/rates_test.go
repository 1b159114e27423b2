package pricing

import (
	"math"
	"testing"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

const tolerance = 0.01

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.4f, want %.4f", name, got, want)
	}
}

func baseProfile() model.UserProfile {
	return model.UserProfile{
		AnnualIncomeGoal: 80000,
		TaxRate:          30,
		WorkWeeksPerYear: 48,
		DaysPerWeek:      4,
		HoursPerDay:      8,
		PercentBillable:  35,
		Expenses: []model.Expense{
			{ID: "1", Name: "Software", Amount: 60},
			{ID: "2", Name: "Insurance", Amount: 40},
			{ID: "3", Name: "Hosting", Amount: 30},
			{ID: "4", Name: "Marketing", Amount: 200},
		},
	}
}

func TestDeriveRatesWorkedExample(t *testing.T) {
	rb := DeriveRates(baseProfile())

	approx(t, "AnnualFixedExpenses", rb.AnnualFixedExpenses, 3960)
	approx(t, "TotalHoursAvailable", rb.TotalHoursAvailable, 1536)
	approx(t, "AnnualBillableHours", rb.AnnualBillableHours, 537.6)
	approx(t, "GrossRevenueNeeded", rb.GrossRevenueNeeded, 118245.71)
	approx(t, "TargetHourlyRate", rb.TargetHourlyRate, 219.96)
	approx(t, "CODBHourly", rb.CODBHourly, 7.37)
}

func TestDeriveRatesTaxClamp(t *testing.T) {
	for _, taxRate := range []float64{100, 120, 250} {
		p := baseProfile()
		p.TaxRate = taxRate
		rb := DeriveRates(p)

		if math.IsInf(rb.GrossRevenueNeeded, 0) || math.IsNaN(rb.GrossRevenueNeeded) {
			t.Fatalf("taxRate=%v: gross revenue is not finite", taxRate)
		}
		if rb.GrossRevenueNeeded < rb.AnnualFixedExpenses {
			t.Errorf("taxRate=%v: gross %.2f < annual expenses %.2f",
				taxRate, rb.GrossRevenueNeeded, rb.AnnualFixedExpenses)
		}
	}
}

func TestDeriveRatesZeroBillableHours(t *testing.T) {
	p := baseProfile()
	p.PercentBillable = 0
	rb := DeriveRates(p)

	if rb.CODBHourly != 0 || rb.TargetHourlyRate != 0 {
		t.Errorf("rates with no billable hours = (%.2f, %.2f), want (0, 0)",
			rb.CODBHourly, rb.TargetHourlyRate)
	}
}

func TestTargetCoversBreakEven(t *testing.T) {
	// Whenever the income goal is non-negative, the target rate must be at
	// least the break-even rate.
	goals := []float64{0, 1000, 80000, 500000}
	taxRates := []float64{0, 15, 30, 55}

	for _, goal := range goals {
		for _, tax := range taxRates {
			p := baseProfile()
			p.AnnualIncomeGoal = goal
			p.TaxRate = tax
			rb := DeriveRates(p)

			if rb.TargetHourlyRate < rb.CODBHourly {
				t.Errorf("goal=%v tax=%v: target %.4f < codb %.4f",
					goal, tax, rb.TargetHourlyRate, rb.CODBHourly)
			}
		}
	}
}

func TestApplyRatesWritesBack(t *testing.T) {
	p := baseProfile()
	rb := ApplyRates(&p)

	if p.CODBHourly != rb.CODBHourly || p.TargetHourlyRate != rb.TargetHourlyRate {
		t.Error("ApplyRates did not store derived rates on the profile")
	}
}

func TestVolumeStrategy(t *testing.T) {
	rb := DeriveRates(baseProfile())

	approx(t, "AverageSaleNeeded", AverageSaleNeeded(rb, 50), 2364.91)

	// Reverse: at $1,500 per shoot the gross target needs 79 shoots.
	if got := ShootsNeededAt(rb, 1500); got != 79 {
		t.Errorf("ShootsNeededAt(1500) = %d, want 79", got)
	}

	// Guard rails: zero inputs fall back instead of dividing by zero.
	if got := AverageSaleNeeded(rb, 0); got != rb.GrossRevenueNeeded {
		t.Errorf("AverageSaleNeeded(0) = %v, want gross revenue", got)
	}
	if got := ShootsNeededAt(rb, 0); got != int(math.Ceil(rb.GrossRevenueNeeded)) {
		t.Errorf("ShootsNeededAt(0) = %d, want %d", got, int(math.Ceil(rb.GrossRevenueNeeded)))
	}
}
