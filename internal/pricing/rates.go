// Package pricing implements the calculation core: rate derivation from the
// business profile, scenario tier pricing, and the standalone licensing and
// pace calculators. Everything here is a pure function of its inputs;
// callers invoke a recompute explicitly after each mutation.
package pricing

import (
	"math"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

// RateBreakdown holds the derived annual figures and hourly rates for a
// profile. CODBHourly is the break-even floor; TargetHourlyRate is the
// minimum rate that also meets the income goal.
type RateBreakdown struct {
	AnnualFixedExpenses float64
	TotalHoursAvailable float64
	AnnualBillableHours float64
	GrossRevenueNeeded  float64
	CODBHourly          float64
	TargetHourlyRate    float64
}

// DeriveRates computes the rate breakdown from a profile's declared inputs.
func DeriveRates(p model.UserProfile) RateBreakdown {
	annualFixed := p.MonthlyExpenses() * 12

	totalHours := p.WorkWeeksPerYear * p.DaysPerWeek * p.HoursPerDay
	billableHours := totalHours * (p.PercentBillable / 100)

	// A tax rate at or above 100% would invert the goal; clamp the factor
	// so the output stays finite.
	taxFactor := 1 - p.TaxRate/100
	if taxFactor <= 0 {
		taxFactor = 1
	}
	grossNeeded := p.AnnualIncomeGoal/taxFactor + annualFixed

	rb := RateBreakdown{
		AnnualFixedExpenses: annualFixed,
		TotalHoursAvailable: totalHours,
		AnnualBillableHours: billableHours,
		GrossRevenueNeeded:  grossNeeded,
	}
	if billableHours > 0 {
		rb.CODBHourly = annualFixed / billableHours
		rb.TargetHourlyRate = grossNeeded / billableHours
	}
	return rb
}

// ApplyRates recomputes the derived rate fields on the profile in place and
// returns the full breakdown for display.
func ApplyRates(p *model.UserProfile) RateBreakdown {
	rb := DeriveRates(*p)
	p.CODBHourly = rb.CODBHourly
	p.TargetHourlyRate = rb.TargetHourlyRate
	return rb
}

// AverageSaleNeeded returns the average sale per shoot required to hit the
// gross revenue target across the given number of shoots.
func AverageSaleNeeded(rb RateBreakdown, shootsPerYear int) float64 {
	if shootsPerYear <= 0 {
		shootsPerYear = 1
	}
	return rb.GrossRevenueNeeded / float64(shootsPerYear)
}

// ShootsNeededAt returns how many shoots per year are needed at the given
// average sale to hit the gross revenue target.
func ShootsNeededAt(rb RateBreakdown, averageSale float64) int {
	if averageSale <= 0 {
		averageSale = 1
	}
	return int(math.Ceil(rb.GrossRevenueNeeded / averageSale))
}
