package pricing

import (
	"math"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

// Tier multipliers. Essential is the bare target; Standard and Premium add
// a buffer and take the scenario's licensing multiplier on top.
const (
	standardMultiplier = 1.25
	premiumMultiplier  = 1.6
)

// Fallbacks applied when a scope field was left at its zero value.
const (
	defaultMinutesPerPerson = 15
	defaultRetouchPerPerson = 10
	defaultMonthlyHours     = 10
)

// HoursBreakdown splits a scenario's time by activity. Retouch is a
// display-only sub-component of Edit; Total does not count it twice.
type HoursBreakdown struct {
	Shoot   float64
	Edit    float64 // includes Retouch
	Retouch float64
	Travel  float64
	Admin   float64
}

// Total returns the billable hours for the scenario.
func (h HoursBreakdown) Total() float64 {
	return h.Shoot + h.Edit + h.Travel + h.Admin
}

// ScopeHours computes the time breakdown for a scenario scope.
func ScopeHours(scope model.Scope) HoursBreakdown {
	var h HoursBreakdown

	switch s := scope.(type) {
	case model.IndividualScope:
		h.Shoot = s.ShootHours
		h.Retouch = float64(s.Images) * s.RetouchMinutesPerImage / 60
		h.Edit = s.ShootHours*s.EditTimeRatio + h.Retouch
		h.Travel = s.TravelHours
		h.Admin = s.AdminHours

	case model.TeamScope:
		minsPer := s.MinutesPerPerson
		if minsPer == 0 {
			minsPer = defaultMinutesPerPerson
		}
		retouchPer := s.RetouchMinutesPerPerson
		if retouchPer == 0 {
			retouchPer = defaultRetouchPerPerson
		}
		h.Shoot = float64(s.PeopleCount) * minsPer / 60
		h.Retouch = float64(s.PeopleCount) * retouchPer / 60
		h.Edit = h.Shoot*s.EditTimeRatio + h.Retouch
		h.Travel = s.TravelHours
		h.Admin = s.AdminHours

	case model.RetainerScope:
		h.Shoot = s.MonthlyHours
		if h.Shoot == 0 {
			h.Shoot = defaultMonthlyHours
		}
		h.Admin = s.AdminHours

	case model.LicensingScope:
		h.Admin = s.AdminHours
	}

	return h
}

// TierPrice holds the computed numbers for one tier.
type TierPrice struct {
	Price           float64 // rounded to the nearest currency unit
	EffectiveHourly float64
	Margin          float64 // percent over break-even cost, rounded
}

// Quote is the full pricing result for one scenario.
type Quote struct {
	Hours         HoursBreakdown
	TotalHours    float64
	CostBasis     float64 // totalHours at the break-even rate
	LaborValue    float64 // totalHours at the target rate
	HardCosts     float64
	LicensingBase float64
	BasePrice     float64
	Tiers         [3]TierPrice // Essential, Standard, Premium
}

// PriceScenario computes all three tiers for a scope, its project expenses,
// and the profile's derived rates. All tiers are recomputed together; the
// result depends on nothing but the arguments.
func PriceScenario(scope model.Scope, expenses []model.ProjectExpense, codbHourly, targetHourlyRate float64) Quote {
	hours := ScopeHours(scope)
	total := hours.Total()

	var hardCosts float64
	for _, e := range expenses {
		hardCosts += e.Amount
	}

	var licensingBase float64
	multiplier := 1.0
	switch s := scope.(type) {
	case model.IndividualScope:
		if s.LicensingMultiplier != 0 {
			multiplier = s.LicensingMultiplier
		}
	case model.TeamScope:
		if s.LicensingMultiplier != 0 {
			multiplier = s.LicensingMultiplier
		}
	case model.RetainerScope:
		if s.LicensingMultiplier != 0 {
			multiplier = s.LicensingMultiplier
		}
	case model.LicensingScope:
		licensingBase = s.BaseLicenseFee
		if s.LicensingMultiplier != 0 {
			multiplier = s.LicensingMultiplier
		}
	}

	q := Quote{
		Hours:         hours,
		TotalHours:    total,
		CostBasis:     total * codbHourly,
		LaborValue:    total * targetHourlyRate,
		HardCosts:     hardCosts,
		LicensingBase: licensingBase,
	}
	q.BasePrice = q.LaborValue + hardCosts + licensingBase

	raw := [3]float64{
		q.BasePrice,
		q.BasePrice * standardMultiplier * multiplier,
		q.BasePrice * premiumMultiplier * multiplier,
	}
	for i, price := range raw {
		q.Tiers[i] = TierPrice{
			Price:           math.Round(price),
			EffectiveHourly: effectiveHourly(price, total),
			Margin:          margin(price, q.CostBasis+hardCosts),
		}
	}
	return q
}

// margin is the percent of the price left after break-even cost. It nets
// against the codb-based cost basis, not the labor valuation: it measures
// markup over the hard floor.
func margin(price, totalCost float64) float64 {
	if price == 0 {
		return 0
	}
	return math.Round((price - totalCost) / price * 100)
}

func effectiveHourly(price, totalHours float64) float64 {
	if totalHours <= 0 {
		return 0
	}
	return price / totalHours
}

// BuildTiers pairs the computed tier prices with caller-supplied content.
// Pricing never reads or edits the content; pairing is positional.
func BuildTiers(q Quote, contents [3]model.TierContent) [3]model.QuoteTier {
	var tiers [3]model.QuoteTier
	for i := range tiers {
		tiers[i] = model.QuoteTier{
			Name:                contents[i].Name,
			Description:         contents[i].Description,
			Features:            contents[i].Features,
			Price:               q.Tiers[i].Price,
			HourlyRateEffective: q.Tiers[i].EffectiveHourly,
			Margin:              q.Tiers[i].Margin,
		}
	}
	return tiers
}
