package pricing

import (
	"math"
	"reflect"
	"testing"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

const (
	exampleTarget = 219.96
	exampleCODB   = 7.37
)

func TestPriceScenarioIndividualWorkedExample(t *testing.T) {
	scope := model.IndividualScope{
		ShootHours:             2,
		EditTimeRatio:          0.5,
		Images:                 5,
		RetouchMinutesPerImage: 15,
		TravelHours:            1,
		AdminHours:             2,
	}

	q := PriceScenario(scope, nil, exampleCODB, exampleTarget)

	approx(t, "Retouch", q.Hours.Retouch, 1.25)
	approx(t, "Edit", q.Hours.Edit, 2.25)
	approx(t, "TotalHours", q.TotalHours, 7.25)
	approx(t, "LaborValue", q.LaborValue, 1594.71)

	wantPrices := [3]float64{1595, 1993, 2552}
	for i, want := range wantPrices {
		if q.Tiers[i].Price != want {
			t.Errorf("tier %d price = %v, want %v", i, q.Tiers[i].Price, want)
		}
	}

	approx(t, "essential effective hourly", q.Tiers[0].EffectiveHourly, 219.96)
	if q.Tiers[0].Margin != 97 {
		t.Errorf("essential margin = %v, want 97", q.Tiers[0].Margin)
	}
}

func TestTierOrderingMonotonic(t *testing.T) {
	scopes := []model.Scope{
		model.IndividualScope{ShootHours: 3, EditTimeRatio: 0.5, Images: 10, RetouchMinutesPerImage: 10, TravelHours: 1, AdminHours: 1},
		model.TeamScope{PeopleCount: 25, MinutesPerPerson: 12, EditTimeRatio: 0.3, RetouchMinutesPerPerson: 8, TravelHours: 2, AdminHours: 3},
		model.RetainerScope{MonthlyHours: 20, AdminHours: 4},
		model.LicensingScope{BaseLicenseFee: 800, AdminHours: 1, LicensingMultiplier: 1.5},
	}

	for _, scope := range scopes {
		q := PriceScenario(scope, nil, exampleCODB, exampleTarget)
		if q.Tiers[0].Price > q.Tiers[1].Price || q.Tiers[1].Price > q.Tiers[2].Price {
			t.Errorf("%s: tiers not ascending: %v %v %v",
				scope.Type(), q.Tiers[0].Price, q.Tiers[1].Price, q.Tiers[2].Price)
		}
	}
}

func TestPriceScenarioIdempotent(t *testing.T) {
	scope := model.TeamScope{
		PeopleCount: 40, MinutesPerPerson: 10, EditTimeRatio: 0.4,
		RetouchMinutesPerPerson: 12, TravelHours: 1.5, AdminHours: 3,
	}
	expenses := []model.ProjectExpense{
		{ID: "1", Name: "Assistant / Grip", Amount: 350},
		{ID: "2", Name: "Studio Rental", Amount: 500},
	}

	a := PriceScenario(scope, expenses, exampleCODB, exampleTarget)
	b := PriceScenario(scope, expenses, exampleCODB, exampleTarget)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different quotes")
	}
}

func TestZeroDurationLicensingScenario(t *testing.T) {
	scope := model.LicensingScope{BaseLicenseFee: 500}
	expenses := []model.ProjectExpense{{ID: "1", Name: "Courier", Amount: 100}}

	q := PriceScenario(scope, expenses, exampleCODB, exampleTarget)

	if q.TotalHours != 0 {
		t.Fatalf("total hours = %v, want 0", q.TotalHours)
	}
	// Price is driven entirely by hard costs and the license base.
	if q.Tiers[0].Price != 600 {
		t.Errorf("essential price = %v, want 600", q.Tiers[0].Price)
	}
	if q.Tiers[0].EffectiveHourly != 0 {
		t.Errorf("effective hourly = %v, want 0 for zero-hour scenario", q.Tiers[0].EffectiveHourly)
	}
	// Margin nets only against hard costs here (cost basis is zero).
	if q.Tiers[0].Margin != 83 {
		t.Errorf("essential margin = %v, want 83", q.Tiers[0].Margin)
	}
}

func TestMarginUsesBreakEvenBasis(t *testing.T) {
	// Margin is markup over the codb-derived cost, not the labor value the
	// price was built from.
	scope := model.RetainerScope{MonthlyHours: 10, AdminHours: 0}
	q := PriceScenario(scope, nil, 10, 100)

	// price 1000, cost basis 100 -> 90%
	if q.Tiers[0].Margin != 90 {
		t.Errorf("margin = %v, want 90", q.Tiers[0].Margin)
	}
}

func TestZeroPriceMarginIsZero(t *testing.T) {
	q := PriceScenario(model.LicensingScope{}, nil, exampleCODB, exampleTarget)
	for i, tier := range q.Tiers {
		if tier.Price != 0 || tier.Margin != 0 || tier.EffectiveHourly != 0 {
			t.Errorf("tier %d of empty scenario = %+v, want all zero", i, tier)
		}
	}
}

func TestTeamScopeDefaults(t *testing.T) {
	// Zero pace and retouch inputs fall back to the stock 15/10 minutes.
	h := ScopeHours(model.TeamScope{PeopleCount: 4})

	approx(t, "Shoot", h.Shoot, 1.0)
	approx(t, "Retouch", h.Retouch, 4.0*10/60)
}

func TestRetainerScopeDefaultHours(t *testing.T) {
	h := ScopeHours(model.RetainerScope{AdminHours: 2})
	approx(t, "Shoot", h.Shoot, 10)
	approx(t, "Total", h.Total(), 12)
}

func TestLicensingMultiplierSkipsEssential(t *testing.T) {
	scope := model.IndividualScope{ShootHours: 4, AdminHours: 0, LicensingMultiplier: 2.0}
	base := PriceScenario(model.IndividualScope{ShootHours: 4}, nil, exampleCODB, exampleTarget)
	boosted := PriceScenario(scope, nil, exampleCODB, exampleTarget)

	if boosted.Tiers[0].Price != base.Tiers[0].Price {
		t.Error("essential price should not take the licensing multiplier")
	}
	if boosted.Tiers[1].Price != math.Round(base.BasePrice*standardMultiplier*2) {
		t.Errorf("standard price = %v, want doubled multiplier applied", boosted.Tiers[1].Price)
	}
}

func TestBuildTiersPairsPositionally(t *testing.T) {
	q := PriceScenario(model.RetainerScope{MonthlyHours: 10}, nil, exampleCODB, exampleTarget)
	contents := model.DefaultTierContents()
	contents[2].Name = "Bespoke"

	tiers := BuildTiers(q, contents)
	if tiers[0].Name != "Essential" || tiers[2].Name != "Bespoke" {
		t.Error("tier content not paired positionally")
	}
	for i := range tiers {
		if tiers[i].Price != q.Tiers[i].Price {
			t.Errorf("tier %d price mismatch after pairing", i)
		}
	}
}
