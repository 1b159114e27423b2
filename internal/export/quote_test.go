package export

import (
	"strings"
	"testing"
	"time"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

func TestTextLayout(t *testing.T) {
	contents := model.DefaultTierContents()
	sc := model.ScenarioData{
		Title: "Acme Corp Headshots",
		Date:  time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Tiers: [3]model.QuoteTier{
			{Name: contents[0].Name, Price: 1595, Features: contents[0].Features},
			{Name: contents[1].Name, Price: 1993, Features: contents[1].Features},
			{Name: contents[2].Name, Price: 2552, Features: contents[2].Features},
		},
	}

	want := `QUOTE: Acme Corp Headshots
DATE: Mar 14, 2026
--------------------------------
OPTION 1: Essential - $1595
Includes: Standard Turnaround, Web Usage Rights, Basic Retouching

OPTION 2: Standard - $1993 (Recommended)
Includes: Priority Turnaround, Print & Web Usage, High-End Retouching, Strategy Call

OPTION 3: Premium - $2552
Includes: Rush Delivery (24h), Full Buyout / Extensive Usage, Unlimited Looks, Hair & Makeup Included
--------------------------------`

	if got := Text(sc, "$"); got != want {
		t.Errorf("quote text mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestTextCurrency(t *testing.T) {
	sc := model.ScenarioData{
		Title: "Retainer",
		Date:  time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Tiers: [3]model.QuoteTier{
			{Name: "Essential", Price: 900},
			{Name: "Standard", Price: 1125},
			{Name: "Premium", Price: 1440},
		},
	}

	got := Text(sc, "€")
	if !strings.Contains(got, "OPTION 1: Essential - €900") {
		t.Errorf("currency symbol not applied:\n%s", got)
	}
}
