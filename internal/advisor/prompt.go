package advisor

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/model"
)

// NegotiationPrompt carries everything the pricing-strategist prompt
// interpolates.
type NegotiationPrompt struct {
	Currency     string
	TargetHourly float64
	Scenario     model.ScenarioData
	ClientBudget float64
}

// Render produces the prompt text.
func (p NegotiationPrompt) Render() string {
	return fmt.Sprintf(`You are a pricing strategist for a photographer.

CONTEXT:
Photographer's Target Hourly Rate: %s%.2f
Scenario: %s (%s)

PRICING TIERS:
Essential: %s%g
Standard: %s%g
Premium: %s%g

SITUATION:
The client has a budget of %s%g.

TASK:
Provide 3 specific, tactical suggestions to adjust the scope of work to meet the client's budget without devaluing the photographer's time.
Do not just say "offer less". Be specific based on typical photography costs (e.g., fewer images, reduced licensing duration, remove advanced retouching, client comes to studio instead of on-location).
Keep it bulleted and concise.`,
		p.Currency, p.TargetHourly,
		p.Scenario.Title, p.Scenario.Type,
		p.Currency, p.Scenario.Tiers[0].Price,
		p.Currency, p.Scenario.Tiers[1].Price,
		p.Currency, p.Scenario.Tiers[2].Price,
		p.Currency, p.ClientBudget)
}

// CorporatePrompt carries the volume-day parameters for the logistics
// planner prompt.
type CorporatePrompt struct {
	Headcount   int
	Days        float64
	HoursPerDay float64
}

// Render produces the prompt text.
func (p CorporatePrompt) Render() string {
	return fmt.Sprintf(`Act as a corporate photography logistics planner.

Scenario:
Headcount: %d people
Days allocated: %g
Shooting hours/day: %g

Task:
Provide a brief, 2-sentence strategic recommendation on how to structure the flow (e.g., "Schedule 5 mins per person with 2 styling stations...") to ensure efficiency and high quality.`,
		p.Headcount, p.Days, p.HoursPerDay)
}
