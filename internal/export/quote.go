// Package export renders saved scenarios as client-facing plain text and
// puts them on the system clipboard.
package export

import (
	"fmt"
	"strings"

	"github.com/JackSaady/photo-pricing-compass/internal/model"

	"github.com/atotto/clipboard"
)

const divider = "--------------------------------"

// Text renders a scenario as the three-option quote block sent to clients.
func Text(sc model.ScenarioData, currency string) string {
	lines := []string{
		fmt.Sprintf("QUOTE: %s", sc.Title),
		fmt.Sprintf("DATE: %s", sc.Date.Format("Jan 2, 2006")),
		divider,
		fmt.Sprintf("OPTION 1: %s - %s%g", sc.Tiers[0].Name, currency, sc.Tiers[0].Price),
		fmt.Sprintf("Includes: %s", strings.Join(sc.Tiers[0].Features, ", ")),
		"",
		fmt.Sprintf("OPTION 2: %s - %s%g (Recommended)", sc.Tiers[1].Name, currency, sc.Tiers[1].Price),
		fmt.Sprintf("Includes: %s", strings.Join(sc.Tiers[1].Features, ", ")),
		"",
		fmt.Sprintf("OPTION 3: %s - %s%g", sc.Tiers[2].Name, currency, sc.Tiers[2].Price),
		fmt.Sprintf("Includes: %s", strings.Join(sc.Tiers[2].Features, ", ")),
		divider,
	}
	return strings.Join(lines, "\n")
}

// Copy puts the rendered quote on the system clipboard.
func Copy(sc model.ScenarioData, currency string) error {
	if err := clipboard.WriteAll(Text(sc, currency)); err != nil {
		return fmt.Errorf("copying quote: %w", err)
	}
	return nil
}
