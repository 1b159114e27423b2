package cmd

import (
	"fmt"
	"strings"

	"github.com/JackSaady/photo-pricing-compass/internal/advisor"
	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"
	"github.com/JackSaady/photo-pricing-compass/internal/store"

	"github.com/spf13/cobra"
)

var negotiateBudget float64

var negotiateCmd = &cobra.Command{
	Use:   "negotiate <scenario-id>",
	Short: "Get tactics for a client whose budget is below your quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runNegotiate,
}

func init() {
	negotiateCmd.Flags().Float64Var(&negotiateBudget, "budget", 0, "The client's stated budget")
	_ = negotiateCmd.MarkFlagRequired("budget")
	rootCmd.AddCommand(negotiateCmd)
}

// findScenario matches a saved scenario by full or short id.
func findScenario(s *store.Store, id string) (model.ScenarioData, error) {
	scenarios, err := s.LoadScenarios()
	if err != nil {
		return model.ScenarioData{}, err
	}
	for _, sc := range scenarios {
		if sc.ID == id || shortID(sc.ID) == id {
			return sc, nil
		}
	}
	return model.ScenarioData{}, fmt.Errorf("no scenario with id %q; see `compass history`", id)
}

func runNegotiate(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	sc, err := findScenario(s, args[0])
	if err != nil {
		return err
	}

	profile, _, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	cur := currencyOf(profile, cfg)

	fmt.Println(cli.RenderTitle(sc.Title))
	fmt.Println()
	rows := make([][]string, 0, 4)
	for _, tier := range sc.Tiers {
		gap := negotiateBudget - tier.Price
		note := cli.Money("within budget")
		if gap < 0 {
			note = cli.Warn(fmt.Sprintf("short by %s", cli.FormatMoney(cur, -gap)))
		}
		rows = append(rows, []string{tier.Name, cli.FormatMoney(cur, tier.Price), note})
	}
	rows = append(rows, []string{"Client budget", cli.FormatMoney(cur, negotiateBudget), ""})
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Tier", "Price", ""},
		Rows:    rows,
	}))

	client := advisor.NewClient(config.GetAdvisorKey(cfg), cfg.Advisor.Model)
	if cfg.Advisor.BaseURL != "" {
		client = client.WithBaseURL(cfg.Advisor.BaseURL)
	}
	advice := client.NegotiationAdvice(cmd.Context(), advisor.NegotiationPrompt{
		Currency:     cur,
		TargetHourly: pricing.DeriveRates(profile).TargetHourlyRate,
		Scenario:     sc,
		ClientBudget: negotiateBudget,
	})

	fmt.Println("  " + strings.ReplaceAll(advice, "\n", "\n  "))
	fmt.Println()
	return nil
}
