package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/advisor"
	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/spf13/cobra"
)

var corporateFlags struct {
	headcount   int
	days        float64
	hoursPerDay float64
	plan        bool
}

var corporateCmd = &cobra.Command{
	Use:   "corporate",
	Short: "Check the pace of a volume headshot day",
	Long: `Work out minutes per person for a corporate headshot job and flag
schedules too tight for consistent quality.`,
	RunE: runCorporate,
}

func init() {
	f := corporateCmd.Flags()
	f.IntVar(&corporateFlags.headcount, "people", 50, "Headcount to photograph")
	f.Float64Var(&corporateFlags.days, "days", 1, "Days allocated")
	f.Float64Var(&corporateFlags.hoursPerDay, "hours", 6, "Shooting hours per day")
	f.BoolVar(&corporateFlags.plan, "plan", false, "Also fetch a flow recommendation from the advisor")
	rootCmd.AddCommand(corporateCmd)
}

func runCorporate(cmd *cobra.Command, _ []string) error {
	plan := pricing.PacePlan{
		Headcount:   corporateFlags.headcount,
		Days:        corporateFlags.days,
		HoursPerDay: corporateFlags.hoursPerDay,
	}

	pace := cli.FormatMinutes(plan.MinutesPerPerson())
	if plan.TooFast() {
		pace = cli.Warn(pace + "  (under 5 min — too fast for consistent quality)")
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Corporate Pace",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Headcount", fmt.Sprintf("%d", plan.Headcount)},
			{"Total shooting hours", cli.FormatHours(plan.TotalShootingHours())},
			{"Minutes per person", pace},
		},
	}))

	if corporateFlags.plan {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client := advisor.NewClient(config.GetAdvisorKey(cfg), cfg.Advisor.Model)
		if cfg.Advisor.BaseURL != "" {
			client = client.WithBaseURL(cfg.Advisor.BaseURL)
		}
		strategy := client.CorporateStrategy(cmd.Context(), advisor.CorporatePrompt{
			Headcount:   plan.Headcount,
			Days:        plan.Days,
			HoursPerDay: plan.HoursPerDay,
		})
		fmt.Println("  " + strategy)
		fmt.Println()
	}
	return nil
}
