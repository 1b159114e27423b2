package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the business profile and derived rates",
	RunE:  runProfile,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the business profile",
	RunE:  runSetup, // same wizard, pre-filled
}

func init() {
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, saved, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Println(cli.Muted("  No profile saved yet — showing stock defaults. Run `compass setup`."))
	}

	cur := currencyOf(profile, cfg)
	rb := pricing.DeriveRates(profile)

	name := profile.Name
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Business Profile",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", name},
			{"Annual income goal", cli.FormatMoney(cur, profile.AnnualIncomeGoal)},
			{"Tax rate", cli.FormatPercent(profile.TaxRate)},
			{"Work weeks / year", fmt.Sprintf("%g", profile.WorkWeeksPerYear)},
			{"Days / week", fmt.Sprintf("%g", profile.DaysPerWeek)},
			{"Hours / day", fmt.Sprintf("%g", profile.HoursPerDay)},
			{"Percent billable", cli.FormatPercent(profile.PercentBillable)},
			{"Target shoots / year", fmt.Sprintf("%d", profile.TargetShootsPerYear)},
			{"---"},
			{"Monthly expenses", cli.FormatMoney(cur, profile.MonthlyExpenses())},
			{"Annual fixed expenses", cli.FormatMoney(cur, rb.AnnualFixedExpenses)},
			{"---"},
			{"Billable hours / year", cli.FormatHours(rb.AnnualBillableHours)},
			{"Gross revenue needed", cli.FormatMoney(cur, rb.GrossRevenueNeeded)},
			{"Break-even (CODB) hourly", cli.FormatMoneyPrecise(cur, rb.CODBHourly)},
			{"Target hourly rate", cli.FormatMoneyPrecise(cur, rb.TargetHourlyRate)},
		},
	}))
	return nil
}
