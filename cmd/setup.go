package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// parseNum coerces free-form numeric input; anything unparseable is 0 so a
// stray character never aborts the wizard.
func parseNum(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

func numField(title, desc string, dst *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(desc).
		Value(dst)
}

func runSetup(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, saved, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	if saved {
		fmt.Println("  Existing profile found; current values are pre-filled.")
	}

	vals := struct {
		name, currency, income, tax, weeks, days, hours, billable, shoots string
	}{
		name:     profile.Name,
		currency: currencyOf(profile, cfg),
		income:   fmt.Sprintf("%g", profile.AnnualIncomeGoal),
		tax:      fmt.Sprintf("%g", profile.TaxRate),
		weeks:    fmt.Sprintf("%g", profile.WorkWeeksPerYear),
		days:     fmt.Sprintf("%g", profile.DaysPerWeek),
		hours:    fmt.Sprintf("%g", profile.HoursPerDay),
		billable: fmt.Sprintf("%g", profile.PercentBillable),
		shoots:   strconv.Itoa(profile.TargetShootsPerYear),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name or studio").Value(&vals.name),
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("$ (USD)", "$"),
					huh.NewOption("€ (EUR)", "€"),
					huh.NewOption("£ (GBP)", "£"),
				).
				Value(&vals.currency),
		),
		huh.NewGroup(
			numField("Annual income goal", "Take-home, before tax is added on top", &vals.income),
			numField("Tax rate (%)", "Combined income + self-employment", &vals.tax),
			numField("Target shoots per year", "Used for the volume strategy", &vals.shoots),
		),
		huh.NewGroup(
			numField("Work weeks per year", "Subtract vacation and slow season", &vals.weeks),
			numField("Days per week", "", &vals.days),
			numField("Hours per day", "", &vals.hours),
			numField("Percent billable (%)", "Most solo shooters bill 30-40% of their time", &vals.billable),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	profile.Name = strings.TrimSpace(vals.name)
	profile.Currency = vals.currency
	profile.AnnualIncomeGoal = parseNum(vals.income)
	profile.TaxRate = parseNum(vals.tax)
	profile.WorkWeeksPerYear = parseNum(vals.weeks)
	profile.DaysPerWeek = parseNum(vals.days)
	profile.HoursPerDay = parseNum(vals.hours)
	profile.PercentBillable = parseNum(vals.billable)
	profile.TargetShootsPerYear = int(parseNum(vals.shoots))

	// Monthly expense loop
	if len(profile.Expenses) > 0 {
		fmt.Printf("  %d monthly expenses on file (edit with `compass expenses`).\n", len(profile.Expenses))
	}
	for {
		var add bool
		if err := huh.NewConfirm().Title("Add a monthly expense?").Value(&add).Run(); err != nil {
			return err
		}
		if !add {
			break
		}
		var name, amount string
		expForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Expense name").Value(&name),
			numField("Monthly amount", "", &amount),
		))
		if err := expForm.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		profile.Expenses = append(profile.Expenses, model.Expense{
			ID:     uuid.NewString(),
			Name:   strings.TrimSpace(name),
			Amount: parseNum(amount),
		})
	}

	rb := pricing.ApplyRates(&profile)
	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	cfg.General.Currency = profile.Currency
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cur := profile.Currency
	fmt.Println()
	fmt.Printf("  Target hourly rate: %s\n", cli.FormatMoneyPrecise(cur, rb.TargetHourlyRate))
	fmt.Printf("  Break-even hourly:  %s\n", cli.FormatMoneyPrecise(cur, rb.CODBHourly))
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `compass setup` anytime to reconfigure.")
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
