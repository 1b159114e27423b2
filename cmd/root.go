package cmd

import (
	"fmt"
	"os"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"
	"github.com/JackSaady/photo-pricing-compass/internal/store"

	"github.com/spf13/cobra"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Pricing calculator for photographers",
	Long:  "Derive your cost of doing business, build three-tier quotes, and track what you actually close.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (default: XDG data dir)")
}

// dbPath resolves the database location: flag, then config, then default.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return store.DefaultPath()
}

// openStore is the shared persistence path used by all commands.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// loadProfileOrDefault returns the saved profile, or stock defaults with a
// hint to run setup when nothing is saved yet.
func loadProfileOrDefault(s *store.Store) (model.UserProfile, bool, error) {
	p, err := s.LoadProfile()
	if err != nil {
		return model.UserProfile{}, false, err
	}
	if p == nil {
		return model.DefaultProfile(), false, nil
	}
	return *p, true, nil
}

// currencyOf prefers the profile's symbol, falling back to config.
func currencyOf(p model.UserProfile, cfg config.Config) string {
	if p.Currency != "" {
		return p.Currency
	}
	if cfg.General.Currency != "" {
		return cfg.General.Currency
	}
	return "$"
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, saved, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}

	cur := currencyOf(profile, cfg)
	rb := pricing.DeriveRates(profile)

	fmt.Println(cli.RenderTitle("Pricing Compass"))
	if !saved {
		fmt.Println(cli.Muted("  No profile saved yet — showing stock numbers. Run `compass setup`."))
	}
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Your Rates",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Target hourly rate", cli.FormatMoneyPrecise(cur, rb.TargetHourlyRate)},
			{"Break-even (CODB) hourly", cli.FormatMoneyPrecise(cur, rb.CODBHourly)},
			{"---"},
			{"Annual income goal", cli.FormatMoney(cur, profile.AnnualIncomeGoal)},
			{"Gross revenue needed", cli.FormatMoney(cur, rb.GrossRevenueNeeded)},
			{"Annual fixed expenses", cli.FormatMoney(cur, rb.AnnualFixedExpenses)},
			{"Billable hours / year", cli.FormatHours(rb.AnnualBillableHours)},
		},
	}))

	if profile.TargetShootsPerYear > 0 {
		avg := pricing.AverageSaleNeeded(rb, profile.TargetShootsPerYear)
		fmt.Printf("  At %d shoots/year you need an average sale of %s.\n\n",
			profile.TargetShootsPerYear, cli.Money(cli.FormatMoney(cur, avg)))
	}

	fmt.Println(cli.Muted("  compass quote     build a three-tier quote"))
	fmt.Println(cli.Muted("  compass history   review saved quotes"))
	fmt.Println(cli.Muted("  compass tui       interactive dashboard"))
	return nil
}
