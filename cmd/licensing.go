package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var licensingFlags struct {
	baseFee     float64
	interactive bool
}

var licensingCmd = &cobra.Command{
	Use:   "licensing",
	Short: "Price usage rights for existing work",
	Long: `Multiply a base creative fee by media, duration, territory and
exclusivity factors to get a defensible licensing price.`,
	RunE: runLicensing,
}

func init() {
	licensingCmd.Flags().Float64Var(&licensingFlags.baseFee, "base-fee", 500, "Base creative fee")
	licensingCmd.Flags().BoolVarP(&licensingFlags.interactive, "interactive", "i", true, "Pick factors interactively")
	rootCmd.AddCommand(licensingCmd)
}

func factorSelect(title string, menu []pricing.LicenseFactor, dst *float64) *huh.Select[float64] {
	opts := make([]huh.Option[float64], 0, len(menu))
	for _, f := range menu {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (x%g)", f.Label, f.Value), f.Value))
	}
	return huh.NewSelect[float64]().Title(title).Options(opts...).Value(dst)
}

func runLicensing(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, _, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	cur := currencyOf(profile, cfg)

	terms := pricing.DefaultLicenseTerms(licensingFlags.baseFee)

	if licensingFlags.interactive {
		base := fmt.Sprintf("%g", terms.BaseFee)
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Base creative fee").
				Description("What you'd charge to produce the work").
				Value(&base),
			factorSelect("Media / usage", pricing.MediaFactors, &terms.Media),
			factorSelect("Duration", pricing.DurationFactors, &terms.Duration),
			factorSelect("Territory", pricing.TerritoryFactors, &terms.Territory),
			factorSelect("Exclusivity", pricing.ExclusivityFactors, &terms.Exclusivity),
		))
		if err := form.Run(); err != nil {
			return err
		}
		terms.BaseFee = parseNum(base)
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Licensing Fee",
		Headers: []string{"Component", "Value"},
		Rows: [][]string{
			{"Base creative fee", cli.FormatMoneyPrecise(cur, terms.BaseFee)},
			{"Media factor", fmt.Sprintf("x%g", terms.Media)},
			{"Duration factor", fmt.Sprintf("x%g", terms.Duration)},
			{"Territory factor", fmt.Sprintf("x%g", terms.Territory)},
			{"Exclusivity factor", fmt.Sprintf("x%g", terms.Exclusivity)},
			{"---"},
			{"Usage fee", cli.FormatMoneyPrecise(cur, terms.UsageFee())},
			{"Total license price", cli.FormatMoneyPrecise(cur, terms.Total())},
		},
	}))
	return nil
}
