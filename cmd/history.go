package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/export"
	"github.com/JackSaady/photo-pricing-compass/internal/model"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved quotes",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scenario-id>",
	Short: "Show one saved quote in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCopyCmd = &cobra.Command{
	Use:   "copy <scenario-id>",
	Short: "Copy the client-facing quote text to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryCopy,
}

var markFlags struct {
	won   bool
	lost  bool
	final float64
}

var historyMarkCmd = &cobra.Command{
	Use:   "mark <scenario-id>",
	Short: "Record whether a quote was won or lost",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryMark,
}

func init() {
	historyMarkCmd.Flags().BoolVar(&markFlags.won, "won", false, "The client accepted")
	historyMarkCmd.Flags().BoolVar(&markFlags.lost, "lost", false, "The client declined")
	historyMarkCmd.Flags().Float64Var(&markFlags.final, "final", 0, "Final agreed price, if different")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCopyCmd)
	historyCmd.AddCommand(historyMarkCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	scenarios, err := s.LoadScenarios()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("  No saved scenarios yet.")
		fmt.Println("  Create a new quote with `compass quote --save` to see it here.")
		return nil
	}

	profile, _, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	cur := currencyOf(profile, cfg)

	rows := make([][]string, 0, len(scenarios))
	// Newest first
	for i := len(scenarios) - 1; i >= 0; i-- {
		sc := scenarios[i]
		status := string(sc.Status)
		switch sc.Status {
		case model.StatusWon:
			status = cli.Money(status)
		case model.StatusLost:
			status = cli.Warn(status)
		}
		rows = append(rows, []string{
			shortID(sc.ID),
			sc.Date.Format("Jan 2, 2006"),
			sc.Title,
			string(sc.Type),
			cli.FormatMoney(cur, sc.Tiers[1].Price),
			status,
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Saved Quotes",
		Headers: []string{"ID", "Date", "Title", "Type", "Standard", "Status"},
		Rows:    rows,
	}))
	return nil
}

func runHistoryShow(_ *cobra.Command, args []string) error {
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
	fmt.Printf("  %s · %s · %s\n\n", sc.Date.Format("Jan 2, 2006"), sc.Type, sc.Status)
	fmt.Println(cli.RenderTierCards(sc.Tiers, cur))
	fmt.Println()

	if len(sc.ProjectExpenses) > 0 {
		rows := make([][]string, 0, len(sc.ProjectExpenses))
		for _, e := range sc.ProjectExpenses {
			rows = append(rows, []string{e.Name, cli.FormatMoneyPrecise(cur, e.Amount)})
		}
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "Project Expenses",
			Headers: []string{"Name", "Amount"},
			Rows:    rows,
		}))
	}
	if sc.FinalPrice != nil {
		fmt.Printf("  Closed at %s.\n", cli.Money(cli.FormatMoney(cur, *sc.FinalPrice)))
	}
	return nil
}

func runHistoryCopy(_ *cobra.Command, args []string) error {
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

	if err := export.Copy(sc, currencyOf(profile, cfg)); err != nil {
		return err
	}
	fmt.Println("  Quote text copied to clipboard.")
	return nil
}

func runHistoryMark(_ *cobra.Command, args []string) error {
	if markFlags.won == markFlags.lost {
		return fmt.Errorf("pass exactly one of --won or --lost")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	sc, err := findScenario(s, args[0])
	if err != nil {
		return err
	}

	status := model.StatusWon
	if markFlags.lost {
		status = model.StatusLost
	}
	var final *float64
	if markFlags.final > 0 {
		final = &markFlags.final
	}

	if err := s.SetStatus(sc.ID, status, final); err != nil {
		return err
	}
	fmt.Printf("  Marked %q as %s.\n", sc.Title, status)
	return nil
}
