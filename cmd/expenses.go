package cmd

import (
	"fmt"
	"strings"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List recurring monthly expenses",
	RunE:  runExpensesList,
}

var expensesAddCmd = &cobra.Command{
	Use:   "add <name> <monthly-amount>",
	Short: "Add a monthly expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpensesAdd,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <id-or-name>",
	Short: "Remove a monthly expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

func init() {
	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesRmCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(_ *cobra.Command, _ []string) error {
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

	if len(profile.Expenses) == 0 {
		fmt.Println("  No monthly expenses recorded.")
		return nil
	}

	rows := make([][]string, 0, len(profile.Expenses)+2)
	for _, e := range profile.Expenses {
		rows = append(rows, []string{shortID(e.ID), e.Name, cli.FormatMoneyPrecise(cur, e.Amount)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total / month", cli.FormatMoneyPrecise(cur, profile.MonthlyExpenses())})

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Monthly Expenses",
		Headers: []string{"ID", "Name", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runExpensesAdd(_ *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, _, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}

	profile.Expenses = append(profile.Expenses, model.Expense{
		ID:     uuid.NewString(),
		Name:   args[0],
		Amount: parseNum(args[1]),
	})
	pricing.ApplyRates(&profile)
	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("  Added %q. Monthly total is now %s.\n",
		args[0], cli.FormatMoneyPrecise(currencyOf(profile, cfg), profile.MonthlyExpenses()))
	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	profile, saved, err := loadProfileOrDefault(s)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("no profile saved yet; run `compass setup` first")
	}

	needle := strings.ToLower(args[0])
	kept := profile.Expenses[:0]
	removed := 0
	for _, e := range profile.Expenses {
		if shortID(e.ID) == args[0] || e.ID == args[0] || strings.ToLower(e.Name) == needle {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return fmt.Errorf("no expense matches %q", args[0])
	}

	profile.Expenses = kept
	pricing.ApplyRates(&profile)
	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("  Removed %d expense(s).\n", removed)
	return nil
}

// shortID trims a uuid to its first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
