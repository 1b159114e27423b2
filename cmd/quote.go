package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/export"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var quoteFlags struct {
	scenarioType string
	title        string
	interactive  bool
	save         bool
	copyText     bool
	expenses     []string

	shootHours    float64
	editRatio     float64
	images        int
	retouchMins   float64
	travelHours   float64
	adminHours    float64
	people        int
	minsPerPerson float64
	monthlyHours  float64
	baseFee       float64
	multiplier    float64
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Build a three-tier quote for a scenario",
	Long: `Build Essential/Standard/Premium pricing from your derived rates.

Scenario types: individual, team, retainer, licensing.`,
	RunE: runQuote,
}

func init() {
	f := quoteCmd.Flags()
	f.StringVarP(&quoteFlags.scenarioType, "type", "t", "individual", "Scenario type")
	f.StringVar(&quoteFlags.title, "title", "", "Scenario title (e.g. client name)")
	f.BoolVarP(&quoteFlags.interactive, "interactive", "i", false, "Prompt for inputs")
	f.BoolVar(&quoteFlags.save, "save", false, "Save the quote to history")
	f.BoolVar(&quoteFlags.copyText, "copy", false, "Copy the client-facing quote text to the clipboard")
	f.StringArrayVar(&quoteFlags.expenses, "expense", nil, "Project expense as name=amount (repeatable)")

	f.Float64Var(&quoteFlags.shootHours, "shoot-hours", 2, "Shoot hours (individual)")
	f.Float64Var(&quoteFlags.editRatio, "edit-ratio", 0.5, "Edit hours per shoot hour")
	f.IntVar(&quoteFlags.images, "images", 5, "Delivered images (individual)")
	f.Float64Var(&quoteFlags.retouchMins, "retouch-mins", 15, "Retouch minutes per image or person")
	f.Float64Var(&quoteFlags.travelHours, "travel", 1, "Travel hours")
	f.Float64Var(&quoteFlags.adminHours, "admin", 2, "Admin hours (emails, invoicing, prep)")
	f.IntVar(&quoteFlags.people, "people", 1, "Headcount (team)")
	f.Float64Var(&quoteFlags.minsPerPerson, "mins-per-person", 15, "Shooting minutes per person (team)")
	f.Float64Var(&quoteFlags.monthlyHours, "monthly-hours", 10, "Committed hours per month (retainer)")
	f.Float64Var(&quoteFlags.baseFee, "base-fee", 500, "Base license fee (licensing)")
	f.Float64Var(&quoteFlags.multiplier, "multiplier", 1.0, "Licensing multiplier on Standard/Premium")

	rootCmd.AddCommand(quoteCmd)
}

func scenarioTypeFromFlag(s string) (model.ScenarioType, error) {
	switch strings.ToLower(s) {
	case "individual", "ind":
		return model.ScenarioIndividual, nil
	case "team", "group", "headshots":
		return model.ScenarioTeam, nil
	case "retainer", "monthly":
		return model.ScenarioRetainer, nil
	case "licensing", "license":
		return model.ScenarioLicensing, nil
	default:
		return "", fmt.Errorf("unknown scenario type %q (individual, team, retainer, licensing)", s)
	}
}

// scopeFromFlags builds the typed scope from whatever flags apply.
func scopeFromFlags(t model.ScenarioType) model.Scope {
	switch t {
	case model.ScenarioTeam:
		return model.TeamScope{
			PeopleCount:             quoteFlags.people,
			MinutesPerPerson:        quoteFlags.minsPerPerson,
			EditTimeRatio:           quoteFlags.editRatio,
			RetouchMinutesPerPerson: quoteFlags.retouchMins,
			TravelHours:             quoteFlags.travelHours,
			AdminHours:              quoteFlags.adminHours,
			LicensingMultiplier:     quoteFlags.multiplier,
		}
	case model.ScenarioRetainer:
		return model.RetainerScope{
			MonthlyHours:        quoteFlags.monthlyHours,
			AdminHours:          quoteFlags.adminHours,
			LicensingMultiplier: quoteFlags.multiplier,
		}
	case model.ScenarioLicensing:
		return model.LicensingScope{
			BaseLicenseFee:      quoteFlags.baseFee,
			AdminHours:          quoteFlags.adminHours,
			LicensingMultiplier: quoteFlags.multiplier,
		}
	default:
		return model.IndividualScope{
			ShootHours:             quoteFlags.shootHours,
			EditTimeRatio:          quoteFlags.editRatio,
			Images:                 quoteFlags.images,
			RetouchMinutesPerImage: quoteFlags.retouchMins,
			TravelHours:            quoteFlags.travelHours,
			AdminHours:             quoteFlags.adminHours,
			LicensingMultiplier:    quoteFlags.multiplier,
		}
	}
}

// parseExpenseFlags turns repeated name=amount flags into project expenses.
func parseExpenseFlags(raw []string) ([]model.ProjectExpense, error) {
	expenses := make([]model.ProjectExpense, 0, len(raw))
	for _, r := range raw {
		name, amount, ok := strings.Cut(r, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("bad --expense %q, want name=amount", r)
		}
		expenses = append(expenses, model.ProjectExpense{
			ID:     uuid.NewString(),
			Name:   strings.TrimSpace(name),
			Amount: parseNum(amount),
		})
	}
	return expenses, nil
}

func runQuote(_ *cobra.Command, _ []string) error {
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
		fmt.Println(cli.Muted("  No profile saved — pricing against stock defaults. Run `compass setup`."))
	}
	cur := currencyOf(profile, cfg)

	rb := pricing.DeriveRates(profile)

	var (
		scope    model.Scope
		expenses []model.ProjectExpense
		title    = quoteFlags.title
	)

	if quoteFlags.interactive {
		scope, expenses, title, err = quoteForm()
		if err != nil {
			return err
		}
	} else {
		t, err := scenarioTypeFromFlag(quoteFlags.scenarioType)
		if err != nil {
			return err
		}
		scope = scopeFromFlags(t)
		expenses, err = parseExpenseFlags(quoteFlags.expenses)
		if err != nil {
			return err
		}
	}

	q := pricing.PriceScenario(scope, expenses, rb.CODBHourly, rb.TargetHourlyRate)
	tiers := pricing.BuildTiers(q, model.DefaultTierContents())

	if title == "" {
		title = fmt.Sprintf("%s quote", scope.Type())
	}

	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Time & Cost Breakdown",
		Headers: []string{"Component", "Value"},
		Rows: [][]string{
			{"Shoot", cli.FormatHours(q.Hours.Shoot)},
			{"Edit (incl. retouch)", cli.FormatHours(q.Hours.Edit)},
			{"Travel", cli.FormatHours(q.Hours.Travel)},
			{"Admin", cli.FormatHours(q.Hours.Admin)},
			{"Total hours", cli.FormatHours(q.TotalHours)},
			{"---"},
			{"Labor at target rate", cli.FormatMoneyPrecise(cur, q.LaborValue)},
			{"Break-even cost", cli.FormatMoneyPrecise(cur, q.CostBasis)},
			{"Hard costs", cli.FormatMoneyPrecise(cur, q.HardCosts)},
		},
	}))
	fmt.Println(cli.RenderTierCards(tiers, cur))
	fmt.Println()

	sc := model.ScenarioData{
		ID:              uuid.NewString(),
		Date:            time.Now().UTC(),
		Type:            scope.Type(),
		Title:           title,
		Scope:           scope,
		ProjectExpenses: expenses,
		Tiers:           tiers,
		Status:          model.StatusDraft,
	}

	if quoteFlags.save {
		if err := s.AppendScenario(sc); err != nil {
			return err
		}
		fmt.Printf("  Saved as %s. See `compass history`.\n", cli.Money(shortID(sc.ID)))
	}
	if quoteFlags.copyText {
		if err := export.Copy(sc, cur); err != nil {
			fmt.Printf("  %s\n", cli.Warn(err.Error()))
		} else {
			fmt.Println("  Quote text copied to clipboard.")
		}
	}
	return nil
}

// quoteForm collects scenario inputs interactively.
func quoteForm() (model.Scope, []model.ProjectExpense, string, error) {
	var (
		title   string
		typeStr string
	)
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Scenario title").Placeholder("Acme Corp Headshots").Value(&title),
		huh.NewSelect[string]().
			Title("Scenario type").
			Options(
				huh.NewOption(string(model.ScenarioIndividual), "individual"),
				huh.NewOption(string(model.ScenarioTeam), "team"),
				huh.NewOption(string(model.ScenarioRetainer), "retainer"),
				huh.NewOption(string(model.ScenarioLicensing), "licensing"),
			).
			Value(&typeStr),
	)).Run(); err != nil {
		return nil, nil, "", err
	}

	t, err := scenarioTypeFromFlag(typeStr)
	if err != nil {
		return nil, nil, "", err
	}

	vals := map[string]*string{}
	field := func(key, label, def string) *huh.Input {
		v := def
		vals[key] = &v
		return huh.NewInput().Title(label).Value(vals[key])
	}

	var group *huh.Group
	switch t {
	case model.ScenarioTeam:
		group = huh.NewGroup(
			field("people", "Headcount", "1"),
			field("mins", "Minutes per person", "15"),
			field("ratio", "Edit ratio (edit hours per shoot hour)", "0.5"),
			field("retouch", "Retouch minutes per person", "15"),
			field("travel", "Travel hours", "1"),
			field("admin", "Admin hours", "2"),
			field("mult", "Licensing multiplier", "1.0"),
		)
	case model.ScenarioRetainer:
		group = huh.NewGroup(
			field("monthly", "Committed hours per month", "10"),
			field("admin", "Admin hours", "2"),
			field("mult", "Licensing multiplier", "1.0"),
		)
	case model.ScenarioLicensing:
		group = huh.NewGroup(
			field("base", "Base license fee", "500"),
			field("admin", "Admin hours", "2"),
			field("mult", "Licensing multiplier", "1.0"),
		)
	default:
		group = huh.NewGroup(
			field("shoot", "Shoot hours", "2"),
			field("ratio", "Edit ratio (edit hours per shoot hour)", "0.5"),
			field("images", "Delivered images", "5"),
			field("retouch", "Retouch minutes per image", "15"),
			field("travel", "Travel hours", "1"),
			field("admin", "Admin hours", "2"),
			field("mult", "Licensing multiplier", "1.0"),
		)
	}
	if err := huh.NewForm(group).Run(); err != nil {
		return nil, nil, "", err
	}

	num := func(key string) float64 {
		if v, ok := vals[key]; ok {
			return parseNum(*v)
		}
		return 0
	}

	var scope model.Scope
	switch t {
	case model.ScenarioTeam:
		scope = model.TeamScope{
			PeopleCount:             int(num("people")),
			MinutesPerPerson:        num("mins"),
			EditTimeRatio:           num("ratio"),
			RetouchMinutesPerPerson: num("retouch"),
			TravelHours:             num("travel"),
			AdminHours:              num("admin"),
			LicensingMultiplier:     num("mult"),
		}
	case model.ScenarioRetainer:
		scope = model.RetainerScope{
			MonthlyHours:        num("monthly"),
			AdminHours:          num("admin"),
			LicensingMultiplier: num("mult"),
		}
	case model.ScenarioLicensing:
		scope = model.LicensingScope{
			BaseLicenseFee:      num("base"),
			AdminHours:          num("admin"),
			LicensingMultiplier: num("mult"),
		}
	default:
		scope = model.IndividualScope{
			ShootHours:             num("shoot"),
			EditTimeRatio:          num("ratio"),
			Images:                 int(num("images")),
			RetouchMinutesPerImage: num("retouch"),
			TravelHours:            num("travel"),
			AdminHours:             num("admin"),
			LicensingMultiplier:    num("mult"),
		}
	}

	// Project expense loop
	var expenses []model.ProjectExpense
	for {
		var add bool
		if err := huh.NewConfirm().Title("Add a project expense?").Value(&add).Run(); err != nil {
			return nil, nil, "", err
		}
		if !add {
			break
		}
		var name, amount string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Expense name").Placeholder("Assistant / Grip").Value(&name),
			huh.NewInput().Title("Amount").Value(&amount),
		)).Run(); err != nil {
			return nil, nil, "", err
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		expenses = append(expenses, model.ProjectExpense{
			ID:     uuid.NewString(),
			Name:   strings.TrimSpace(name),
			Amount: parseNum(amount),
		})
	}

	return scope, expenses, title, nil
}
