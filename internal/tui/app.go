// Package tui implements the interactive dashboard: a rates tab with a
// reverse volume calculator and a history tab for saved quotes.
package tui

import (
	"fmt"
	"strings"

	"github.com/JackSaady/photo-pricing-compass/internal/cli"
	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/export"
	"github.com/JackSaady/photo-pricing-compass/internal/model"
	"github.com/JackSaady/photo-pricing-compass/internal/pricing"
	"github.com/JackSaady/photo-pricing-compass/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabRates = iota
	tabHistory
	tabCount
)

var tabNames = [tabCount]string{"Rates", "History"}

// App is the top-level bubbletea model.
type App struct {
	store *store.Store
	cfg   config.Config

	profile   model.UserProfile
	rates     pricing.RateBreakdown
	scenarios []model.ScenarioData

	tab    int
	cursor int // history selection

	saleInput textinput.Model

	width  int
	height int
	status string
}

// NewApp loads state from the store and builds the dashboard model.
func NewApp(s *store.Store, cfg config.Config) (App, error) {
	profile, err := s.LoadProfile()
	if err != nil {
		return App{}, err
	}
	p := model.DefaultProfile()
	if profile != nil {
		p = *profile
	}

	scenarios, err := s.LoadScenarios()
	if err != nil {
		return App{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "average sale, e.g. 1500"
	ti.CharLimit = 12
	ti.Width = 24

	return App{
		store:     s,
		cfg:       cfg,
		profile:   p,
		rates:     pricing.DeriveRates(p),
		scenarios: scenarios,
		saleInput: ti,
	}, nil
}

func (a App) currency() string {
	if a.profile.Currency != "" {
		return a.profile.Currency
	}
	if a.cfg.General.Currency != "" {
		return a.cfg.General.Currency
	}
	return "$"
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.tab == tabRates {
		var cmd tea.Cmd
		a.saleInput, cmd = a.saleInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := a.tab == tabRates && a.saleInput.Focused()

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "q":
		if !typing {
			return a, tea.Quit
		}
	case "tab", "right":
		a.tab = (a.tab + 1) % tabCount
		a.status = ""
		return a, nil
	case "shift+tab", "left":
		a.tab = (a.tab + tabCount - 1) % tabCount
		a.status = ""
		return a, nil
	}

	switch a.tab {
	case tabRates:
		switch msg.String() {
		case "enter":
			if typing {
				a.saleInput.Blur()
				return a, nil
			}
			return a, a.saleInput.Focus()
		case "esc":
			a.saleInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.saleInput, cmd = a.saleInput.Update(msg)
		return a, cmd

	case tabHistory:
		switch msg.String() {
		case "j", "down":
			if a.cursor < len(a.scenarios)-1 {
				a.cursor++
			}
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
		case "c", "enter":
			if len(a.scenarios) > 0 {
				sc := a.scenarios[len(a.scenarios)-1-a.cursor]
				if err := export.Copy(sc, a.currency()); err != nil {
					a.status = "clipboard unavailable"
				} else {
					a.status = fmt.Sprintf("copied %q", sc.Title)
				}
			}
		}
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.viewTabs())
	b.WriteString("\n\n")

	switch a.tab {
	case tabRates:
		b.WriteString(a.viewRates())
	case tabHistory:
		b.WriteString(a.viewHistory())
	}

	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(cli.Money("  " + a.status))
		b.WriteString("\n")
	}
	b.WriteString(cli.Muted("  tab switch · j/k move · c copy · q quit"))
	return b.String()
}

func (a App) viewTabs() string {
	active := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)

	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == a.tab {
			parts = append(parts, active.Render("["+name+"]"))
		} else {
			parts = append(parts, inactive.Render(" "+name+" "))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (a App) viewRates() string {
	cur := a.currency()
	rb := a.rates

	var b strings.Builder
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Your Rates",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Target hourly rate", cli.FormatMoneyPrecise(cur, rb.TargetHourlyRate)},
			{"Break-even (CODB) hourly", cli.FormatMoneyPrecise(cur, rb.CODBHourly)},
			{"Gross revenue needed", cli.FormatMoney(cur, rb.GrossRevenueNeeded)},
			{"Billable hours / year", cli.FormatHours(rb.AnnualBillableHours)},
		},
	}))
	b.WriteString("\n")

	if a.profile.TargetShootsPerYear > 0 {
		avg := pricing.AverageSaleNeeded(rb, a.profile.TargetShootsPerYear)
		b.WriteString(fmt.Sprintf("  At %d shoots/year: average sale %s\n\n",
			a.profile.TargetShootsPerYear, cli.Money(cli.FormatMoney(cur, avg))))
	}

	b.WriteString("  Reverse calculator (enter to edit): ")
	b.WriteString(a.saleInput.View())
	b.WriteString("\n")
	if sale := parseSale(a.saleInput.Value()); sale > 0 {
		shoots := pricing.ShootsNeededAt(rb, sale)
		b.WriteString(fmt.Sprintf("  At %s per shoot you need %s shoots to hit your goal.\n",
			cli.FormatMoney(cur, sale), cli.Money(cli.FormatNumber(int64(shoots)))))
	}
	return b.String()
}

func (a App) viewHistory() string {
	if len(a.scenarios) == 0 {
		return cli.Muted("  No saved scenarios yet.\n  Create a quote with `compass quote --save` to see it here.")
	}

	cur := a.currency()
	var b strings.Builder
	for i := range a.scenarios {
		sc := a.scenarios[len(a.scenarios)-1-i] // newest first
		line := fmt.Sprintf("%-12s  %-28s  %-22s  %10s  %s",
			sc.Date.Format("Jan 2, 2006"),
			truncate(sc.Title, 28),
			sc.Type,
			cli.FormatMoney(cur, sc.Tiers[1].Price),
			sc.Status,
		)
		if i == a.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(cli.ColorAccent).Render("  > " + line))
		} else {
			b.WriteString("    " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func parseSale(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	var f float64
	if _, err := fmt.Sscanf(s, "%f", &f); err != nil {
		return 0
	}
	return f
}
