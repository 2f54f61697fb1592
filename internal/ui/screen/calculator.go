package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/component"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/router"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

// sliderRow binds a slider to the model field it edits. Rows without a field are read-only.
type sliderRow struct {
	slider   *component.Slider
	field    compensation.Field
	editable bool
}

// Row indexes, top to bottom
const (
	rowSalary = iota
	rowEquity
	rowBuyout
	rowProfit
)

// CalculatorScreen shows the four offer sliders and the yearly compensation panel
type CalculatorScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	session *ui.Session
	helpBar *component.HelpBar

	rows  []sliderRow
	focus int
}

// NewCalculatorScreen creates the calculator over session's model
func NewCalculatorScreen(session *ui.Session) *CalculatorScreen {
	keyMap := ui.DefaultKeyMap()
	terms := session.Model.Terms()

	s := &CalculatorScreen{
		keyMap:  keyMap,
		session: session,
		helpBar: component.NewHelpBar(keyMap.ContextualHelp(ui.RouteCalculator)...),
		rows: []sliderRow{
			rowSalary: {slider: component.NewSlider("Monthly salary", terms.Salary), field: compensation.FieldSalary, editable: true},
			rowEquity: {slider: component.NewSlider("Profit share", terms.Equity), field: compensation.FieldEquity, editable: true},
			rowBuyout: {slider: component.NewSlider("Exit buyout", terms.Buyout).SetDisabled(true)},
			rowProfit: {slider: component.NewSlider("Company profit", terms.Profit), field: compensation.FieldProfit, editable: true},
		},
		focus: rowSalary,
	}
	s.refresh()
	return s
}

// Route identifies the screen for the router
func (s *CalculatorScreen) Route() ui.Route {
	return ui.RouteCalculator
}

// Init initializes the screen
func (s *CalculatorScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

// Update handles key presses
func (s *CalculatorScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keyMap.Quit):
		return s, tea.Quit
	case key.Matches(keyMsg, s.keyMap.Up), key.Matches(keyMsg, s.keyMap.ShiftTab):
		s.moveFocus(-1)
	case key.Matches(keyMsg, s.keyMap.Down), key.Matches(keyMsg, s.keyMap.Tab):
		s.moveFocus(1)
	case key.Matches(keyMsg, s.keyMap.Left):
		s.adjust(-1)
	case key.Matches(keyMsg, s.keyMap.Right):
		s.adjust(1)
	case key.Matches(keyMsg, s.keyMap.Reset):
		s.session.Reset()
		s.refresh()
	case key.Matches(keyMsg, s.keyMap.Scenarios):
		return s, ui.Navigate(ui.RouteScenarios)
	case key.Matches(keyMsg, s.keyMap.Logs):
		return s, ui.Navigate(ui.RouteLogs)
	}
	return s, nil
}

// Focused returns the index of the focused row
func (s *CalculatorScreen) Focused() int {
	return s.focus
}

// moveFocus steps over read-only rows and wraps around
func (s *CalculatorScreen) moveFocus(dir int) {
	n := len(s.rows)
	next := s.focus
	for i := 0; i < n; i++ {
		next = (next + dir + n) % n
		if s.rows[next].editable {
			s.focus = next
			break
		}
	}
	s.refresh()
}

// adjust moves the focused row one step through the model
func (s *CalculatorScreen) adjust(dir int) {
	row := s.rows[s.focus]
	if !row.editable {
		return
	}
	s.session.Nudge(row.field, dir)
	s.refresh()
}

// refresh pushes the current snapshot into the sliders
func (s *CalculatorScreen) refresh() {
	snap := s.session.Model.Read()
	f := s.session.Formatter

	s.rows[rowSalary].slider.SetValue(snap.Salary, f.Money(snap.Salary))
	s.rows[rowEquity].slider.SetValue(snap.Equity, f.WholePercent(snap.Equity))
	s.rows[rowBuyout].slider.SetValue(snap.BuyoutPercent, f.Percent(snap.BuyoutPercent))
	s.rows[rowProfit].slider.SetValue(snap.Profit, f.Money(snap.Profit))

	for i := range s.rows {
		s.rows[i].slider.SetFocused(i == s.focus)
	}
}

// View renders the screen
func (s *CalculatorScreen) View() string {
	snap := s.session.Model.Read()

	var sliders []string
	for _, row := range s.rows {
		sliders = append(sliders, row.slider.View())
	}

	left := style.CardStyle.Render(strings.Join(sliders, "\n\n"))
	right := lipgloss.JoinVertical(lipgloss.Left,
		style.CardStyle.Render(s.renderCompensation(snap)),
		style.CardStyle.Render(s.renderBuyout(snap)),
	)

	var body string
	if s.width > 0 && s.width < lipgloss.Width(left)+lipgloss.Width(right) {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render("Offer Simulator"),
		body,
		s.helpBar.View(),
	)
}

func (s *CalculatorScreen) renderCompensation(snap compensation.Snapshot) string {
	f := s.session.Formatter

	lines := []string{
		style.LabelStyle.Render("Yearly compensation"),
		"",
		line("Salary × 12", f.Money(snap.YearlySalary)),
		line(fmt.Sprintf("Profit share (%s)", f.WholePercent(snap.Equity)), f.Money(snap.ProfitShare)),
		"",
		style.TotalStyle.Render(line("Total", f.Money(snap.TotalYearlyCompensation))),
	}
	return strings.Join(lines, "\n")
}

func (s *CalculatorScreen) renderBuyout(snap compensation.Snapshot) string {
	f := s.session.Formatter
	terms := s.session.Model.Terms()
	v := terms.Valuation

	lines := []string{
		style.LabelStyle.Render("Exit buyout"),
		"",
		line("Buyout amount", f.Money(snap.BuyoutAmount)),
		style.MutedStyle.Render(fmt.Sprintf("%s of %s valuation", f.Percent(snap.BuyoutPercent), f.Money(snap.Valuation))),
		style.MutedStyle.Render(fmt.Sprintf("Valuation = %s × 6 + %s × 6", f.Money(v.BestSixMonthAverage), f.Money(v.LastSixMonthAverage))),
		style.MutedStyle.Render("(best and last six-month profit averages)"),
		"",
		style.NoteStyle.Render(fmt.Sprintf("No buyout when leaving within the first %d months.", terms.Vesting.CliffMonths)),
		style.NoteStyle.Render(fmt.Sprintf("Buyout is paid within %d days of leaving.", terms.Vesting.PayoutDays)),
	}
	return strings.Join(lines, "\n")
}

// line pads label and value into a fixed-width row
func line(label, value string) string {
	const width = 34
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

// SetSize sets the screen dimensions
func (s *CalculatorScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)

	sliderWidth := width/2 - 10
	if sliderWidth < 20 {
		sliderWidth = 20
	}
	if sliderWidth > 48 {
		sliderWidth = 48
	}
	for _, row := range s.rows {
		row.slider.SetWidth(sliderWidth)
	}
}
