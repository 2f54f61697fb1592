package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/component"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/router"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

// ScenariosScreen compares every equity value at the current profit and at both ends of
// the profit range
type ScenariosScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	session *ui.Session
	helpBar *component.HelpBar
	table   table.Model

	status string
	err    error
}

// NewScenariosScreen creates the scenarios screen
func NewScenariosScreen(session *ui.Session) *ScenariosScreen {
	keyMap := ui.DefaultKeyMap()
	palette := style.DefaultPalette()

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.TextMuted).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(palette.Background).
		Background(palette.Primary).
		Bold(true)

	s := &ScenariosScreen{
		keyMap:  keyMap,
		session: session,
		helpBar: component.NewHelpBar(keyMap.ContextualHelp(ui.RouteScenarios)...),
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(8),
			table.WithStyles(styles),
		),
	}
	s.rebuild()
	return s
}

// Route identifies the screen for the router
func (s *ScenariosScreen) Route() ui.Route {
	return ui.RouteScenarios
}

// Init initializes the screen
func (s *ScenariosScreen) Init() tea.Cmd {
	s.rebuild()
	return nil
}

// Update handles key presses and export results
func (s *ScenariosScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ExportedMsg:
		s.err = nil
		s.status = fmt.Sprintf("Exported %d scenarios to %s", msg.Rows, msg.Path)
		return s, nil

	case ui.ErrorMsg:
		s.err = msg.Error
		s.status = msg.Title
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.Left):
			s.shiftProfit(-1)
			return s, nil
		case key.Matches(msg, s.keyMap.Right):
			s.shiftProfit(1)
			return s, nil
		case key.Matches(msg, s.keyMap.Enter):
			s.useSelectedEquity()
			return s, nil
		case key.Matches(msg, s.keyMap.Export):
			s.status = "Exporting..."
			return s, s.exportCmd()
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *ScenariosScreen) shiftProfit(dir int) {
	s.session.Nudge(compensation.FieldProfit, dir)
	s.rebuild()
}

func (s *ScenariosScreen) useSelectedEquity() {
	values := s.session.Model.Terms().Equity.Values()
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(values) {
		return
	}
	s.session.Apply(compensation.EquityChanged(values[cursor]))
	s.rebuild()
}

func (s *ScenariosScreen) exportCmd() tea.Cmd {
	session := s.session
	terms := session.Model.Terms()
	return func() tea.Msg {
		path, rows, err := session.ExportTerms(terms)
		if err != nil {
			return ui.ErrorMsg{Error: err, Title: "Export failed"}
		}
		return ui.ExportedMsg{Path: path, Rows: rows}
	}
}

// rebuild recomputes every row from the terms. The cursor follows the model's equity.
func (s *ScenariosScreen) rebuild() {
	terms := s.session.Model.Terms()
	f := s.session.Formatter
	profit := s.session.Model.Profit()

	s.table.SetRows(nil)
	s.table.SetColumns([]table.Column{
		{Title: "Share", Width: 7},
		{Title: "Salary", Width: 10},
		{Title: "Buyout", Width: 16},
		{Title: "@ " + f.Money(profit), Width: 14},
		{Title: "@ " + f.Money(terms.Profit.Min), Width: 14},
		{Title: "@ " + f.Money(terms.Profit.Last()), Width: 14},
	})

	var rows []table.Row
	cursor := 0
	for i, equity := range terms.Equity.Values() {
		current := terms.Derive(equity, profit)
		low := terms.Derive(equity, terms.Profit.Min)
		high := terms.Derive(equity, terms.Profit.Last())

		rows = append(rows, table.Row{
			f.WholePercent(equity),
			f.Money(current.Salary),
			fmt.Sprintf("%s %s", f.Percent(current.BuyoutPercent), f.Money(current.BuyoutAmount)),
			f.Money(current.TotalYearlyCompensation),
			f.Money(low.TotalYearlyCompensation),
			f.Money(high.TotalYearlyCompensation),
		})
		if equity.Equal(s.session.Model.Equity()) {
			cursor = i
		}
	}
	s.table.SetRows(rows)
	s.table.SetCursor(cursor)
}

// Rows returns the rendered table rows
func (s *ScenariosScreen) Rows() []table.Row {
	return s.table.Rows()
}

// Status returns the last export status line
func (s *ScenariosScreen) Status() string {
	return s.status
}

// View renders the screen
func (s *ScenariosScreen) View() string {
	f := s.session.Formatter
	snap := s.session.Model.Read()

	subtitle := style.SubtitleStyle.Render(fmt.Sprintf(
		"Yearly totals per profit share · current profit %s · current total %s",
		f.Money(snap.Profit), f.Money(snap.TotalYearlyCompensation)))

	var status string
	switch {
	case s.err != nil:
		status = style.ErrorStyle.Render(fmt.Sprintf("%s: %v", s.status, s.err))
	case s.status != "":
		status = style.SuccessStyle.Render(s.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render("Scenarios"),
		subtitle,
		style.CardStyle.Render(s.table.View()),
		status,
		s.helpBar.View(),
	)
}

// SetSize sets the screen dimensions
func (s *ScenariosScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)

	h := height - 12
	if h < 4 {
		h = 4
	}
	s.table.SetHeight(h)
}
