package component

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/style"
)

// LogFilter defines what log levels to show
type LogFilter struct {
	ShowError   bool
	ShowWarning bool
	ShowInfo    bool
	ShowDebug   bool
}

// LogViewer shows the tail of a LogBuffer in a scrollable viewport.
type LogViewer struct {
	buffer   *logger.LogBuffer
	viewport viewport.Model
	filter   LogFilter
	limit    int
	width    int
	height   int

	container lipgloss.Style
	title     lipgloss.Style
	timestamp lipgloss.Style
	fields    lipgloss.Style
	error     lipgloss.Style
	warning   lipgloss.Style
	info      lipgloss.Style
	debug     lipgloss.Style
}

// NewLogViewer creates a viewer over buffer. A nil buffer renders a placeholder.
func NewLogViewer(buffer *logger.LogBuffer) *LogViewer {
	palette := style.DefaultPalette()

	return &LogViewer{
		buffer: buffer,
		limit:  200,
		filter: LogFilter{
			ShowError:   true,
			ShowWarning: true,
			ShowInfo:    true,
			ShowDebug:   true,
		},
		viewport: viewport.New(60, 10),

		container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Info).
			Padding(0, 1),
		title:     lipgloss.NewStyle().Foreground(palette.Info).Bold(true),
		timestamp: lipgloss.NewStyle().Foreground(palette.TextMuted),
		fields:    lipgloss.NewStyle().Foreground(palette.TextSecondary),
		error:     lipgloss.NewStyle().Foreground(palette.Error).Bold(true),
		warning:   lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
		info:      lipgloss.NewStyle().Foreground(palette.Info),
		debug:     lipgloss.NewStyle().Foreground(palette.TextMuted),
	}
}

// SetSize sets the component dimensions
func (lv *LogViewer) SetSize(width, height int) {
	lv.width = width
	lv.height = height

	w, h := width-4, height-3 // border, padding and title
	if w < 10 {
		w = 10
	}
	if h < 2 {
		h = 2
	}
	lv.viewport.Width = w
	lv.viewport.Height = h
	lv.Refresh()
}

// Filter returns the active filter
func (lv *LogViewer) Filter() LogFilter {
	return lv.filter
}

// ToggleLogLevel toggles a specific log level
func (lv *LogViewer) ToggleLogLevel(level string) {
	switch level {
	case "error":
		lv.filter.ShowError = !lv.filter.ShowError
	case "warning":
		lv.filter.ShowWarning = !lv.filter.ShowWarning
	case "info":
		lv.filter.ShowInfo = !lv.filter.ShowInfo
	case "debug":
		lv.filter.ShowDebug = !lv.filter.ShowDebug
	}
	lv.Refresh()
}

// Update forwards scrolling keys to the viewport
func (lv *LogViewer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lv.viewport, cmd = lv.viewport.Update(msg)
	return cmd
}

// View renders the viewer
func (lv *LogViewer) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lv.title.Render("Session log · "+lv.FilterStatus()),
		lv.viewport.View(),
	)
	return lv.container.Render(content)
}

// Lines returns the formatted entries that pass the filter
func (lv *LogViewer) Lines() []string {
	if lv.buffer == nil {
		return nil
	}

	var lines []string
	for _, entry := range lv.buffer.GetRecentLogs(lv.limit) {
		if lv.shouldShowEntry(entry) {
			lines = append(lines, lv.formatLogEntry(entry))
		}
	}
	return lines
}

// Refresh reloads the viewport from the buffer and scrolls to the newest entry
func (lv *LogViewer) Refresh() {
	if lv.buffer == nil {
		lv.viewport.SetContent("No log buffer available")
		return
	}

	lines := lv.Lines()
	if len(lines) == 0 {
		lv.viewport.SetContent("No logs match current filter")
		return
	}

	lv.viewport.SetContent(strings.Join(lines, "\n"))
	lv.viewport.GotoBottom()
}

// shouldShowEntry determines if a log entry should be displayed based on filter
func (lv *LogViewer) shouldShowEntry(entry logger.LogEntry) bool {
	switch strings.ToLower(entry.Level) {
	case "error", "fatal":
		return lv.filter.ShowError
	case "warning", "warn":
		return lv.filter.ShowWarning
	case "debug":
		return lv.filter.ShowDebug
	default:
		return lv.filter.ShowInfo
	}
}

func (lv *LogViewer) formatLogEntry(entry logger.LogEntry) string {
	timestamp := lv.timestamp.Render(entry.Timestamp.Format("15:04:05"))

	var message string
	switch strings.ToLower(entry.Level) {
	case "error", "fatal":
		message = lv.error.Render(entry.Message)
	case "warning", "warn":
		message = lv.warning.Render(entry.Message)
	case "debug":
		message = lv.debug.Render(entry.Message)
	default:
		message = lv.info.Render(entry.Message)
	}

	line := fmt.Sprintf("%s %s", timestamp, message)
	if len(entry.Fields) > 0 {
		line += " " + lv.fields.Render(formatFields(entry.Fields))
	}
	return line
}

// formatFields renders fields as sorted key=value pairs, skipping session bookkeeping.
func formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "session_id" || k == "session_start" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

// FilterStatus returns current filter status as string
func (lv *LogViewer) FilterStatus() string {
	var active []string
	if lv.filter.ShowError {
		active = append(active, "Error")
	}
	if lv.filter.ShowWarning {
		active = append(active, "Warning")
	}
	if lv.filter.ShowInfo {
		active = append(active, "Info")
	}
	if lv.filter.ShowDebug {
		active = append(active, "Debug")
	}

	if len(active) == 0 {
		return "No filters active"
	}

	return fmt.Sprintf("Showing: %s", strings.Join(active, ", "))
}
