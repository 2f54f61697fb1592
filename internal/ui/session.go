package ui

import (
	"go.uber.org/zap"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/export"
	"github.com/rovshanmuradov/offer-simulator/internal/format"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
)

// Session is the state shared by every screen of one TUI run. It owns the only Model.
type Session struct {
	ID        string
	Model     *compensation.Model
	Formatter *format.Formatter
	Logger    *zap.Logger
	Buffer    *logger.LogBuffer
	Exporter  *export.ScenarioExporter
	ExportDir string
}

// NewSession builds a session around a fresh model. buffer may be nil.
func NewSession(terms compensation.Terms, formatter *format.Formatter, log *zap.Logger, buffer *logger.LogBuffer, exportDir string) *Session {
	sessionLogger, id := logger.WithSession(log)

	s := &Session{
		ID:        id,
		Model:     compensation.NewModel(terms),
		Formatter: formatter,
		Logger:    sessionLogger,
		Buffer:    buffer,
		Exporter:  export.NewScenarioExporter(sessionLogger),
		ExportDir: exportDir,
	}

	snap := s.Model.Read()
	s.Logger.Info("Session started",
		zap.String("equity", snap.Equity.String()),
		zap.String("profit", snap.Profit.String()),
		zap.String("total", snap.TotalYearlyCompensation.String()))
	return s
}

// Apply feeds one input event to the model and logs the resulting snapshot.
func (s *Session) Apply(in compensation.Input) compensation.Snapshot {
	s.Model.Apply(in)
	snap := s.Model.Read()

	s.Logger.Debug("Input applied",
		zap.Stringer("field", in.Field),
		zap.String("value", in.Value.String()),
		zap.String("equity", snap.Equity.String()),
		zap.String("salary", snap.Salary.String()),
		zap.String("buyout_percent", snap.BuyoutPercent.String()),
		zap.String("total", snap.TotalYearlyCompensation.String()))
	return snap
}

// Nudge moves field by n slider steps through the model and logs the resulting snapshot.
func (s *Session) Nudge(field compensation.Field, n int) compensation.Snapshot {
	switch field {
	case compensation.FieldSalary:
		s.Model.NudgeSalary(n)
	case compensation.FieldEquity:
		s.Model.NudgeEquity(n)
	case compensation.FieldProfit:
		s.Model.NudgeProfit(n)
	default:
		s.Logger.Warn("Nudge on unknown field", zap.Stringer("field", field))
		return s.Model.Read()
	}
	snap := s.Model.Read()

	s.Logger.Debug("Slider nudged",
		zap.Stringer("field", field),
		zap.Int("steps", n),
		zap.String("equity", snap.Equity.String()),
		zap.String("salary", snap.Salary.String()),
		zap.String("profit", snap.Profit.String()),
		zap.String("total", snap.TotalYearlyCompensation.String()))
	return snap
}

// Reset restores the initial driver values. The Model pointer is kept.
func (s *Session) Reset() compensation.Snapshot {
	s.Model.Reset()
	s.Logger.Debug("Model reset")
	return s.Model.Read()
}

// ExportTerms writes the full grid of terms as CSV into ExportDir. It does not touch the
// Model, so it may run off the UI goroutine.
func (s *Session) ExportTerms(terms compensation.Terms) (string, int, error) {
	path, err := s.Exporter.Export(terms, export.Options{
		Format:    export.FormatCSV,
		OutputDir: s.ExportDir,
	})
	if err != nil {
		s.Logger.Error("Scenario export failed", zap.Error(err))
		return "", 0, err
	}
	return path, len(export.Grid(terms, nil)), nil
}
