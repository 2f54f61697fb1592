package ui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SafeModel wraps the root model so a panic in one message handler is logged instead of
// tearing down the terminal. The wrapped model keeps running.
type SafeModel struct {
	model  tea.Model
	logger *zap.Logger
	panics int
	last   string
}

// NewSafeModel wraps model
func NewSafeModel(model tea.Model, logger *zap.Logger) *SafeModel {
	return &SafeModel{
		model:  model,
		logger: logger,
	}
}

// Init wraps the Init method with panic recovery
func (sm *SafeModel) Init() (cmd tea.Cmd) {
	defer sm.recoverFromPanic("Init", &cmd)
	return sm.model.Init()
}

// Update wraps the Update method with panic recovery
func (sm *SafeModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = sm
	defer sm.recoverFromPanic("Update", &cmd)

	updated, cmd := sm.model.Update(msg)
	sm.model = updated
	return sm, cmd
}

// View wraps the View method with panic recovery
func (sm *SafeModel) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			sm.record("View", r)
			view = "Rendering failed. Press ctrl+c to exit."
		}
	}()

	view = sm.model.View()
	if sm.last != "" {
		view += "\n" + sm.last
	}
	return view
}

// Panics returns how many panics were recovered
func (sm *SafeModel) Panics() int {
	return sm.panics
}

// Unwrap returns the wrapped model
func (sm *SafeModel) Unwrap() tea.Model {
	return sm.model
}

// recoverFromPanic recovers from panics in UI methods
func (sm *SafeModel) recoverFromPanic(method string, cmd *tea.Cmd) {
	if r := recover(); r != nil {
		sm.record(method, r)
		*cmd = nil
	}
}

func (sm *SafeModel) record(method string, r interface{}) {
	sm.panics++
	sm.last = fmt.Sprintf("Recovered from an error in %s: %v", method, r)
	sm.logger.Error("UI panic recovered",
		zap.String("method", method),
		zap.Any("panic", r),
		zap.String("stack", string(debug.Stack())))
}
