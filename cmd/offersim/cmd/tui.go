package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/offer-simulator/internal/config"
	"github.com/rovshanmuradov/offer-simulator/internal/format"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
	"github.com/rovshanmuradov/offer-simulator/internal/ui"
	"github.com/rovshanmuradov/offer-simulator/internal/ui/app"
)

const flushInterval = 5 * time.Second

func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Open the full screen calculator.

Use up/down to pick a slider and left/right to move it. The buyout slider follows
the profit share and cannot be moved directly. Press s for the scenarios table,
L for the session log and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Writes to the terminal, so it is only used before the alt screen is up and after it is gone
	appLogger := commandLogger(cmd, cfg)
	defer func() {
		_ = appLogger.Sync()
	}()

	buffer, err := openLogBuffer(cfg)
	if err != nil {
		return err
	}
	defer closeLogBuffer(appLogger, buffer)
	flushDone := buffer.StartPeriodicFlush(flushInterval)
	defer close(flushDone)

	tuiLogger, err := logger.CreateTUILogger(cfg.DebugLogging, buffer)
	if err != nil {
		return fmt.Errorf("create TUI logger: %w", err)
	}

	session := ui.NewSession(
		cfg.CompensationTerms(),
		format.New(cfg.Locale, cfg.Currency),
		tuiLogger,
		buffer,
		cfg.ExportDir,
	)

	program := tea.NewProgram(
		ui.NewSafeModel(app.New(session), tuiLogger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer stop()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("TUI application failed", zap.Error(err))
		return err
	}

	session.Logger.Info("Session closed")
	fmt.Fprintf(cmd.ErrOrStderr(), "Session %s closed\n", session.ID)
	return nil
}

// openLogBuffer builds the in-memory log buffer. Its own logger is a no-op because
// anything it printed would land on the alt screen.
func openLogBuffer(cfg *config.Config) (*logger.LogBuffer, error) {
	buffer, err := logger.NewLogBuffer(cfg.LogBufferSize, cfg.LogSpillFile, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("create log buffer: %w", err)
	}
	return buffer, nil
}

// closeLogBuffer spills the buffer and reports its stats once the terminal is restored.
func closeLogBuffer(log *zap.Logger, buffer *logger.LogBuffer) {
	if err := buffer.FlushError(); err != nil {
		log.Warn("Log buffer flush failed during session", zap.Error(err))
	}

	total, spilled := buffer.GetStats()
	if err := buffer.Close(); err != nil {
		log.Error("Failed to close log buffer", zap.Error(err))
		return
	}
	log.Debug("Log buffer closed", zap.Uint64("total", total), zap.Uint64("spilled", spilled))
}
