package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/rovshanmuradov/offer-simulator/internal/config"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func decodeCalc(t *testing.T, out string) calcResult {
	t.Helper()
	var result calcResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestCalcDefaults(t *testing.T) {
	out, err := execute(t, "calc", "-o", "json")
	require.NoError(t, err)

	result := decodeCalc(t, out)
	assert.True(t, result.Snapshot.Salary.Equal(decimal.NewFromInt(4000)))
	assert.True(t, result.Snapshot.BuyoutAmount.Equal(decimal.NewFromInt(21000)))
	assert.True(t, result.Snapshot.TotalYearlyCompensation.Equal(decimal.NewFromInt(98000)))
	assert.Nil(t, result.Payout)
}

func TestCalcEquityAndProfit(t *testing.T) {
	out, err := execute(t, "calc", "--equity", "6", "--profit", "200000", "-o", "json")
	require.NoError(t, err)

	s := decodeCalc(t, out).Snapshot
	assert.True(t, s.Salary.Equal(decimal.NewFromInt(4700)))
	assert.True(t, s.BuyoutPercent.Equal(decimal.NewFromFloat(10.8)))
	assert.True(t, s.BuyoutAmount.Equal(decimal.NewFromInt(22680)))
	assert.True(t, s.TotalYearlyCompensation.Equal(decimal.NewFromInt(68400)))
}

func TestCalcSalaryOverridesEquity(t *testing.T) {
	out, err := execute(t, "calc", "--equity", "10", "--salary", "4700", "-o", "json")
	require.NoError(t, err)

	s := decodeCalc(t, out).Snapshot
	assert.True(t, s.Equity.Equal(decimal.NewFromInt(6)))
	assert.True(t, s.Salary.Equal(decimal.NewFromInt(4700)))
}

func TestCalcClamps(t *testing.T) {
	out, err := execute(t, "calc", "--equity", "999", "--profit", "-1", "-o", "json")
	require.NoError(t, err)

	s := decodeCalc(t, out).Snapshot
	assert.True(t, s.Equity.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(100000)))
}

func TestCalcPayout(t *testing.T) {
	out, err := execute(t, "calc", "--equity", "5", "--months", "3", "-o", "json")
	require.NoError(t, err)
	payout := decodeCalc(t, out).Payout
	require.NotNil(t, payout)
	assert.False(t, payout.Eligible)
	assert.True(t, payout.Amount.IsZero())

	out, err = execute(t, "calc", "--equity", "5", "--months", "6", "-o", "json")
	require.NoError(t, err)
	payout = decodeCalc(t, out).Payout
	require.NotNil(t, payout)
	assert.True(t, payout.Eligible)
	assert.True(t, payout.Amount.Equal(decimal.NewFromInt(23100)))
	assert.Equal(t, 30, payout.DueDays)
}

func TestCalcYAML(t *testing.T) {
	out, err := execute(t, "calc", "-o", "yaml")
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "98000", doc["snapshot"]["total_yearly_compensation"])
}

func TestCalcTable(t *testing.T) {
	out, err := execute(t, "calc", "--months", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Total yearly compensation")
	assert.Contains(t, out, "98 000 €")
	assert.Contains(t, out, "none before 6 months")
}

func TestCalcErrors(t *testing.T) {
	_, err := execute(t, "calc", "--equity", "seven")
	assert.ErrorContains(t, err, "invalid --equity")

	_, err = execute(t, "calc", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = execute(t, "calc", "--months", "-1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "load config")
}

func TestCalcWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offersim.yaml")
	content := `
locale: en
currency: "$"
terms:
  valuation:
    best_six_month_average: 30000
    last_six_month_average: 10000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "calc", "--config", path, "-o", "json")
	require.NoError(t, err)

	s := decodeCalc(t, out).Snapshot
	assert.True(t, s.Valuation.Equal(decimal.NewFromInt(240000)))
	assert.True(t, s.BuyoutAmount.Equal(decimal.NewFromInt(24000)))
}

func TestScenariosExport(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "scenarios", "--format", "yaml", "--dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".yaml", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scenarios:")
}

func TestScenariosSingleProfit(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "scenarios", "--dir", dir, "--profit", "250000")
	require.NoError(t, err)

	data, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 7)
}

func TestScenariosErrors(t *testing.T) {
	_, err := execute(t, "scenarios", "--format", "xml", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "unsupported format")

	_, err = execute(t, "scenarios", "--profit", "lots", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "invalid --profit")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "offersim version "+version+"\n", out)
}

func TestLogBufferReportsAfterSession(t *testing.T) {
	cfg := &config.Config{
		LogBufferSize: 2,
		LogSpillFile:  filepath.Join(t.TempDir(), "logs", "session.log"),
	}
	buffer, err := openLogBuffer(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	appLogger := logger.CreatePrettyLogger(true, zapcore.AddSync(&out))

	tuiLogger, err := logger.CreateTUILogger(true, buffer)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		tuiLogger.Info("Input applied")
	}
	require.NoError(t, buffer.Flush())
	assert.Empty(t, out.String())

	closeLogBuffer(appLogger, buffer)
	assert.Contains(t, out.String(), "Log buffer closed")
	assert.Contains(t, out.String(), "3")

	data, err := os.ReadFile(cfg.LogSpillFile)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "Input applied"))

	out.Reset()
	closeLogBuffer(appLogger, buffer)
	assert.Contains(t, out.String(), "Failed to close log buffer")
}
