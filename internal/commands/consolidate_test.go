package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collate-dev/collate/internal/config"
	"github.com/collate-dev/collate/internal/runlog"
)

// testProject copies the fixture exports into a fresh project directory.
func testProject(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	fixtures := map[string]string{
		"amazon_order_history.csv": "amazon_orders.csv",
		"paypal.csv":               "paypal.csv",
		"bank.csv":                 "bank.csv",
		"gmail_transactions.csv":   "gmail_transactions.csv",
	}
	for dst, src := range fixtures {
		data, err := os.ReadFile(filepath.Join("../../testdata", src))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, dst), data, 0o644))
	}

	cfg := config.Default()
	cfg.Output.Path = "ledger.csv"
	cfg.Output.Format = "csv"
	return dir, cfg
}

func TestConsolidate_EndToEnd(t *testing.T) {
	dir, cfg := testProject(t)

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))

	got := out.String()
	assert.Contains(t, got, "amazon: 5 transactions")
	assert.Contains(t, got, "paypal: 2 transactions")
	assert.Contains(t, got, "bank: 4 transactions")
	assert.Contains(t, got, "gmail: 3 transactions")
	assert.Contains(t, got, "Total: 14 transactions")
	assert.Contains(t, got, "Results saved to ledger.csv")

	data, err := os.ReadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)
	ledgerCSV := string(data)

	// The 24.99 Acme charge shows up twice (amazon order, gmail invoice)
	// and its -24.99 settlement twice (paypal, bank): two groups, because
	// amount equality is exact and sign-sensitive.
	assert.Contains(t, ledgerCSV, "Your invoice for April - Acme Hosting,Gmail,FFB6C1")
	assert.Contains(t, ledgerCSV, "USB-C cable; cable ties,Amazon,FFB6C1")
	assert.Contains(t, ledgerCSV, "Acme Hosting,PayPal,AFEEEE")
	assert.Contains(t, ledgerCSV, "CARD PAYMENT ACME HOSTING,Bank,AFEEEE")
	assert.Contains(t, got, "Found 3 groups of potential duplicates")
}

func TestConsolidate_WritesRunLog(t *testing.T) {
	dir, cfg := testProject(t)

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))

	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "consolidate", entries[0].Command)
	assert.Equal(t, 17, entries[0].Found)
	assert.Equal(t, 14, entries[0].Processed)
	assert.Equal(t, 1, entries[0].Skipped)
}

func TestConsolidate_Idempotent(t *testing.T) {
	dir, cfg := testProject(t)

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))
	first, err := os.ReadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)

	require.NoError(t, runConsolidate(&out, cfg, dir))
	second, err := os.ReadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConsolidate_AbsoluteOutputPath(t *testing.T) {
	dir, cfg := testProject(t)
	outPath := filepath.Join(t.TempDir(), "ledger.csv")
	cfg.Output.Path = outPath

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))

	// The absolute path is honored as-is, not re-anchored under the
	// project root.
	_, err := os.Stat(outPath)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, outPath))
	assert.True(t, os.IsNotExist(err))
}

func TestConsolidate_MissingFileIsNotFatal(t *testing.T) {
	dir, cfg := testProject(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "bank.csv")))

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))
	assert.Contains(t, out.String(), "bank: file not found, skipping")
	assert.Contains(t, out.String(), "Total: 10 transactions")
}

func TestConsolidate_EmptyProject(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Path = "ledger.csv"
	cfg.Output.Format = "csv"

	var out bytes.Buffer
	require.NoError(t, runConsolidate(&out, cfg, dir))
	assert.Contains(t, out.String(), "Total: 0 transactions")
	assert.Contains(t, out.String(), "Found 0 groups")

	_, err := os.Stat(filepath.Join(dir, "ledger.csv"))
	assert.NoError(t, err)
}

func TestConsolidate_UnknownFormat(t *testing.T) {
	dir, cfg := testProject(t)
	cfg.Output.Format = "pdf"

	var out bytes.Buffer
	err := runConsolidate(&out, cfg, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
