package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pqmudh/internal/domain"
)

func TestNewWire_SeededRun(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Logging.Disable = true
	cfg.Benchmark.Count = 2
	cfg.Benchmark.Kyber = true
	cfg.Benchmark.Seed = strings.Repeat("01", 32)
	cfg.Benchmark.ReportFile = filepath.Join(dir, "report.json")
	cfg.Benchmark.MetricsFile = filepath.Join(dir, "bench.prom")
	require.NoError(t, cfg.FixupAndValidate())

	w, err := NewWire(cfg)
	require.NoError(t, err)
	require.NotNil(t, w.Reports)
	require.True(t, w.Options().Kyber)
	require.False(t, w.Options().OneTimePreKey)

	report, err := w.Benchmark.Run(cfg.Benchmark.Count, w.Options())
	require.NoError(t, err)
	require.Len(t, report.Summaries, len(Agreements()))
	require.NoError(t, w.Close())

	saved, err := w.Reports.LoadReport()
	require.NoError(t, err)
	require.Equal(t, report, saved)

	metrics, err := os.ReadFile(cfg.Benchmark.MetricsFile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `variant="pqmudh-precomputed"`)
}

func TestNewWire_NoReport(t *testing.T) {
	cfg := Default()
	cfg.Logging.Disable = true

	w, err := NewWire(cfg)
	require.NoError(t, err)
	require.Nil(t, w.Reports)
	require.NoError(t, w.Close())
}

func TestAgreements_Order(t *testing.T) {
	var got []domain.Variant
	for _, a := range Agreements() {
		got = append(got, a.Variant())
	}
	require.Equal(t, []domain.Variant{domain.VariantPQXDH, domain.VariantPQMuDH, domain.VariantPQMuDHPrecomputed}, got)
}
