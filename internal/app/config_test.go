package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Full(t *testing.T) {
	body := `
[Logging]
  Disable = true
  Level = "DEBUG"

[Benchmark]
  Count = 25
  Kyber = true
  OneTimePreKey = true
  Seed = "` + strings.Repeat("ab", 32) + `"
  ReportFile = "/tmp/report.json"
  MetricsFile = "/tmp/bench.prom"
`
	cfg, err := Load([]byte(body))
	require.NoError(t, err)
	require.True(t, cfg.Logging.Disable)
	require.Equal(t, "DEBUG", cfg.Logging.Level)
	require.Equal(t, 25, cfg.Benchmark.Count)
	require.True(t, cfg.Benchmark.Kyber)
	require.True(t, cfg.Benchmark.OneTimePreKey)
	require.Equal(t, "/tmp/report.json", cfg.Benchmark.ReportFile)
	require.Equal(t, "/tmp/bench.prom", cfg.Benchmark.MetricsFile)

	seed, err := cfg.Benchmark.SeedBytes()
	require.NoError(t, err)
	require.Len(t, seed, 32)
	require.Equal(t, byte(0xab), seed[0])
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]byte(""))
	require.NoError(t, err)
	require.Equal(t, defaultLogLevel, cfg.Logging.Level)
	require.Equal(t, defaultCount, cfg.Benchmark.Count)

	seed, err := cfg.Benchmark.SeedBytes()
	require.NoError(t, err)
	require.Nil(t, seed)

	require.Equal(t, cfg, Default())
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"level":      "[Logging]\nLevel = \"LOUD\"\n",
		"count":      "[Benchmark]\nCount = -3\n",
		"seed hex":   "[Benchmark]\nSeed = \"zz\"\n",
		"seed short": "[Benchmark]\nSeed = \"abcd\"\n",
		"syntax":     "[Benchmark\n",
	} {
		_, err := Load([]byte(body))
		require.Error(t, err, name)
	}

	_, err := Load(nil)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pqmudh.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Benchmark]\nCount = 4\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Benchmark.Count)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
