package app

import (
	"fmt"
	"io"

	"github.com/katzenpost/hpqc/rand"

	"pqmudh/internal/bench"
	"pqmudh/internal/domain"
	"pqmudh/internal/log"
	"pqmudh/internal/protocol/pqmudh"
	"pqmudh/internal/protocol/pqxdh"
	benchmarksvc "pqmudh/internal/services/benchmark"
	"pqmudh/internal/store"
)

// Agreements returns every agreement in the order they are timed and printed.
func Agreements() []domain.Agreement {
	return []domain.Agreement{
		pqxdh.Agreement{},
		pqmudh.Agreement{},
		pqmudh.PrecomputedAgreement{},
	}
}

// Wire bundles the log backend, RNG, metrics and services for the CLI.
type Wire struct {
	Config    *Config
	Log       *log.Backend
	RNG       io.Reader
	Metrics   *bench.Metrics
	Reports   *store.ReportFileStore // nil unless a report file is configured
	Benchmark *benchmarksvc.Service
}

// NewWire constructs the dependency graph from cfg, which must have been
// validated.
func NewWire(cfg *Config) (*Wire, error) {
	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return nil, err
	}

	// Deterministic stream when seeded, system CSPRNG otherwise.
	var rng io.Reader = rand.Reader
	seed, err := cfg.Benchmark.SeedBytes()
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	if seed != nil {
		drng, err := rand.NewDeterministicRandReader(seed)
		if err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("app: seeding rng: %w", err)
		}
		rng = drng
	}

	w := &Wire{
		Config:  cfg,
		Log:     backend,
		RNG:     rng,
		Metrics: bench.NewMetrics(),
	}

	// The service takes an interface; only pass a store when one exists.
	var reports domain.ReportStore
	if cfg.Benchmark.ReportFile != "" {
		w.Reports = store.NewReportFileStore(cfg.Benchmark.ReportFile)
		reports = w.Reports
	}
	w.Benchmark = benchmarksvc.New(Agreements(), rng, w.Metrics, reports, backend.GetLogger("benchmark"))
	return w, nil
}

// Options returns the parameter options selected by the config.
func (w *Wire) Options() bench.Options {
	return bench.Options{
		Kyber:         w.Config.Benchmark.Kyber,
		OneTimePreKey: w.Config.Benchmark.OneTimePreKey,
	}
}

// Close flushes the metrics export, if configured, and closes the log.
func (w *Wire) Close() error {
	var err error
	if path := w.Config.Benchmark.MetricsFile; path != "" {
		if err = w.Metrics.WriteTextfile(path); err != nil {
			err = fmt.Errorf("app: writing metrics: %w", err)
		}
	}
	if cerr := w.Log.Close(); err == nil {
		err = cerr
	}
	return err
}
