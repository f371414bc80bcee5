package benchmark_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/katzenpost/hpqc/rand"
	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"

	"pqmudh/internal/bench"
	"pqmudh/internal/domain"
	"pqmudh/internal/protocol/pqmudh"
	"pqmudh/internal/protocol/pqxdh"
	"pqmudh/internal/services/benchmark"
)

type memReports struct{ saved []domain.Report }

func (m *memReports) SaveReport(r domain.Report) error {
	m.saved = append(m.saved, r)
	return nil
}

type failing struct{}

func (failing) Variant() domain.Variant { return "failing" }

func (failing) Agree(domain.HandshakeParameters, io.Reader) (domain.DerivedKey, error) {
	return domain.DerivedKey{}, errors.New("no")
}

func newService(t *testing.T, agreements []domain.Agreement, reports domain.ReportStore) *benchmark.Service {
	t.Helper()
	rng, err := rand.NewDeterministicRandReader(bytes.Repeat([]byte{9}, 32))
	require.NoError(t, err)
	return benchmark.New(agreements, rng, bench.NewMetrics(), reports, logging.MustGetLogger("benchmark_test"))
}

func allAgreements() []domain.Agreement {
	return []domain.Agreement{pqxdh.Agreement{}, pqmudh.Agreement{}, pqmudh.PrecomputedAgreement{}}
}

func TestRun_Summaries(t *testing.T) {
	reports := &memReports{}
	svc := newService(t, allAgreements(), reports)

	report, err := svc.Run(3, bench.Options{Kyber: true, OneTimePreKey: true})
	require.NoError(t, err)
	require.Equal(t, 3, report.Count)
	require.True(t, report.Kyber)
	require.True(t, report.OneTimePreKey)
	require.Len(t, report.Summaries, 3)

	want := []domain.Variant{domain.VariantPQXDH, domain.VariantPQMuDH, domain.VariantPQMuDHPrecomputed}
	for i, s := range report.Summaries {
		require.Equal(t, want[i], s.Variant)
		require.Equal(t, 3, s.Samples)
		require.GreaterOrEqual(t, s.MeanUS, 0.0)
		require.GreaterOrEqual(t, s.StdDev, 0.0)
	}
	require.Len(t, reports.saved, 1)
	require.Equal(t, report, reports.saved[0])
}

func TestRun_WithoutStore(t *testing.T) {
	svc := newService(t, allAgreements(), nil)
	report, err := svc.Run(1, bench.Options{})
	require.NoError(t, err)
	for _, s := range report.Summaries {
		require.Equal(t, 1, s.Samples)
		require.Zero(t, s.StdDev)
	}
}

func TestRun_InvalidCount(t *testing.T) {
	svc := newService(t, allAgreements(), nil)
	_, err := svc.Run(0, bench.Options{})
	require.Error(t, err)
}

func TestRun_AgreementFailure(t *testing.T) {
	reports := &memReports{}
	svc := newService(t, []domain.Agreement{pqxdh.Agreement{}, failing{}}, reports)
	_, err := svc.Run(2, bench.Options{})
	require.Error(t, err)
	require.Empty(t, reports.saved)
}

func TestOnce_NoAgreements(t *testing.T) {
	svc := newService(t, nil, nil)
	_, err := svc.Once(bench.Options{})
	require.Error(t, err)
}
