package benchmark

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/op/go-logging.v1"

	"pqmudh/internal/bench"
	"pqmudh/internal/crypto"
	"pqmudh/internal/domain"
)

var errNoAgreements = errors.New("benchmark: no agreements configured")

// Service times a fixed list of agreements.
type Service struct {
	agreements []domain.Agreement
	rng        io.Reader
	metrics    *bench.Metrics
	reports    domain.ReportStore // optional
	log        *logging.Logger
	now        func() time.Time
}

func New(agreements []domain.Agreement, rng io.Reader, metrics *bench.Metrics, reports domain.ReportStore, log *logging.Logger) *Service {
	return &Service{
		agreements: agreements,
		rng:        rng,
		metrics:    metrics,
		reports:    reports,
		log:        log,
		now:        time.Now,
	}
}

// Agreements returns the agreements in the order they are timed.
func (s *Service) Agreements() []domain.Agreement { return s.agreements }

// Once draws one handshake and times every agreement over it.
func (s *Service) Once(opts bench.Options) ([]domain.Timing, error) {
	if len(s.agreements) == 0 {
		return nil, errNoAgreements
	}
	params, err := bench.SetupParameters(s.rng, opts)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("handshake: identity %s, signed pre-key %s",
		crypto.Fingerprint(params.TheirIdentityKey()), crypto.Fingerprint(params.TheirSignedPreKey()))

	timings, err := bench.OneShot(params, s.rng, s.agreements)
	if err != nil {
		var agreementErr *bench.AgreementError
		if errors.As(err, &agreementErr) {
			s.metrics.Failed(agreementErr.Variant)
		}
		return nil, err
	}
	s.metrics.Observe(timings)
	return timings, nil
}

// Run performs count rounds with fresh parameters each time and summarises
// the timings per agreement. The report is saved if a store is configured.
func (s *Service) Run(count int, opts bench.Options) (domain.Report, error) {
	if count < 1 {
		return domain.Report{}, fmt.Errorf("benchmark: count must be positive, got %d", count)
	}

	samples := make([][]float64, len(s.agreements))
	for i := range samples {
		samples[i] = make([]float64, 0, count)
	}
	for round := 0; round < count; round++ {
		timings, err := s.Once(opts)
		if err != nil {
			return domain.Report{}, fmt.Errorf("benchmark: round %d: %w", round+1, err)
		}
		for i, t := range timings {
			us := bench.Micros(t.Elapsed)
			samples[i] = append(samples[i], us)
			s.log.Debugf("round %d: %s took %.0f µs", round+1, t.Variant, us)
		}
	}

	report := domain.Report{
		Count:         count,
		Kyber:         opts.Kyber,
		OneTimePreKey: opts.OneTimePreKey,
		Summaries:     make([]domain.Summary, 0, len(s.agreements)),
		CreatedUTC:    s.now().UTC().Unix(),
	}
	for i, a := range s.agreements {
		mean, sd := bench.Stats(samples[i])
		report.Summaries = append(report.Summaries, domain.Summary{
			Variant: a.Variant(),
			Samples: len(samples[i]),
			MeanUS:  mean,
			StdDev:  sd,
		})
		s.log.Infof("%s: %.1f(%.1f) µs over %d runs", a.Variant(), mean, sd, len(samples[i]))
	}

	if s.reports != nil {
		if err := s.reports.SaveReport(report); err != nil {
			return domain.Report{}, err
		}
		s.log.Notice("report saved")
	}
	return report, nil
}
