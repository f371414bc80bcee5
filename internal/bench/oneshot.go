package bench

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"pqmudh/internal/domain"
)

// AgreementError reports which variant failed during OneShot.
type AgreementError struct {
	Variant domain.Variant
	Err     error
}

func (e *AgreementError) Error() string {
	return fmt.Sprintf("bench: %s: %v", e.Variant, e.Err)
}

func (e *AgreementError) Unwrap() error { return e.Err }

// OneShot runs each agreement once over params, in order, and returns how
// long each took. The first failing agreement aborts the run.
func OneShot(params domain.HandshakeParameters, rng io.Reader, agreements []domain.Agreement) ([]domain.Timing, error) {
	timings := make([]domain.Timing, 0, len(agreements))
	for _, a := range agreements {
		start := time.Now()
		key, err := a.Agree(params, rng)
		elapsed := time.Since(start)
		if err != nil {
			return nil, &AgreementError{Variant: a.Variant(), Err: err}
		}
		// Keep the result live so the call is not elided.
		runtime.KeepAlive(key)
		timings = append(timings, domain.Timing{Variant: a.Variant(), Elapsed: elapsed})
	}
	return timings, nil
}

// Micros returns d in whole microseconds.
func Micros(d time.Duration) float64 {
	return float64(d.Microseconds())
}
