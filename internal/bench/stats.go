package bench

import "math"

// Stats returns the mean and the Bessel-corrected standard deviation of
// samples. With fewer than two samples the deviation is 0; with none both
// are 0.
func Stats(samples []float64) (mean, stddev float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0
	}
	for _, s := range samples {
		mean += s
	}
	mean /= float64(n)
	if n < 2 {
		return mean, 0
	}

	var sq float64
	for _, s := range samples {
		d := s - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(n-1))
}
