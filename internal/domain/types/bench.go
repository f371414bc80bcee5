package types

import "time"

// DerivedKeySize is the length of the key material every agreement produces.
const DerivedKeySize = 64

// DerivedKey is the output key material of one handshake computation.
type DerivedKey [DerivedKeySize]byte

// Variant names a key-agreement implementation under benchmark.
type Variant string

// String returns the string form of the variant.
func (v Variant) String() string { return string(v) }

const (
	// VariantPQXDH is the sequential baseline (independent DH agreements).
	VariantPQXDH Variant = "pqxdh"
	// VariantPQMuDH is the simultaneous double-and-add combiner.
	VariantPQMuDH Variant = "pqmudh"
	// VariantPQMuDHPrecomputed is the windowed combiner with precomputed tables.
	VariantPQMuDHPrecomputed Variant = "pqmudh-precomputed"
)

// Timing is the elapsed wall-clock time of one computation.
type Timing struct {
	Variant Variant       `json:"variant"`
	Elapsed time.Duration `json:"elapsed"`
}

// Summary holds the sample statistics of one variant, in microseconds.
type Summary struct {
	Variant Variant `json:"variant"`
	Samples int     `json:"samples"`
	MeanUS  float64 `json:"mean_us"`
	StdDev  float64 `json:"std_dev_us"`
}

// Report is the result of a benchmark run. It never carries key material.
type Report struct {
	Count         int       `json:"count"`
	Kyber         bool      `json:"kyber"`
	OneTimePreKey bool      `json:"one_time_pre_key"`
	Summaries     []Summary `json:"summaries"`
	CreatedUTC    int64     `json:"created_utc"`
}
