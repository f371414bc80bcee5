package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/katzenpost/hpqc/rand"

	"pqmudh/internal/bench"
	"pqmudh/internal/domain"
	"pqmudh/internal/protocol/pqmudh"
)

var errCombinerMismatch = errors.New("selftest: combiners disagree")

// SelfTestResult describes one checked parameter branch.
type SelfTestResult struct {
	Options bench.Options
	Keys    map[domain.Variant]domain.DerivedKey
}

// SelfTest checks every combination of one-time pre-key and Kyber pre-key:
// both combiners must produce the same point and the same key, and every
// agreement must succeed. Encapsulation randomness is replayed for each
// agreement so hybrid keys are comparable.
func SelfTest(rng io.Reader) ([]SelfTestResult, error) {
	var results []SelfTestResult
	for _, opts := range []bench.Options{
		{},
		{OneTimePreKey: true},
		{Kyber: true},
		{Kyber: true, OneTimePreKey: true},
	} {
		res, err := selfTestBranch(rng, opts)
		if err != nil {
			return results, fmt.Errorf("selftest: kyber=%v opk=%v: %w", opts.Kyber, opts.OneTimePreKey, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func selfTestBranch(rng io.Reader, opts bench.Options) (SelfTestResult, error) {
	params, err := bench.SetupParameters(rng, opts)
	if err != nil {
		return SelfTestResult{}, err
	}

	plain, err := pqmudh.SharedPoint(params)
	if err != nil {
		return SelfTestResult{}, err
	}
	windowed, err := pqmudh.SharedPointWithPrecomputation(params)
	if err != nil {
		return SelfTestResult{}, err
	}
	if plain != windowed {
		return SelfTestResult{}, fmt.Errorf("%w: shared point", errCombinerMismatch)
	}

	var kemSeed [32]byte
	if _, err := io.ReadFull(rng, kemSeed[:]); err != nil {
		return SelfTestResult{}, err
	}

	res := SelfTestResult{Options: opts, Keys: make(map[domain.Variant]domain.DerivedKey)}
	for _, a := range Agreements() {
		replay, err := rand.NewDeterministicRandReader(bytes.Clone(kemSeed[:]))
		if err != nil {
			return SelfTestResult{}, err
		}
		key, err := a.Agree(params, replay)
		if err != nil {
			return SelfTestResult{}, fmt.Errorf("%s: %w", a.Variant(), err)
		}
		res.Keys[a.Variant()] = key
	}
	if res.Keys[domain.VariantPQMuDH] != res.Keys[domain.VariantPQMuDHPrecomputed] {
		return SelfTestResult{}, fmt.Errorf("%w: derived key", errCombinerMismatch)
	}
	return res, nil
}
