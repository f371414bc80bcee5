package pqmudh

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"pqmudh/internal/domain"
	"pqmudh/internal/protocol/hybrid"
	"pqmudh/internal/protocol/kdf"
	"pqmudh/internal/protocol/pqxdh"
	"pqmudh/internal/util/memzero"
)

// SharedPointSize is the length of the compressed combined point.
const SharedPointSize = 32

type combineFunc func(Exponents, bases) *edwards25519.Point

// Agree derives the initiator's key material with the double-and-add combiner.
func Agree(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	return agree(params, rng, combine)
}

// AgreeWithPrecomputation derives the same key as Agree using the windowed
// combiner.
func AgreeWithPrecomputation(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	return agree(params, rng, combinePrecomputed)
}

// SharedPoint returns the compressed combined point for params.
func SharedPoint(params domain.HandshakeParameters) ([SharedPointSize]byte, error) {
	return sharedPoint(params, combine)
}

// SharedPointWithPrecomputation returns the compressed combined point using
// the windowed combiner.
func SharedPointWithPrecomputation(params domain.HandshakeParameters) ([SharedPointSize]byte, error) {
	return sharedPoint(params, combinePrecomputed)
}

func sharedPoint(params domain.HandshakeParameters, fn combineFunc) (out [SharedPointSize]byte, err error) {
	exps := CombineExponents(NewTranscript(params), params)
	b, err := liftBases(params.TheirSignedPreKey(), params.TheirIdentityKey(), params.TheirOneTimePreKey())
	if err != nil {
		return out, fmt.Errorf("pqmudh: %w", err)
	}
	copy(out[:], fn(exps, b).Bytes())
	return out, nil
}

func agree(params domain.HandshakeParameters, rng io.Reader, fn combineFunc) (domain.DerivedKey, error) {
	point, err := sharedPoint(params, fn)
	if err != nil {
		return domain.DerivedKey{}, err
	}

	secrets := make([]byte, 0, 32*3)
	secrets = append(secrets, pqxdh.DiscontinuityBytes...)
	secrets = append(secrets, point[:]...)
	memzero.Zero(point[:])
	defer memzero.Zero(secrets)

	material, hasKEM, err := hybrid.Augment(secrets, params.TheirKEMPreKey(), rng)
	if err != nil {
		return domain.DerivedKey{}, err
	}
	defer memzero.Zero(material)
	return kdf.DeriveKeys(hasKEM, material), nil
}

// Agreement adapts Agree to domain.Agreement.
type Agreement struct{}

// Variant implements domain.Agreement.
func (Agreement) Variant() domain.Variant { return domain.VariantPQMuDH }

// Agree implements domain.Agreement.
func (Agreement) Agree(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	return Agree(params, rng)
}

// PrecomputedAgreement adapts AgreeWithPrecomputation to domain.Agreement.
type PrecomputedAgreement struct{}

// Variant implements domain.Agreement.
func (PrecomputedAgreement) Variant() domain.Variant { return domain.VariantPQMuDHPrecomputed }

// Agree implements domain.Agreement.
func (PrecomputedAgreement) Agree(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	return AgreeWithPrecomputation(params, rng)
}

var (
	_ domain.Agreement = Agreement{}
	_ domain.Agreement = PrecomputedAgreement{}
)
