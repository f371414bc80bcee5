package pqxdh

import (
	"bytes"
	"fmt"
	"io"

	"pqmudh/internal/crypto"
	"pqmudh/internal/domain"
	"pqmudh/internal/protocol/hybrid"
	"pqmudh/internal/protocol/kdf"
	"pqmudh/internal/util/memzero"
)

// DiscontinuityBytes prefixes the secret material of every variant.
var DiscontinuityBytes = bytes.Repeat([]byte{0xff}, 32)

// Agree derives the initiator's key material with independent DH agreements.
func Agree(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	secrets, err := Secrets(params)
	if err != nil {
		return domain.DerivedKey{}, err
	}
	defer memzero.Zero(secrets)

	material, hasKEM, err := hybrid.Augment(secrets, params.TheirKEMPreKey(), rng)
	if err != nil {
		return domain.DerivedKey{}, err
	}
	defer memzero.Zero(material)
	return kdf.DeriveKeys(hasKEM, material), nil
}

// Secrets returns the marker followed by the concatenated DH outputs.
func Secrets(params domain.HandshakeParameters) ([]byte, error) {
	ourIdentity := params.OurIdentityKeyPair().Private
	ourBase := params.OurBaseKeyPair().Private
	theirSPK := params.TheirSignedPreKey()

	secrets := make([]byte, 0, 32*6)
	secrets = append(secrets, DiscontinuityBytes...)

	dh1, err := crypto.DH(ourIdentity, theirSPK) // DH(IKA, SPKB)
	if err != nil {
		return nil, fmt.Errorf("pqxdh: DH(IKA, SPKB): %w", err)
	}
	dh2, err := crypto.DH(ourBase, params.TheirIdentityKey()) // DH(EKA, IKB)
	if err != nil {
		return nil, fmt.Errorf("pqxdh: DH(EKA, IKB): %w", err)
	}
	dh3, err := crypto.DH(ourBase, theirSPK) // DH(EKA, SPKB)
	if err != nil {
		return nil, fmt.Errorf("pqxdh: DH(EKA, SPKB): %w", err)
	}
	secrets = append(secrets, dh1[:]...)
	secrets = append(secrets, dh2[:]...)
	secrets = append(secrets, dh3[:]...)

	if opk, ok := params.TheirOneTimePreKey().Get(); ok {
		dh4, err := crypto.DH(ourBase, opk) // DH(EKA, OPKB)
		if err != nil {
			return nil, fmt.Errorf("pqxdh: DH(EKA, OPKB): %w", err)
		}
		secrets = append(secrets, dh4[:]...)
	}
	return secrets, nil
}

// Agreement adapts Agree to domain.Agreement.
type Agreement struct{}

// Variant implements domain.Agreement.
func (Agreement) Variant() domain.Variant { return domain.VariantPQXDH }

// Agree implements domain.Agreement.
func (Agreement) Agree(params domain.HandshakeParameters, rng io.Reader) (domain.DerivedKey, error) {
	return Agree(params, rng)
}

var _ domain.Agreement = Agreement{}
