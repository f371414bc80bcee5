package bench

import (
	"fmt"
	"io"

	"pqmudh/internal/crypto"
	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// Options selects the optional parts of generated handshake parameters.
type Options struct {
	// Kyber gives Bob a Kyber1024 pre-key.
	Kyber bool
	// OneTimePreKey gives Bob a one-time pre-key.
	OneTimePreKey bool
}

// SetupParameters generates a fresh handshake between Alice and Bob.
//
// Keys are drawn from rng in a fixed order (Alice identity, Alice base, Bob
// identity, Bob signed pre-key, Bob ratchet key, then the optional Kyber and
// one-time pre-keys), so a deterministic rng reproduces the same handshake.
func SetupParameters(rng io.Reader, opts Options) (domain.HandshakeParameters, error) {
	var keys [5]domain.KeyPair
	for i := range keys {
		kp, err := crypto.GenerateX25519(rng)
		if err != nil {
			return domain.HandshakeParameters{}, fmt.Errorf("bench: generating key %d: %w", i, err)
		}
		keys[i] = kp
	}
	aliceIdentity, aliceBase := keys[0], keys[1]
	bobIdentity, bobSignedPreKey, bobRatchet := keys[2], keys[3], keys[4]

	params := types.NewHandshakeParameters(
		aliceIdentity,
		aliceBase,
		bobIdentity.Public,
		bobSignedPreKey.Public,
		bobRatchet.Public,
	)

	if opts.Kyber {
		pub, _, err := crypto.GenerateKyber1024(rng)
		if err != nil {
			return domain.HandshakeParameters{}, fmt.Errorf("bench: generating kyber pre-key: %w", err)
		}
		params = params.WithKEMPreKey(pub)
	}
	if opts.OneTimePreKey {
		opk, err := crypto.GenerateX25519(rng)
		if err != nil {
			return domain.HandshakeParameters{}, fmt.Errorf("bench: generating one-time pre-key: %w", err)
		}
		params = params.WithOneTimePreKey(opk.Public)
	}
	return params, nil
}
