package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// GenerateX25519 returns a fresh Curve25519 key pair read from rng.
// The private key is clamped per RFC 7748.
func GenerateX25519(rng io.Reader) (kp domain.KeyPair, err error) {
	if _, err = io.ReadFull(rng, kp.Private[:]); err != nil {
		return kp, fmt.Errorf("x25519: reading private key: %w", err)
	}
	clamp(&kp.Private)
	pb, err := curve25519.X25519(kp.Private.Slice(), curve25519.Basepoint)
	if err != nil {
		return kp, err
	}
	kp.Public = types.MustX25519Public(pb)
	return kp, nil
}

// DH computes X25519 Diffie–Hellman.
func DH(priv domain.X25519Private, pub domain.X25519Public) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	return out, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
