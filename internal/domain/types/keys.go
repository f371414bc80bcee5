package types

import "fmt"

// X25519KeySize is the length of encoded Curve25519 keys.
const X25519KeySize = 32

// X25519Public is a Curve25519 public key (Montgomery u-coordinate).
type X25519Public [X25519KeySize]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a clamped Curve25519 private scalar.
type X25519Private [X25519KeySize]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// KeyPair is an owned X25519 key pair.
type KeyPair struct {
	Private X25519Private `json:"private"`
	Public  X25519Public  `json:"public"`
}

// KEMPublicKey is a packed post-quantum KEM public key.
type KEMPublicKey []byte

// Slice returns the key as a []byte.
func (k KEMPublicKey) Slice() []byte { return k }

// MustX25519Public copies b into an X25519Public, panicking on a length mismatch.
func MustX25519Public(b []byte) X25519Public {
	if len(b) != X25519KeySize {
		panic(fmt.Errorf("X25519 public: want %d bytes, got %d", X25519KeySize, len(b)))
	}
	var out X25519Public
	copy(out[:], b)
	return out
}
