// Package kdf turns assembled handshake secret material into output key
// material.
//
// HKDF-SHA-256 is run with no salt and one of two fixed info labels: the
// classical label when only Diffie-Hellman outputs were mixed in, and the
// hybrid label when a Kyber1024 shared secret was appended as well.
package kdf

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"pqmudh/internal/domain"
)

var (
	// ClassicalLabel is the info label for DH-only secret material.
	ClassicalLabel = []byte("WhisperText")
	// HybridLabel is the info label when a KEM shared secret was mixed in.
	HybridLabel = []byte("WhisperText_X25519_SHA-256_CRYSTALS-KYBER-1024")
)

// Label returns the info label for the given KEM presence.
func Label(hasKEM bool) []byte {
	if hasKEM {
		return HybridLabel
	}
	return ClassicalLabel
}

// DeriveKeys expands secretInput into 64 bytes of key material.
func DeriveKeys(hasKEM bool, secretInput []byte) domain.DerivedKey {
	return deriveKeysWithLabel(Label(hasKEM), secretInput)
}

func deriveKeysWithLabel(label, secretInput []byte) domain.DerivedKey {
	var out domain.DerivedKey
	r := hkdf.New(sha256.New, secretInput, nil, label)
	if _, err := io.ReadFull(r, out[:]); err != nil {
		// 64 bytes is far below HKDF-SHA-256's 255*32 byte limit.
		panic("kdf: BUG: hkdf expand failed: " + err.Error())
	}
	return out
}
