// Package hybrid folds a post-quantum KEM shared secret into handshake
// secret material.
//
// When the responder published a Kyber1024 pre-key, Augment encapsulates to
// it and appends the shared secret after the Diffie-Hellman output. The
// ciphertext is dropped: delivering it to the responder is not part of the
// key computation. The returned flag selects the key-derivation label.
package hybrid

import (
	"errors"
	"fmt"
	"io"

	"pqmudh/internal/crypto"
	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// ErrEncapsulation is returned when encapsulating to the KEM pre-key fails.
var ErrEncapsulation = errors.New("hybrid: kem encapsulation failed")

// Augment appends the KEM shared secret to secrets if kemKey is present.
// It reports whether the KEM branch was taken.
func Augment(
	secrets []byte,
	kemKey types.Optional[domain.KEMPublicKey],
	rng io.Reader,
) ([]byte, bool, error) {
	pk, ok := kemKey.Get()
	if !ok {
		return secrets, false, nil
	}
	_, ss, err := crypto.EncapsulateKyber1024(pk, rng)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrEncapsulation, err)
	}
	return append(secrets, ss...), true, nil
}
