package crypto

import (
	"fmt"
	"io"

	"github.com/katzenpost/circl/kem/kyber/kyber1024"

	"pqmudh/internal/domain"
)

var kyberScheme = kyber1024.Scheme()

// KyberSharedKeySize is the length of a Kyber1024 shared secret.
const KyberSharedKeySize = kyber1024.SharedKeySize

// GenerateKyber1024 derives a Kyber1024 key pair from seed material read
// from rng and returns the packed public and private keys.
func GenerateKyber1024(rng io.Reader) (domain.KEMPublicKey, []byte, error) {
	pk, sk, err := kyber1024.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("kyber1024: generating key pair: %w", err)
	}
	pub, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	priv, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	return domain.KEMPublicKey(pub), priv, nil
}

// EncapsulateKyber1024 encapsulates a fresh shared secret to pub, taking the
// encapsulation seed from rng.
func EncapsulateKyber1024(pub domain.KEMPublicKey, rng io.Reader) (ct, ss []byte, err error) {
	pk, err := kyberScheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("kyber1024: unpacking public key: %w", err)
	}
	kpk, ok := pk.(*kyber1024.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("kyber1024: unexpected public key type %T", pk)
	}

	seed := make([]byte, kyber1024.EncapsulationSeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, fmt.Errorf("kyber1024: reading encapsulation seed: %w", err)
	}
	ct = make([]byte, kyber1024.CiphertextSize)
	ss = make([]byte, kyber1024.SharedKeySize)
	kpk.EncapsulateTo(ct, ss, seed)
	return ct, ss, nil
}

// DecapsulateKyber1024 recovers the shared secret encapsulated in ct.
func DecapsulateKyber1024(priv, ct []byte) ([]byte, error) {
	sk, err := kyberScheme.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("kyber1024: unpacking private key: %w", err)
	}
	return kyberScheme.Decapsulate(sk, ct)
}
