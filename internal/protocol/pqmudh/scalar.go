package pqmudh

import (
	"math/big"

	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// ScalarSize is the width of a serialized exponent.
const ScalarSize = 32

// Scalar is a little-endian exponent, zero-padded to 32 bytes.
type Scalar [ScalarSize]byte

// GroupOrderBytes is the order l = 2^252 + 27742317777372353535851937790883648493
// of the prime-order subgroup of edwards25519, little-endian.
var GroupOrderBytes = Scalar{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// groupOrder is GroupOrderBytes as an integer. It is never written to.
var groupOrder = leToInt(GroupOrderBytes[:])

// Exponents are the reduced scalars that multiply the responder's keys.
type Exponents struct {
	// SPK multiplies the signed pre-key: a1·ik + a3·ek.
	SPK Scalar
	// Identity multiplies the identity key: a2·ek.
	Identity Scalar
	// OneTime multiplies the one-time pre-key: a4·ek.
	OneTime types.Optional[Scalar]
}

// CombineExponents weights Alice's private keys with the transcript's
// randomizers. Products are formed in full and reduced modulo l afterwards.
func CombineExponents(t *Transcript, params domain.HandshakeParameters) Exponents {
	ik := leToInt(params.OurIdentityKeyPair().Private.Slice())
	ek := leToInt(params.OurBaseKeyPair().Private.Slice())

	randomizer := func(index byte) *big.Int {
		a := t.Randomizer(index)
		return leToInt(a[:])
	}

	exp1 := new(big.Int).Mul(randomizer(RandomizerIdentitySPK), ik)
	exp3 := new(big.Int).Mul(randomizer(RandomizerBaseSPK), ek)
	// Both terms multiply SPKb, so they share one exponent.
	exp1.Add(exp1, exp3)
	exp2 := new(big.Int).Mul(randomizer(RandomizerBaseIdentity), ek)

	exps := Exponents{
		SPK:      reduce(exp1),
		Identity: reduce(exp2),
	}
	if params.TheirOneTimePreKey().IsSome() {
		exp4 := new(big.Int).Mul(randomizer(RandomizerOneTime), ek)
		exps.OneTime = types.Some(reduce(exp4))
	}
	return exps
}

// Int returns s as an integer.
func (s Scalar) Int() *big.Int { return leToInt(s[:]) }

// reduce returns n mod l as a Scalar. n is overwritten.
func reduce(n *big.Int) Scalar {
	n.Mod(n, groupOrder)
	var be [ScalarSize]byte
	n.FillBytes(be[:])
	var s Scalar
	for i := range be {
		s[i] = be[ScalarSize-1-i]
	}
	return s
}

func leToInt(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i := range le {
		be[i] = le[len(le)-1-i]
	}
	return new(big.Int).SetBytes(be)
}
