package pqmudh

import (
	"filippo.io/edwards25519"

	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// Combine computes the combined point for exps over the responder's keys.
//
// The accumulator walks bit 255 down to bit 0. At each bit the keys whose
// exponent bit is set are added, then the accumulator is doubled once, so all
// terms share a single chain of doublings. The one-time pre-key term is only
// visited when both opk and exps.OneTime are present.
func Combine(
	exps Exponents,
	spk, identity domain.X25519Public,
	opk types.Optional[domain.X25519Public],
) (*edwards25519.Point, error) {
	b, err := liftBases(spk, identity, opk)
	if err != nil {
		return nil, err
	}
	return combine(exps, b), nil
}

func combine(exps Exponents, b bases) *edwards25519.Point {
	opkPoint, hasOPK := b.oneTime.Get()
	exp4, hasExp4 := exps.OneTime.Get()
	hasOPK = hasOPK && hasExp4

	acc := edwards25519.NewIdentityPoint()
	for i := ScalarSize - 1; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			mask := byte(1) << j
			if exps.SPK[i]&mask != 0 {
				acc.Add(acc, b.spk)
			}
			if exps.Identity[i]&mask != 0 {
				acc.Add(acc, b.identity)
			}
			if hasOPK && exp4[i]&mask != 0 {
				acc.Add(acc, opkPoint)
			}
			acc.Add(acc, acc)
		}
	}
	return acc
}
