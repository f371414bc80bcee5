package pqmudh

import (
	"filippo.io/edwards25519"

	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// windowBits is the width of the fixed window used by CombinePrecomputed.
const windowBits = 4

// multiples holds [0]P, [1]P, ..., [15]P.
type multiples [1 << windowBits]edwards25519.Point

func newMultiples(p *edwards25519.Point) *multiples {
	t := new(multiples)
	t[0].Set(edwards25519.NewIdentityPoint())
	t[1].Set(p)
	for k := 2; k < len(t); k++ {
		t[k].Add(&t[k-1], p)
	}
	return t
}

// CombinePrecomputed computes the same point as Combine with a 4-bit
// fixed-window simultaneous multiplication over precomputed tables of small
// multiples of each key. It trades 14 table additions per key for roughly a
// quarter of the conditional additions.
func CombinePrecomputed(
	exps Exponents,
	spk, identity domain.X25519Public,
	opk types.Optional[domain.X25519Public],
) (*edwards25519.Point, error) {
	b, err := liftBases(spk, identity, opk)
	if err != nil {
		return nil, err
	}
	return combinePrecomputed(exps, b), nil
}

func combinePrecomputed(exps Exponents, b bases) *edwards25519.Point {
	type term struct {
		exp   *Scalar
		table *multiples
	}
	terms := make([]term, 0, 3)
	terms = append(terms,
		term{&exps.SPK, newMultiples(b.spk)},
		term{&exps.Identity, newMultiples(b.identity)},
	)
	opkPoint, hasOPK := b.oneTime.Get()
	exp4, hasExp4 := exps.OneTime.Get()
	if hasOPK && hasExp4 {
		terms = append(terms, term{&exp4, newMultiples(opkPoint)})
	}

	acc := edwards25519.NewIdentityPoint()
	for i := ScalarSize - 1; i >= 0; i-- {
		for _, shift := range [...]uint{windowBits, 0} {
			for d := 0; d < windowBits; d++ {
				acc.Add(acc, acc)
			}
			for _, tm := range terms {
				if digit := (tm.exp[i] >> shift) & (1<<windowBits - 1); digit != 0 {
					acc.Add(acc, &tm.table[digit])
				}
			}
		}
	}
	// Combine doubles once more after the last bit; match it.
	return acc.Add(acc, acc)
}
