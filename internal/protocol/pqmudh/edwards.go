package pqmudh

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
)

// ErrNoEdwardsLift is returned when a Montgomery u-coordinate has no
// corresponding point on edwards25519.
var ErrNoEdwardsLift = errors.New("pqmudh: montgomery point has no edwards lift")

// edwardsSign is the sign bit used for every lift. The Montgomery form drops
// the sign of x, so both peers must agree on one; the positive root is used.
const edwardsSign = 0

var (
	feOne      = new(field.Element).One()
	feMinusOne = new(field.Element).Negate(feOne)
)

// MontgomeryToEdwards maps u to the Edwards point with y = (u-1)/(u+1) and
// the given x sign bit. The high bit of u is ignored, as in RFC 7748.
func MontgomeryToEdwards(u domain.X25519Public, sign byte) (*edwards25519.Point, error) {
	fu, err := new(field.Element).SetBytes(u[:])
	if err != nil {
		return nil, err
	}
	if fu.Equal(feMinusOne) == 1 {
		return nil, fmt.Errorf("%w: u = -1", ErrNoEdwardsLift)
	}

	num := new(field.Element).Subtract(fu, feOne)
	den := new(field.Element).Add(fu, feOne)
	y := new(field.Element).Multiply(num, den.Invert(den))

	enc := y.Bytes()
	enc[31] ^= (sign & 1) << 7
	p, err := new(edwards25519.Point).SetBytes(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoEdwardsLift, err)
	}
	return p, nil
}

// bases are the responder's keys in Edwards form.
type bases struct {
	spk, identity *edwards25519.Point
	oneTime       types.Optional[*edwards25519.Point]
}

func liftBases(spk, identity domain.X25519Public, oneTime types.Optional[domain.X25519Public]) (bases, error) {
	var (
		b   bases
		err error
	)
	if b.spk, err = MontgomeryToEdwards(spk, edwardsSign); err != nil {
		return b, fmt.Errorf("signed pre-key: %w", err)
	}
	if b.identity, err = MontgomeryToEdwards(identity, edwardsSign); err != nil {
		return b, fmt.Errorf("identity key: %w", err)
	}
	if opk, ok := oneTime.Get(); ok {
		p, err := MontgomeryToEdwards(opk, edwardsSign)
		if err != nil {
			return b, fmt.Errorf("one-time pre-key: %w", err)
		}
		b.oneTime = types.Some(p)
	}
	return b, nil
}
