package interfaces

import (
	"io"

	domaintypes "pqmudh/internal/domain/types"
)

// Agreement is one initiator-side key-agreement implementation.
//
// Agree must not retain params or rng past its return. rng is consumed only
// by randomized steps such as KEM encapsulation.
type Agreement interface {
	Variant() domaintypes.Variant
	Agree(params domaintypes.HandshakeParameters, rng io.Reader) (domaintypes.DerivedKey, error)
}
