package pqmudh

import (
	"crypto/sha256"
	"encoding"

	"pqmudh/internal/domain"
)

// Randomizer indices. RandomizerOneTime is only derived when the responder
// published a one-time pre-key.
const (
	RandomizerIdentitySPK  byte = 1
	RandomizerBaseIdentity byte = 2
	RandomizerBaseSPK      byte = 3
	RandomizerOneTime      byte = 4
)

// Transcript is the hash of the handshake's public keys, frozen as a
// snapshot of the SHA-256 state.
type Transcript struct {
	state []byte
}

// NewTranscript absorbs the public keys of params in the fixed order
// IKa, IKb, EKa, SPKb and, if present, OPKb.
func NewTranscript(params domain.HandshakeParameters) *Transcript {
	h := sha256.New()
	h.Write(params.OurIdentityKeyPair().Public.Slice())
	h.Write(params.TheirIdentityKey().Slice())
	h.Write(params.OurBaseKeyPair().Public.Slice())
	h.Write(params.TheirSignedPreKey().Slice())
	if opk, ok := params.TheirOneTimePreKey().Get(); ok {
		h.Write(opk.Slice())
	}

	state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic("pqmudh: BUG: sha256 state is not marshalable: " + err.Error())
	}
	return &Transcript{state: state}
}

// Randomizer returns SHA-256(transcript || index), computed on a fresh copy
// of the frozen state so every index depends on the prefix alone.
func (t *Transcript) Randomizer(index byte) [sha256.Size]byte {
	h := sha256.New()
	if err := h.(encoding.BinaryUnmarshaler).UnmarshalBinary(t.state); err != nil {
		panic("pqmudh: BUG: restoring sha256 state: " + err.Error())
	}
	h.Write([]byte{index})

	var out [sha256.Size]byte
	h.Sum(out[:0])
	return out
}
