package types

// HandshakeParameters is everything the initiator (Alice) needs to run one
// handshake against a responder's (Bob's) published keys.
//
// Values are immutable once built: the With* methods return modified copies.
type HandshakeParameters struct {
	ourIdentity KeyPair
	ourBase     KeyPair

	theirIdentity     X25519Public
	theirSignedPreKey X25519Public
	theirRatchetKey   X25519Public
	theirOneTimePre   Optional[X25519Public]
	theirKEMPreKey    Optional[KEMPublicKey]
}

// NewHandshakeParameters builds parameters without a one-time pre-key and
// without a KEM pre-key.
func NewHandshakeParameters(
	ourIdentity KeyPair,
	ourBase KeyPair,
	theirIdentity X25519Public,
	theirSignedPreKey X25519Public,
	theirRatchetKey X25519Public,
) HandshakeParameters {
	return HandshakeParameters{
		ourIdentity:       ourIdentity,
		ourBase:           ourBase,
		theirIdentity:     theirIdentity,
		theirSignedPreKey: theirSignedPreKey,
		theirRatchetKey:   theirRatchetKey,
	}
}

// WithOneTimePreKey returns a copy carrying Bob's one-time pre-key.
func (p HandshakeParameters) WithOneTimePreKey(opk X25519Public) HandshakeParameters {
	p.theirOneTimePre = Some(opk)
	return p
}

// WithoutOneTimePreKey returns a copy with the one-time pre-key removed.
func (p HandshakeParameters) WithoutOneTimePreKey() HandshakeParameters {
	p.theirOneTimePre = None[X25519Public]()
	return p
}

// WithKEMPreKey returns a copy carrying Bob's KEM pre-key.
func (p HandshakeParameters) WithKEMPreKey(pk KEMPublicKey) HandshakeParameters {
	own := make(KEMPublicKey, len(pk))
	copy(own, pk)
	p.theirKEMPreKey = Some(own)
	return p
}

// WithoutKEMPreKey returns a copy with the KEM pre-key removed.
func (p HandshakeParameters) WithoutKEMPreKey() HandshakeParameters {
	p.theirKEMPreKey = None[KEMPublicKey]()
	return p
}

// OurIdentityKeyPair returns Alice's identity key pair (IK_A).
func (p HandshakeParameters) OurIdentityKeyPair() KeyPair { return p.ourIdentity }

// OurBaseKeyPair returns Alice's ephemeral key pair (EK_A).
func (p HandshakeParameters) OurBaseKeyPair() KeyPair { return p.ourBase }

// TheirIdentityKey returns Bob's identity key (IK_B).
func (p HandshakeParameters) TheirIdentityKey() X25519Public { return p.theirIdentity }

// TheirSignedPreKey returns Bob's signed pre-key (SPK_B).
func (p HandshakeParameters) TheirSignedPreKey() X25519Public { return p.theirSignedPreKey }

// TheirRatchetKey returns Bob's ratchet key. Key agreement does not use it.
func (p HandshakeParameters) TheirRatchetKey() X25519Public { return p.theirRatchetKey }

// TheirOneTimePreKey returns Bob's one-time pre-key (OPK_B), if published.
func (p HandshakeParameters) TheirOneTimePreKey() Optional[X25519Public] {
	return p.theirOneTimePre
}

// TheirKEMPreKey returns Bob's KEM pre-key, if published.
func (p HandshakeParameters) TheirKEMPreKey() Optional[KEMPublicKey] {
	return p.theirKEMPreKey
}
