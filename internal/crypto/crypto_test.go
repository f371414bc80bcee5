package crypto_test

import (
	"testing"

	"github.com/katzenpost/hpqc/rand"
	"github.com/stretchr/testify/require"

	"pqmudh/internal/crypto"
)

func newRNG(t *testing.T, seed byte) *rand.DeterministicRandReader {
	t.Helper()
	key := make([]byte, 32)
	key[0] = seed
	rng, err := rand.NewDeterministicRandReader(key)
	require.NoError(t, err)
	return rng
}

func TestGenerateX25519_Deterministic(t *testing.T) {
	a, err := crypto.GenerateX25519(newRNG(t, 1))
	require.NoError(t, err)
	b, err := crypto.GenerateX25519(newRNG(t, 1))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Clamped per RFC 7748.
	require.Zero(t, a.Private[0]&7)
	require.Zero(t, a.Private[31]&128)
	require.NotZero(t, a.Private[31]&64)
}

func TestDH_Symmetric(t *testing.T) {
	rng := newRNG(t, 2)
	alice, err := crypto.GenerateX25519(rng)
	require.NoError(t, err)
	bob, err := crypto.GenerateX25519(rng)
	require.NoError(t, err)

	ab, err := crypto.DH(alice.Private, bob.Public)
	require.NoError(t, err)
	ba, err := crypto.DH(bob.Private, alice.Public)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestKyber1024_RoundTrip(t *testing.T) {
	rng := newRNG(t, 3)
	pub, priv, err := crypto.GenerateKyber1024(rng)
	require.NoError(t, err)

	ct, ss, err := crypto.EncapsulateKyber1024(pub, rng)
	require.NoError(t, err)
	require.Len(t, ss, crypto.KyberSharedKeySize)

	got, err := crypto.DecapsulateKyber1024(priv, ct)
	require.NoError(t, err)
	require.Equal(t, ss, got)
}

func TestKyber1024_EncapsulationFollowsRNG(t *testing.T) {
	pub, _, err := crypto.GenerateKyber1024(newRNG(t, 4))
	require.NoError(t, err)

	ct1, ss1, err := crypto.EncapsulateKyber1024(pub, newRNG(t, 5))
	require.NoError(t, err)
	ct2, ss2, err := crypto.EncapsulateKyber1024(pub, newRNG(t, 5))
	require.NoError(t, err)
	require.Equal(t, ct1, ct2)
	require.Equal(t, ss1, ss2)

	_, ss3, err := crypto.EncapsulateKyber1024(pub, newRNG(t, 6))
	require.NoError(t, err)
	require.NotEqual(t, ss1, ss3)
}

func TestKyber1024_MalformedPublicKey(t *testing.T) {
	_, _, err := crypto.EncapsulateKyber1024([]byte("short"), newRNG(t, 7))
	require.Error(t, err)
}
