package hybrid_test

import (
	"bytes"
	"testing"

	"github.com/katzenpost/hpqc/rand"
	"github.com/stretchr/testify/require"

	"pqmudh/internal/crypto"
	"pqmudh/internal/domain"
	"pqmudh/internal/domain/types"
	"pqmudh/internal/protocol/hybrid"
)

func newRNG(t *testing.T, seed byte) *rand.DeterministicRandReader {
	t.Helper()
	key := bytes.Repeat([]byte{seed}, 32)
	rng, err := rand.NewDeterministicRandReader(key)
	require.NoError(t, err)
	return rng
}

func TestAugment_NoKEMKey(t *testing.T) {
	in := bytes.Repeat([]byte{0xff}, 64)
	out, hasKEM, err := hybrid.Augment(in, types.None[domain.KEMPublicKey](), newRNG(t, 1))
	require.NoError(t, err)
	require.False(t, hasKEM)
	require.Equal(t, in, out)
}

func TestAugment_AppendsSharedSecret(t *testing.T) {
	pub, priv, err := crypto.GenerateKyber1024(newRNG(t, 2))
	require.NoError(t, err)

	in := bytes.Repeat([]byte{0xff}, 64)
	out, hasKEM, err := hybrid.Augment(bytes.Clone(in), types.Some(pub), newRNG(t, 3))
	require.NoError(t, err)
	require.True(t, hasKEM)
	require.Len(t, out, len(in)+crypto.KyberSharedKeySize)
	require.Equal(t, in, out[:len(in)])

	// Same seed, same ciphertext: the appended secret must decapsulate back.
	ct, ss, err := crypto.EncapsulateKyber1024(pub, newRNG(t, 3))
	require.NoError(t, err)
	require.Equal(t, ss, out[len(in):])
	got, err := crypto.DecapsulateKyber1024(priv, ct)
	require.NoError(t, err)
	require.Equal(t, ss, got)
}

func TestAugment_MalformedKey(t *testing.T) {
	_, _, err := hybrid.Augment(nil, types.Some(domain.KEMPublicKey{1, 2, 3}), newRNG(t, 4))
	require.ErrorIs(t, err, hybrid.ErrEncapsulation)
}
