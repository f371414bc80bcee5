package app

import (
	"bytes"
	"testing"

	"github.com/katzenpost/hpqc/rand"
	"github.com/stretchr/testify/require"

	"pqmudh/internal/domain"
)

func TestSelfTest(t *testing.T) {
	rng, err := rand.NewDeterministicRandReader(bytes.Repeat([]byte{0x5e}, 32))
	require.NoError(t, err)

	results, err := SelfTest(rng)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		require.Len(t, r.Keys, 3)
		require.Equal(t, r.Keys[domain.VariantPQMuDH], r.Keys[domain.VariantPQMuDHPrecomputed])
		require.NotEqual(t, r.Keys[domain.VariantPQXDH], r.Keys[domain.VariantPQMuDH])
	}
}

func TestSelfTest_ShortRNG(t *testing.T) {
	_, err := SelfTest(bytes.NewReader(make([]byte, 64)))
	require.Error(t, err)
}
