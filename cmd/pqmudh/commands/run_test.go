package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"pqmudh/internal/domain"
)

func TestPrintReport(t *testing.T) {
	single := domain.Report{
		Count: 1,
		Summaries: []domain.Summary{
			{Variant: domain.VariantPQXDH, Samples: 1, MeanUS: 120},
			{Variant: domain.VariantPQMuDH, Samples: 1, MeanUS: 95},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, single, false)
	require.Equal(t, "120\n95\n", buf.String())

	buf.Reset()
	printReport(&buf, single, true)
	require.Equal(t, "Plain pqXDH key exchange took 120 µs.\npqMuDH key exchange took 95 µs.\n", buf.String())

	multi := domain.Report{
		Count: 3,
		Summaries: []domain.Summary{
			{Variant: domain.VariantPQMuDHPrecomputed, Samples: 3, MeanUS: 20, StdDev: 10},
		},
	}
	buf.Reset()
	printReport(&buf, multi, false)
	require.Equal(t, "pqMuDH key exchange with preprocessing took 20.0(10.0) µs on average.\n", buf.String())
}

func TestRoot_RunAndSelftest(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--count", "2", "--kyber", "--opkb", "--seed", "0101010101010101010101010101010101010101010101010101010101010101", "--log-level", "ERROR"},
		{"selftest", "--seed", "0202020202020202020202020202020202020202020202020202020202020202", "--log-level", "ERROR"},
	} {
		root := newRoot()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute(), args[0])
		require.NotEmpty(t, out.String())
	}
}
