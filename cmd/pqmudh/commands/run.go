package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pqmudh/internal/domain"
)

var verbose bool

var descriptions = map[domain.Variant]string{
	domain.VariantPQXDH:             "Plain pqXDH key exchange",
	domain.VariantPQMuDH:            "pqMuDH key exchange",
	domain.VariantPQMuDHPrecomputed: "pqMuDH key exchange with preprocessing",
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time every key agreement",
		Long: "Time every key agreement over freshly generated keys. With --count 1 the\n" +
			"single timings are printed, otherwise the mean and standard deviation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config.Benchmark
			report, err := wire.Benchmark.Run(cfg.Count, wire.Options())
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, verbose)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of rounds to run and average")
	cmd.Flags().BoolVarP(&kyber, "kyber", "k", false, "use Kyber1024 key encapsulation during key exchange")
	cmd.Flags().BoolVarP(&opkb, "opkb", "o", false, "use a one-time pre-key for Bob during key exchange")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "describe each timing")
	cmd.Flags().StringVar(&reportFile, "report", "", "write a JSON report to this file")
	cmd.Flags().StringVar(&metricsFile, "metrics", "", "write Prometheus metrics to this file")
	return cmd
}

func printReport(w io.Writer, report domain.Report, verbose bool) {
	for _, s := range report.Summaries {
		desc, ok := descriptions[s.Variant]
		if !ok {
			desc = s.Variant.String()
		}
		switch {
		case report.Count > 1:
			fmt.Fprintf(w, "%s took %.1f(%.1f) µs on average.\n", desc, s.MeanUS, s.StdDev)
		case verbose:
			fmt.Fprintf(w, "%s took %.0f µs.\n", desc, s.MeanUS)
		default:
			fmt.Fprintf(w, "%.0f\n", s.MeanUS)
		}
	}
}
