package commands

import (
	"context"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"pqmudh/internal/app"
)

var (
	configFile string
	wire       *app.Wire

	// overrides applied on top of the config file
	count       int
	kyber       bool
	opkb        bool
	seed        string
	reportFile  string
	metricsFile string
	logLevel    string
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "pqmudh",
		Short:         "Benchmark the pqMuDH combiner against pqXDH",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Default()
			if configFile != "" {
				var err error
				if cfg, err = app.LoadFile(configFile); err != nil {
					return err
				}
			}
			applyOverrides(cmd, cfg)
			if err := cfg.FixupAndValidate(); err != nil {
				return err
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&seed, "seed", "", "hex encoded 32 byte seed for a reproducible run")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (ERROR, WARNING, NOTICE, INFO, DEBUG)")

	root.AddCommand(runCmd(), selftestCmd())
	return root
}

// applyOverrides copies flags the user set explicitly into cfg.
func applyOverrides(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Benchmark.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Lookup("count") == nil {
		return
	}
	if flags.Changed("count") {
		cfg.Benchmark.Count = count
	}
	if flags.Changed("kyber") {
		cfg.Benchmark.Kyber = kyber
	}
	if flags.Changed("opkb") {
		cfg.Benchmark.OneTimePreKey = opkb
	}
	if flags.Changed("report") {
		cfg.Benchmark.ReportFile = reportFile
	}
	if flags.Changed("metrics") {
		cfg.Benchmark.MetricsFile = metricsFile
	}
}

func Execute() error {
	return fang.Execute(
		context.Background(),
		newRoot(),
		fang.WithVersion(versioninfo.Short()),
	)
}
