package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"pqmudh/internal/app"
)

func selftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check that both combiners agree on every parameter branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.SelfTest(wire.RNG)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "kyber=%-5v opk=%-5v ok\n", r.Options.Kyber, r.Options.OneTimePreKey)
				for _, a := range app.Agreements() {
					key := r.Keys[a.Variant()]
					fmt.Fprintf(out, "  %-20s %s\n", a.Variant(), hex.EncodeToString(key[:8]))
				}
			}
			return nil
		},
	}
	return cmd
}
