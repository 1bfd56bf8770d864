package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGeneratorsCmd(opts *options) *cobra.Command {
	var (
		count int
		seed  string
	)
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "Derive points with unknown discrete logarithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.lookupCurve()
			if err != nil {
				return err
			}
			var rng io.Reader
			if seed != "" {
				b, err := hex.DecodeString(seed)
				if err != nil || len(b) != 32 {
					return fmt.Errorf("seed must be 32 hex encoded bytes")
				}
				rng = bytes.NewReader(b)
			}

			gens, err := c.Generators(count, rng)
			if err != nil {
				return err
			}
			for _, g := range gens {
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(g.Bytes()))
			}
			opts.logger.Info("derived generators",
				zap.String("curve", c.Name()),
				zap.Int("count", len(gens)),
				zap.Bool("seeded", rng != nil),
			)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of generators")
	cmd.Flags().StringVar(&seed, "seed", "", "32-byte hex seed (default: fixed derivation)")
	return cmd
}
