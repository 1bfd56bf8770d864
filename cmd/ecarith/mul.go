package main

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMulCmd(opts *options) *cobra.Command {
	var scalar, point string
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply a point by a scalar",
		Long:  `Prints the canonical encoding of scalar*point. The point defaults to the curve's base point.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.lookupCurve()
			if err != nil {
				return err
			}
			k, ok := new(big.Int).SetString(scalar, 0)
			if !ok {
				return fmt.Errorf("invalid scalar %q", scalar)
			}

			base := c.BasePoint()
			if point != "" {
				b, err := hex.DecodeString(point)
				if err != nil {
					return fmt.Errorf("decode point: %w", err)
				}
				if base, err = c.NewPointFromBytes(b); err != nil {
					return err
				}
			}

			res := hex.EncodeToString(base.ScalarMult(c.NewScalarFromBigInt(k)).Bytes())
			opts.logger.Info("scalar multiplication",
				zap.String("curve", c.Name()),
				zap.Int("scalar_bits", k.BitLen()),
				zap.Bool("base_point", point == ""),
			)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&scalar, "scalar", "", "scalar in decimal or 0x-prefixed hex")
	cmd.Flags().StringVar(&point, "point", "", "hex encoded point (default: base point)")
	_ = cmd.MarkFlagRequired("scalar")
	return cmd
}
