package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/kat"
)

func newSelftestCmd(opts *options) *cobra.Command {
	var vectors string
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the known-answer vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := kat.Default()
			if vectors != "" {
				f, err = kat.Load(vectors)
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range f.Run() {
				if r.Err != nil {
					failed++
					opts.logger.Error("vector failed", zap.String("curve", r.Curve), zap.String("check", r.Name), zap.Error(r.Err))
					continue
				}
				opts.logger.Debug("vector passed", zap.String("curve", r.Curve), zap.String("check", r.Name))
			}
			total := len(f.Vectors) + len(f.Generators)
			opts.logger.Info("self test finished", zap.Int("checks", total), zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %d checks\n", total)
			return nil
		},
	}
	cmd.Flags().StringVar(&vectors, "vectors", "", "YAML vector file (default: built-in vectors)")
	return cmd
}
