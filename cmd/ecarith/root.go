package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-ecarith/pkg/curves"
	"github.com/smallyu/go-ecarith/pkg/curves/secp256k1"
)

type options struct {
	verbose   bool
	logFormat string
	curve     string
	logger    *zap.Logger
}

func (o *options) lookupCurve() (curves.Curve, error) {
	return curves.ByName(o.curve)
}

// newRootCmd builds the command tree. A nil logger is replaced by one
// configured from --verbose and --log-format.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{logger: logger}
	root := &cobra.Command{
		Use:          "ecarith",
		Short:        "Elliptic curve arithmetic tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			l, err := newLogger(opts.logFormat, opts.verbose, zapcore.Lock(os.Stderr))
			if err != nil {
				return err
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.StringVar(&opts.logFormat, "log-format", formatJSON, "log encoding ("+strings.Join([]string{formatJSON, formatConsole, formatLogfmt}, ", ")+")")
	flags.StringVar(&opts.curve, "curve", secp256k1.Name, "curve name ("+strings.Join(curves.Names(), ", ")+")")

	root.AddCommand(newMulCmd(opts), newGeneratorsCmd(opts), newSelftestCmd(opts))
	return root
}
