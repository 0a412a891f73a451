package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/roster/internal/codec"
	"github.com/jask/roster/internal/nav"
	"github.com/jask/roster/internal/roster"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	WithSeed bool
	AsRoute  bool
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode [names...]",
		Short: "Print the transfer token for a list of names",
		Long: `Build a roster from the given names and print its transfer token.
Blank names are skipped.

Example:
  roster encode Budi Ayu
  roster encode --seed Budi
  roster encode --route "Tom & Jerry"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.WithSeed, "seed", false, "start from the configured seed names")
	cmd.Flags().BoolVar(&opts.AsRoute, "route", false, "print the result route instead of the bare token")

	return cmd
}

func runEncode(opts *EncodeOptions, cmd *cobra.Command, names []string) error {
	cfg, logger, closeLog, err := opts.prepare(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := roster.NewStore()
	if opts.WithSeed {
		store = roster.NewStore(cfg.Seed.Names...)
	}
	for _, name := range names {
		if !store.Append(name) {
			logger.Debug("skipping blank name")
		}
	}

	if opts.AsRoute {
		tr, ok := nav.NewGate(logger).Navigate(store)
		if !ok {
			return fmt.Errorf("encode: %w", nav.ErrEmptyStore)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tr.Route)
		return err
	}

	token, err := codec.Encode(store.Snapshot())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
