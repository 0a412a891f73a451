package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/roster/internal/codec"
	"github.com/jask/roster/internal/nav"
	"github.com/jask/roster/internal/roster"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Route  string
	Format string
	Strict bool
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode [token]",
		Short: "Print the records carried by a transfer token",
		Long: `Decode a transfer token, or the listData argument of a result route,
and print its records. A malformed token prints nothing unless --strict
is given.

Example:
  roster decode '[{"name":"Tanu"}]'
  roster decode --format yaml --route 'resultContent/?listData=%5B%5D'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if (opts.Route == "") == (len(args) == 0) {
				return errors.New("give either a token argument or --route")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Route, "route", "", "result route to read the token from")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "output format (text|json|yaml)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on a malformed token")

	return cmd
}

func runDecode(opts *DecodeOptions, cmd *cobra.Command, args []string) error {
	_, logger, closeLog, err := opts.prepare(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	var token string
	if opts.Route != "" {
		token, err = nav.ParseResultRoute(opts.Route)
		if err != nil {
			return err
		}
	} else {
		token = args[0]
	}

	var records []roster.Record
	if opts.Strict {
		records, err = codec.DecodeStrict(token)
		if err != nil {
			return err
		}
	} else {
		records = codec.Decode(token)
	}
	logger.Debug("decoded token", "records", len(records))

	return writeRecords(cmd.OutOrStdout(), records, opts.Format)
}
