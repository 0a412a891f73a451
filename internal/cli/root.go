// Package cli is the cobra command tree of the roster binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jask/roster/internal/config"
	"github.com/jask/roster/internal/roster"
	"github.com/jask/roster/internal/tui"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Interactive reports whether the TUI can take over the terminal.
	// If nil, stdout is checked with isatty.
	Interactive func() bool
}

// NewRootCommand creates the root command for the roster CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Interactive: stdoutIsTerminal})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.Interactive == nil {
		opts.Interactive = stdoutIsTerminal
	}

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Collect student names and hand them to a result screen",
		Long: `roster opens a small two-screen terminal app. Type names on the first
screen, press enter to add each one, then ctrl+n to move to the result
screen, which receives the list as a JSON token.

When stdout is not a terminal the seeded list is printed instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $ROSTER_CONFIG or ~/.config/roster/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

func runRoot(opts *RootOptions, cmd *cobra.Command) error {
	interactive := opts.Interactive()
	cfg, logger, closeLog, err := opts.prepare(cmd, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	if !interactive {
		logger.Debug("stdout is not a terminal, printing seed")
		return writeRecords(cmd.OutOrStdout(), roster.NewStore(cfg.Seed.Names...).Snapshot(), formatText)
	}

	programOpts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logger.Info("starting tui", "seed", len(cfg.Seed.Names), "result_view", cfg.UI.ResultView)
	if _, err := tea.NewProgram(tui.New(cfg, logger), programOpts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// prepare loads the config and installs the logger for one command run.
func (o *RootOptions) prepare(cmd *cobra.Command, tuiMode bool) (config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, closeLog, err := newLogger(cfg.Log, o.Verbose, cmd.ErrOrStderr(), tuiMode)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, closeLog, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
