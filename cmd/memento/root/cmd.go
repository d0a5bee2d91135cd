// Package rootcmd wires the root cobra.Command for the memento binary.
package rootcmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	configcmd "github.com/go-ports/memento/cmd/memento/config"
	mcpcmd "github.com/go-ports/memento/cmd/memento/mcp"
	sessionstartcmd "github.com/go-ports/memento/cmd/memento/sessionstart"
	setupcmd "github.com/go-ports/memento/cmd/memento/setup"
	"github.com/go-ports/memento/cmd/memento/shared"
	uninstallcmd "github.com/go-ports/memento/cmd/memento/uninstall"
	"github.com/go-ports/memento/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the memento CLI.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext builds the root command around a caller-supplied context.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	sessionStart := sessionstartcmd.New(ctx)

	// Claude Code runs the bare binary as the SessionStart hook.
	root := &cobra.Command{
		Use:           "memento",
		Short:         "Memento: session-start context for Claude Code",
		Version:       buildinfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if ctx.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: sessionStart.Cmd().RunE,
	}

	root.PersistentFlags().BoolVar(&ctx.Debug, "debug", false, "Enable debug logging on stderr")

	root.AddCommand(
		sessionStart.Cmd(),
		configcmd.New(ctx).Cmd(),
		setupcmd.New(ctx).Cmd(),
		uninstallcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
