// Package sessionstartcmd implements the `memento session-start` hook command.
package sessionstartcmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-ports/memento/cmd/memento/shared"
)

// Command implements `memento session-start`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the session-start command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "session-start",
		Short: "SessionStart hook: print additional context JSON for Claude Code",
		Long: `Reads hooks/references/memento-session-start.md under $CLAUDE_PLUGIN_ROOT
(or the directory holding this binary) and prints it as the SessionStart
additionalContext. A missing reference prints an empty context.

Register via 'memento setup claude-code'.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	e, err := c.ctx.Emitter()
	if err != nil {
		return err
	}
	log.Debug().Str("plugin_root", e.PluginRoot).Msg("session-start")
	return e.Emit(cmd.OutOrStdout())
}
