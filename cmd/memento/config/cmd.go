// Package configcmd implements the `memento config` command.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/memento/cmd/memento/shared"
	"github.com/go-ports/memento/internal/config"
)

// Command implements `memento config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show the resolved plugin root and reference document",
		Args:  cobra.NoArgs,
		RunE:  c.runShow,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	root, source, err := c.ctx.PluginRoot()
	if err != nil {
		return err
	}
	settings, err := config.Describe(root, source)
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}
