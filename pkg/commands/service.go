package commands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dirsh/pkg/types"
)

// noSuchCommand is the unknown-command sentinel. Both unrecognized names
// and empty input lines resolve to it.
type noSuchCommand struct {
	base
}

func newNoSuchCommand() Command {
	return &noSuchCommand{base: base{name: SentinelName}}
}

func (c *noSuchCommand) Execute(cursor string) types.Outcome {
	return types.TextOutcome("No such command!\nShow available commands: listCommands")
}

func (c *noSuchCommand) Usage() string {
	return ""
}

type exitCommand struct {
	base
}

func (c *exitCommand) Execute(cursor string) types.Outcome {
	return types.ExitOutcome()
}

func (c *exitCommand) Usage() string {
	return `Press "exit" to exit from command line`
}

type listCommandsCommand struct {
	base
	registry *Registry
}

func (c *listCommandsCommand) Execute(cursor string) types.Outcome {
	lines := []string{"Command line contains next commands: "}
	for i, name := range c.registry.Names() {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, name))
	}
	return types.TextOutcome(strings.Join(lines, "\n"))
}

func (c *listCommandsCommand) Usage() string {
	return `Press "listCommands" to show all available commands`
}

type helpCommand struct {
	base
	registry *Registry
}

func (c *helpCommand) Execute(cursor string) types.Outcome {
	if len(c.args) > 0 {
		if usage, ok := c.registry.UsageOf(c.args[0]); ok {
			return types.TextOutcome(usage)
		}
		return types.TextOutcome(fmt.Sprintf("Bad argument! No such command %q!", c.args[0]))
	}
	return types.TextOutcome(c.Usage())
}

func (c *helpCommand) Usage() string {
	return "Press \"help\" to show usage of command\nUsage: help <command>"
}
