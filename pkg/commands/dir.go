package commands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dirsh/pkg/types"
)

type listDirCommand struct {
	base
	env *Env
}

func (c *listDirCommand) Execute(cursor string) types.Outcome {
	entries, err := c.env.FS.ReadDir(cursor)
	if err != nil {
		return types.TextOutcome("Error with listing directory: " + cursor + "!")
	}

	var lines []string
	for _, entry := range entries {
		if !c.env.Config.ShowHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-32s size: %d", entry.Name(), info.Size()))
	}
	return types.TextOutcome(strings.Join(lines, "\n"))
}

func (c *listDirCommand) Usage() string {
	return `Press "listDir" to show current directory's content`
}

type makeDirCommand struct {
	base
	env *Env
}

func (c *makeDirCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 1 {
		return types.TextOutcome(c.Usage())
	}

	path := resolve(cursor, c.args[0])
	if err := c.env.FS.Mkdir(path, 0755); err != nil {
		return types.TextOutcome("Error with creating new directory: " + c.args[0] + "!")
	}
	return types.TextOutcome("")
}

func (c *makeDirCommand) Usage() string {
	return `Press "makeDir <newDirectoryName>" to create new directory`
}
