package commands

import (
	"github.com/arthur-debert/dirsh/pkg/types"
)

type currentPathCommand struct {
	base
}

func (c *currentPathCommand) Execute(cursor string) types.Outcome {
	return types.TextOutcome(cursor)
}

func (c *currentPathCommand) Usage() string {
	return `Press "currentPath" to show current absolute path in file system`
}

// changePathCommand moves the session cursor. The new path must be an
// existing directory; anything else leaves the cursor unchanged. Either
// way the outcome carries a cursor effect, so the loop never prints.
type changePathCommand struct {
	base
	env *Env
}

func (c *changePathCommand) Execute(cursor string) types.Outcome {
	if len(c.args) > 0 {
		path := resolve(cursor, c.args[0])
		if info, err := c.env.FS.Stat(path); err == nil && info.IsDir() {
			return types.CursorOutcome(path)
		}
	}
	return types.CursorOutcome(cursor)
}

func (c *changePathCommand) Usage() string {
	return `Press "changePath" to change current absolute path of command line`
}
