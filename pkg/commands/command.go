package commands

import (
	"path/filepath"

	"github.com/arthur-debert/dirsh/pkg/config"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// Command is one executable unit of the shell's vocabulary.
type Command interface {
	// Name returns the command's registered name.
	Name() string
	// Args returns the argument tokens the command was constructed with.
	Args() []string
	// Execute runs the command against the session cursor.
	Execute(cursor string) types.Outcome
	// Usage returns the command's help text.
	Usage() string
}

// Env carries the collaborators a command needs besides its arguments.
type Env struct {
	FS     types.FS
	Config config.Config
}

// base provides the identity shared by all command variants.
type base struct {
	name string
	args []string
}

func (b *base) Name() string   { return b.name }
func (b *base) Args() []string { return b.args }

// resolve joins a possibly relative argument path to the cursor and
// normalizes the result. Absolute arguments pass through cleaned.
func resolve(cursor, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Clean(filepath.Join(cursor, arg))
}
