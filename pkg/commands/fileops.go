package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dirsh/pkg/errors"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// removeCommand deletes a file or directory. Without -R only empty
// directories can be removed; with -R the subtree is deleted depth-first
// post-order, stopping at the first failure so everything already visited
// stays deleted and the failing subtree stays partially intact.
type removeCommand struct {
	base
	env *Env
}

func (c *removeCommand) Execute(cursor string) types.Outcome {
	args := c.args
	recursive := false
	if len(args) > 0 && args[0] == "-R" {
		recursive = true
		args = args[1:]
	}
	if len(args) < 1 {
		return types.TextOutcome(c.Usage())
	}

	path := resolve(cursor, args[0])
	if recursive {
		if err := removeTree(c.env, path); err != nil {
			return types.TextOutcome("Error with removing: " + args[0] + "!")
		}
		return types.TextOutcome("")
	}

	// Mirrors delete-if-exists: a missing target is not an error.
	if err := c.env.FS.Remove(path); err != nil && !os.IsNotExist(err) {
		return types.TextOutcome("Error with removing: " + args[0] + "!")
	}
	return types.TextOutcome("")
}

func (c *removeCommand) Usage() string {
	return `Press "remove [-R] <file or directory>" to remove file or directory`
}

func removeTree(env *Env, path string) error {
	info, err := env.FS.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", path)
	}

	if info.IsDir() {
		entries, err := env.FS.ReadDir(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot read directory %s", path)
		}
		for _, entry := range entries {
			if err := removeTree(env, filepath.Join(path, entry.Name())); err != nil {
				// First failure aborts the remainder of the subtree.
				return err
			}
		}
	}

	if err := env.FS.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot remove %s", path)
	}
	return nil
}

// copyCommand copies a file, or recursively replicates a directory tree's
// relative substructure at the destination.
type copyCommand struct {
	base
	env *Env
}

func (c *copyCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 2 {
		return types.TextOutcome(c.Usage())
	}

	src := resolve(cursor, c.args[0])
	dst := resolve(cursor, c.args[1])
	if err := copyTree(c.env, src, dst); err != nil {
		return types.TextOutcome("Error with copying: " + c.args[0] + " -> " + c.args[1])
	}
	return types.TextOutcome("")
}

func (c *copyCommand) Usage() string {
	return `Press "copy <source file or directory> <destination file or directory>" to copy file or directory`
}

func copyTree(env *Env, src, dst string) error {
	info, err := env.FS.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot stat %s", src)
	}

	if info.IsDir() {
		if err := env.FS.MkdirAll(dst, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dst)
		}
		entries, err := env.FS.ReadDir(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot read directory %s", src)
		}
		for _, entry := range entries {
			name := entry.Name()
			if err := copyTree(env, filepath.Join(src, name), filepath.Join(dst, name)); err != nil {
				return err
			}
		}
		return nil
	}

	return copyFile(env, src, dst)
}

func copyFile(env *Env, src, dst string) error {
	in, err := env.FS.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := env.FS.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", dst)
	}

	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return errors.Wrapf(copyErr, errors.ErrIO, "cannot copy %s", src)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, errors.ErrIO, "cannot copy %s", src)
	}
	return nil
}

type moveCommand struct {
	base
	env *Env
}

func (c *moveCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 2 {
		return types.TextOutcome(c.Usage())
	}

	oldPath := resolve(cursor, c.args[0])
	newPath := resolve(cursor, c.args[1])
	if err := c.env.FS.Rename(oldPath, newPath); err != nil {
		return types.TextOutcome("Error with moving: " + c.args[0] + " -> " + c.args[1])
	}
	return types.TextOutcome("")
}

func (c *moveCommand) Usage() string {
	return `Press "move <old path> <new path>" to move or rename file or directory`
}

type printCommand struct {
	base
	env *Env
}

func (c *printCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 1 {
		return types.TextOutcome(c.Usage())
	}

	path := resolve(cursor, c.args[0])
	if info, err := c.env.FS.Stat(path); err == nil && info.IsDir() {
		return types.TextOutcome(c.Usage())
	}

	data, err := c.env.FS.ReadFile(path)
	if err != nil {
		return types.TextOutcome("Error with printing file: " + c.args[0])
	}
	return types.TextOutcome(strings.TrimRight(string(data), "\n"))
}

func (c *printCommand) Usage() string {
	return `Press "print <file>" to print file's content`
}
