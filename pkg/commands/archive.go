package commands

import (
	"path/filepath"

	"github.com/arthur-debert/dirsh/pkg/archive"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// archiveCommand packs a file or directory into a zip archive ("put") or
// extracts one ("get"). The archive path derivation and its quirks live
// in the archive package.
type archiveCommand struct {
	base
	env *Env
}

func (c *archiveCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 2 {
		return types.TextOutcome(c.Usage())
	}

	archiver := archive.New(c.env.FS, c.env.Config.ArchiveChunkSize)
	path := resolve(cursor, c.args[1])

	switch c.args[0] {
	case "put":
		if _, err := c.env.FS.Stat(path); err != nil {
			return types.TextOutcome("No such file: " + filepath.Base(path))
		}
		zipPath, err := archiver.Pack(path)
		if err != nil {
			return types.TextOutcome(err.Error())
		}
		return types.TextOutcome(zipPath)

	case "get":
		if _, err := c.env.FS.Stat(path); err != nil {
			return types.TextOutcome("No such zip file: " + filepath.Base(path))
		}
		root, err := archiver.Unpack(path)
		if err != nil {
			return types.TextOutcome(err.Error())
		}
		return types.TextOutcome(root)
	}

	return types.TextOutcome(c.Usage())
}

func (c *archiveCommand) Usage() string {
	return `Press "archive [put | get] <file>" to (put in / get from) archive file or directory`
}
