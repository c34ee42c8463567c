package commands

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/arthur-debert/dirsh/pkg/errors"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// findCommand searches a tree for entries whose base name matches a glob
// pattern (`*`, `?`, and `{a,b}` alternation). Matches are reported as
// absolute normalized paths, sorted for stable output.
type findCommand struct {
	base
	env *Env
}

func (c *findCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 2 {
		return types.TextOutcome(c.Usage())
	}

	root := resolve(cursor, c.args[0])
	pattern := c.args[1]
	if _, err := c.env.FS.Stat(root); err != nil {
		return types.TextOutcome("Error with finding in: " + c.args[0] + "!")
	}

	matches, err := findMatches(root, pattern)
	if err != nil {
		return types.TextOutcome("Error with finding by pattern: " + pattern + "!")
	}
	return types.TextOutcome(strings.Join(matches, "\n"))
}

func (c *findCommand) Usage() string {
	return `Press "find <root> <glob>" to search files by name pattern`
}

func findMatches(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidInput, "bad glob pattern %q", pattern)
	}

	var (
		mu      sync.Mutex
		matches []string
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		ok, merr := doublestar.Match(pattern, filepath.Base(path))
		if merr != nil {
			return merr
		}
		if ok {
			mu.Lock()
			matches = append(matches, filepath.Clean(path))
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot walk %s", root)
	}

	// The walk is parallel, so traversal order is not reproducible.
	sort.Strings(matches)
	return matches, nil
}

// treeCommand prints an indented tree of a directory.
type treeCommand struct {
	base
	env *Env
}

func (c *treeCommand) Execute(cursor string) types.Outcome {
	if len(c.args) < 1 {
		return types.TextOutcome(c.Usage())
	}

	root := resolve(cursor, c.args[0])
	info, err := c.env.FS.Stat(root)
	if err != nil || !info.IsDir() {
		return types.TextOutcome("Error with printing tree: " + c.args[0] + "!")
	}

	lines := []string{filepath.Base(root)}
	if err := c.walkTree(root, 1, &lines); err != nil {
		return types.TextOutcome("Error with printing tree: " + c.args[0] + "!")
	}
	return types.TextOutcome(strings.Join(lines, "\n"))
}

func (c *treeCommand) walkTree(dir string, depth int, lines *[]string) error {
	entries, err := c.env.FS.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !c.env.Config.ShowHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		*lines = append(*lines, strings.Repeat("  ", depth)+entry.Name())
		if entry.IsDir() {
			if err := c.walkTree(filepath.Join(dir, entry.Name()), depth+1, lines); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *treeCommand) Usage() string {
	return `Press "fileTree <directory>" to print directory tree`
}
