package commands_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirsh/pkg/commands"
	"github.com/arthur-debert/dirsh/pkg/filesystem"
	"github.com/arthur-debert/dirsh/pkg/testutil"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// failingFS injects Remove failures for specific paths.
type failingFS struct {
	types.FS
	failRemove map[string]bool
}

func (f *failingFS) Remove(name string) error {
	if f.failRemove[name] {
		return fmt.Errorf("injected remove failure for %s", name)
	}
	return f.FS.Remove(name)
}

func TestRemove_File(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"doomed.txt": "x"})

	out := testRegistry().Parse("remove doomed.txt").Execute(root)
	assert.Empty(t, out.Text)
	assert.Empty(t, testutil.ListTree(t, root))
}

func TestRemove_MissingTargetIsSilent(t *testing.T) {
	out := testRegistry().Parse("remove nothing-here").Execute(t.TempDir())
	assert.Empty(t, out.Text)
}

func TestRemove_NonEmptyDirWithoutFlagFails(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"full/a.txt": "x"})

	out := testRegistry().Parse("remove full").Execute(root)
	assert.Equal(t, "Error with removing: full!", out.Text)
	assert.FileExists(t, filepath.Join(root, "full", "a.txt"))
}

func TestRemove_Recursive(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"target/a.txt":       "x",
		"target/sub/b.txt":   "y",
		"target/sub/deeper/": "",
	})

	out := testRegistry().Parse("remove -R target").Execute(root)
	assert.Empty(t, out.Text)
	assert.Empty(t, testutil.ListTree(t, root))
}

func TestRemove_RecursiveStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"target/a.txt": "x",
		"target/b/c.txt": "y",
		"target/d.txt": "z",
	})

	env := testEnv()
	env.FS = &failingFS{
		FS:         filesystem.NewOS(),
		failRemove: map[string]bool{filepath.Join(root, "target", "d.txt"): true},
	}

	out := commands.NewRegistry(env).Parse("remove -R target").Execute(root)
	assert.Equal(t, "Error with removing: target!", out.Text)

	// Entries visited before the failure are gone; the failing entry and
	// its parent survive.
	assert.NoFileExists(t, filepath.Join(root, "target", "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "target", "b"))
	assert.FileExists(t, filepath.Join(root, "target", "d.txt"))
}

func TestRemove_MissingArgShowsUsage(t *testing.T) {
	for _, line := range []string{"remove", "remove -R"} {
		out := testRegistry().Parse(line).Execute(t.TempDir())
		assert.Contains(t, out.Text, `remove [-R]`, "line %q", line)
	}
}

func TestCopy_File(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"src.txt": "payload"})

	out := testRegistry().Parse("copy src.txt dst.txt").Execute(root)
	assert.Empty(t, out.Text)
	assert.Equal(t, "payload", testutil.ReadFile(t, filepath.Join(root, "dst.txt")))
}

func TestCopy_DirectoryTree(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"src/a.txt":     "alpha",
		"src/sub/b.txt": "beta",
	})

	out := testRegistry().Parse("copy src dst").Execute(root)
	assert.Empty(t, out.Text)
	assert.Equal(t, "alpha", testutil.ReadFile(t, filepath.Join(root, "dst", "a.txt")))
	assert.Equal(t, "beta", testutil.ReadFile(t, filepath.Join(root, "dst", "sub", "b.txt")))
}

func TestCopy_MissingSource(t *testing.T) {
	out := testRegistry().Parse("copy nope dst").Execute(t.TempDir())
	assert.Equal(t, "Error with copying: nope -> dst", out.Text)
}

func TestCopy_MissingArgsShowUsage(t *testing.T) {
	out := testRegistry().Parse("copy onlyone").Execute(t.TempDir())
	assert.Contains(t, out.Text, "copy <source")
}

func TestMove(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"old.txt": "payload"})

	out := testRegistry().Parse("move old.txt new.txt").Execute(root)
	assert.Empty(t, out.Text)

	assert.NoFileExists(t, filepath.Join(root, "old.txt"))
	assert.Equal(t, "payload", testutil.ReadFile(t, filepath.Join(root, "new.txt")))
}

func TestMove_MissingSource(t *testing.T) {
	out := testRegistry().Parse("move nope new").Execute(t.TempDir())
	assert.Equal(t, "Error with moving: nope -> new", out.Text)
}

func TestPrint(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"poem.txt": "line one\nline two\n"})

	out := testRegistry().Parse("print poem.txt").Execute(root)
	assert.Equal(t, "line one\nline two", out.Text)
}

func TestPrint_DirectoryShowsUsage(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))

	out := testRegistry().Parse("print dir").Execute(root)
	assert.Contains(t, out.Text, `print <file>`)
}

func TestPrint_MissingFile(t *testing.T) {
	out := testRegistry().Parse("print nope.txt").Execute(t.TempDir())
	assert.Equal(t, "Error with printing file: nope.txt", out.Text)
}
