package commands_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/dirsh/pkg/testutil"
)

func TestFind_StarPattern(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.txt":   "1",
		"b/a.txt": "2",
		"b/c.md":  "3",
	})

	out := testRegistry().Parse("find . *.txt").Execute(root)

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b", "a.txt"),
	}
	assert.Equal(t, want, strings.Split(out.Text, "\n"))
}

func TestFind_QuestionMarkAndAlternation(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a1.log": "",
		"a22.log": "",
		"b.md":   "",
		"c.txt":  "",
	})

	tests := []struct {
		pattern string
		want    []string
	}{
		{"a?.log", []string{filepath.Join(root, "a1.log")}},
		{"*.{md,txt}", []string{filepath.Join(root, "b.md"), filepath.Join(root, "c.txt")}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			out := testRegistry().Parse("find . " + tt.pattern).Execute(root)
			assert.Equal(t, tt.want, strings.Split(out.Text, "\n"))
		})
	}
}

func TestFind_MatchesDirectoryNamesToo(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"logs/x.bin": ""})

	out := testRegistry().Parse("find . logs").Execute(root)
	assert.Equal(t, filepath.Join(root, "logs"), out.Text)
}

func TestFind_MissingRoot(t *testing.T) {
	out := testRegistry().Parse("find nope *.txt").Execute(t.TempDir())
	assert.Equal(t, "Error with finding in: nope!", out.Text)
}

func TestFind_MissingArgsShowUsage(t *testing.T) {
	out := testRegistry().Parse("find onlyroot").Execute(t.TempDir())
	assert.Contains(t, out.Text, "find <root> <glob>")
}

func TestFileTree(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.txt":     "",
		"b/c.txt":   "",
		"b/d/e.txt": "",
		".hidden":   "",
	})

	out := testRegistry().Parse("fileTree .").Execute(root)

	want := strings.Join([]string{
		filepath.Base(root),
		"  a.txt",
		"  b",
		"    c.txt",
		"    d",
		"      e.txt",
	}, "\n")
	assert.Equal(t, want, out.Text)
}

func TestFileTree_FileTargetFails(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"f.txt": ""})

	out := testRegistry().Parse("fileTree f.txt").Execute(root)
	assert.Equal(t, "Error with printing tree: f.txt!", out.Text)
}

func TestFileTree_MissingArgShowsUsage(t *testing.T) {
	out := testRegistry().Parse("fileTree").Execute(t.TempDir())
	assert.Contains(t, out.Text, "fileTree <directory>")
}
