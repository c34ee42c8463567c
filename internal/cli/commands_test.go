package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
}

func TestVersionCommand(t *testing.T) {
	setupTestEnv(t)

	out := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "dirsh version dev")
}

func TestRootRunsScriptedSession(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()

	out := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetIn(strings.NewReader("currentPath\nexit\n"))
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--dir", dir})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Welcome to simple command line!")
	assert.Contains(t, out.String(), dir+"\n")
}

func TestRootRejectsMissingStartDir(t *testing.T) {
	setupTestEnv(t)

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--dir", "/no/such/dir"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start directory")
}
