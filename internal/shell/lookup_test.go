package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gYonder/minsh/internal/shell"
)

func writeScript(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	return path
}

func TestLookPath_SearchesPathInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScript(t, first, "tool", 0o755)
	writeScript(t, second, "tool", 0o755)
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	path, ok := shell.LookPath("tool")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "tool"), path)
}

func TestLookPath_SkipsNonExecutable(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScript(t, first, "tool", 0o644)
	want := writeScript(t, second, "tool", 0o755)
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	path, ok := shell.LookPath("tool")
	require.True(t, ok)
	assert.Equal(t, want, path)
}

func TestLookPath_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, ok := shell.LookPath("definitely-not-a-command")
	assert.False(t, ok)
}

func TestLookPath_EmptyPathSearchesNothing(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "tool", 0o755)
	t.Setenv("PATH", "")

	_, ok := shell.LookPath("tool")
	assert.False(t, ok)
}

func TestLookPath_ExplicitPathBypassesSearch(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "tool", 0o755)
	t.Setenv("PATH", "")

	path, ok := shell.LookPath(script)
	require.True(t, ok)
	assert.Equal(t, script, path)
}

func TestLookPath_ExplicitPathMustBeExecutableRegularFile(t *testing.T) {
	dir := t.TempDir()
	plain := writeScript(t, dir, "plain", 0o644)

	_, ok := shell.LookPath(plain)
	assert.False(t, ok, "non-executable file must not resolve")

	_, ok = shell.LookPath(dir)
	assert.False(t, ok, "a directory must not resolve even though it is executable")

	_, ok = shell.LookPath(filepath.Join(dir, "missing"))
	assert.False(t, ok)
}
