package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeFile creates path (and any parent directories) with the given content.
func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func collectWalk(t *testing.T, root string, excluded []string) []string {
	t.Helper()
	var got []string
	err := Walk(root, excluded, zap.NewNop(), func(path string) {
		got = append(got, path)
	})
	require.NoError(t, err)
	return got
}

func TestWalk(t *testing.T) {
	t.Run("yields every regular file in the tree", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.txt"), []byte("a"))
		writeFile(t, filepath.Join(root, "sub", "b.txt"), []byte("b"))
		writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), []byte("c"))

		got := collectWalk(t, root, nil)

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "sub", "b.txt"),
			filepath.Join(root, "sub", "deep", "c.txt"),
		}, got)
	})

	t.Run("prunes excluded directories at any depth", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "keep.txt"), []byte("keep"))
		writeFile(t, filepath.Join(root, ".git", "config"), []byte("[core]"))
		writeFile(t, filepath.Join(root, ".git", "objects", "deadbeef"), []byte("x"))
		writeFile(t, filepath.Join(root, "vendor", ".git", "HEAD"), []byte("ref"))
		writeFile(t, filepath.Join(root, "vendor", "lib.txt"), []byte("lib"))

		got := collectWalk(t, root, []string{".git"})

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "keep.txt"),
			filepath.Join(root, "vendor", "lib.txt"),
		}, got)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "Git", "file.txt"), []byte("x"))
		writeFile(t, filepath.Join(root, ".Git", "file.txt"), []byte("x"))

		got := collectWalk(t, root, []string{".git"})

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "Git", "file.txt"),
			filepath.Join(root, ".Git", "file.txt"),
		}, got)
	})

	t.Run("exclusion applies to plain directory names too", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "sub", "notes.txt"), []byte("n"))

		got := collectWalk(t, root, []string{"sub"})

		assert.Empty(t, got)
	})

	t.Run("root under an excluded segment yields nothing", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".git", "hooks", "pre-commit"), []byte("#!/bin/sh"))

		got := collectWalk(t, filepath.Join(root, ".git", "hooks"), []string{".git"})

		assert.Empty(t, got)
	})

	t.Run("empty directory yields nothing", func(t *testing.T) {
		got := collectWalk(t, t.TempDir(), []string{".git"})
		assert.Empty(t, got)
	})

	t.Run("two walks over an unchanged tree yield the same set", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "one.txt"), []byte("1"))
		writeFile(t, filepath.Join(root, "sub", "two.txt"), []byte("2"))

		first := collectWalk(t, root, []string{".git"})
		second := collectWalk(t, root, []string{".git"})

		assert.ElementsMatch(t, first, second)
	})
}
