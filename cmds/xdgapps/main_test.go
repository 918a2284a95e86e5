package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) { //nolint:paralleltest // Uses process environment and global flags.
	share := t.TempDir()
	t.Setenv("XDG_DATA_DIRS", share)
	t.Setenv("XDG_ICON_THEME", "hicolor")
	t.Setenv("HOME", t.TempDir())

	entryPath := filepath.Join(share, "applications", "viewer.desktop")
	svgPath := filepath.Join(share, "icons", "hicolor", "scalable", "apps", "viewer.svg")
	require.NoError(t, os.MkdirAll(filepath.Dir(entryPath), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(svgPath), 0o755))
	require.NoError(t, os.WriteFile(entryPath, []byte("[Desktop Entry]\nName=Viewer\nExec=viewer %f\nIcon=viewer\n"), 0o600))
	require.NoError(t, os.WriteFile(svgPath, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4"><rect width="4" height="4"/></svg>`), 0o600))

	t.Run("show", func(t *testing.T) {
		var shown map[string]any
		require.NoError(t, json.Unmarshal([]byte(runCmd(t, "show", entryPath)), &shown))
		assert.Equal(t, "Viewer", shown["displayName"])
		assert.Equal(t, []any{"viewer"}, shown["args"])
	})

	t.Run("list", func(t *testing.T) {
		var listed []map[string]any
		require.NoError(t, json.Unmarshal([]byte(runCmd(t, "list")), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, entryPath, listed[0]["path"])
	})

	t.Run("icons", func(t *testing.T) {
		var candidates []map[string]any
		require.NoError(t, json.Unmarshal([]byte(runCmd(t, "icons", entryPath)), &candidates))
		require.Len(t, candidates, 1)
		assert.Equal(t, "vector", candidates[0]["kind"])
		assert.Equal(t, svgPath, candidates[0]["path"])
	})

	t.Run("render", func(t *testing.T) {
		out := t.TempDir()
		printed := strings.TrimSpace(runCmd(t, "render", svgPath, "--size", "16", "--out", out))
		assert.Equal(t, filepath.Join(out, "viewer.png"), printed)
		assert.FileExists(t, printed)
	})

	t.Run("grid", func(t *testing.T) {
		cache := t.TempDir()
		var apps []map[string]any
		require.NoError(t, json.Unmarshal([]byte(runCmd(t, "grid", "--cache-dir", cache, "--size", "8", "--data-url", "--cache-listing")), &apps))
		require.Len(t, apps, 1)
		urls, ok := apps[0]["dataURLs"].([]any)
		require.True(t, ok)
		require.Len(t, urls, 1)
		assert.True(t, strings.HasPrefix(urls[0].(string), "data:image/png;base64,")) //nolint:forcetypeassert
		assert.FileExists(t, filepath.Join(cache, "viewer.png"))
	})
}
