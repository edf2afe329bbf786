package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDataHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()

	return dir
}

func TestInstall(t *testing.T) {
	dir := withDataHome(t)

	require.NoError(t, Install("pomo"))

	got, err := os.ReadFile(filepath.Join(dir, "pomo", "icon.png"))
	require.NoError(t, err)

	want, err := embeddedFiles.ReadFile("files/icon.png")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := withDataHome(t)

	icon := filepath.Join(dir, "pomo", "icon.png")

	require.NoError(t, os.MkdirAll(filepath.Dir(icon), 0o755))
	require.NoError(t, os.WriteFile(icon, []byte("custom"), 0o644))

	require.NoError(t, Install("pomo"))

	got, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(got))
}
