package layersettings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	require.Empty(t, r.List())
}

func TestLoadParsesSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	data := `[{"layer":"contours/100"}, {"layer":"contours/50","minzoom":3}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	r, err := Load(path)
	require.NoError(t, err)

	s, ok := r.Get("contours/50")
	require.True(t, ok)
	require.NotNil(t, s.MinZoom)
	require.Equal(t, 3, *s.MinZoom)

	_, ok = r.Get("contours/100")
	require.True(t, ok)

	_, ok = r.Get("unknown")
	require.False(t, ok)
}
