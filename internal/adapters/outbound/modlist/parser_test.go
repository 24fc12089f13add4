package modlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsentry/modsentry/internal/adapters/outbound/modlist"
)

func writeList(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse_StarredPluginsTxt(t *testing.T) {
	path := writeList(t, "plugins.txt", `# generated by the mod manager
*Skyrim.esm
*USSEP.esp
DisabledMod.esp
*SkyUI.esp
`)

	list, err := modlist.New().Parse(path)
	require.NoError(t, err)

	require.Len(t, list.Entries, 4)
	assert.True(t, list.Has("Skyrim.esm"))
	assert.True(t, list.Has("SkyUI.esp"))
	assert.False(t, list.Has("DisabledMod.esp"), "unstarred lines are disabled in starred lists")
	assert.Equal(t, 3, list.IndexOf("SkyUI.esp"))
}

func TestParse_UnstarredLoadOrder(t *testing.T) {
	path := writeList(t, "loadorder.txt", `Skyrim.esm
Update.esm

Dawnguard.esm
`)

	list, err := modlist.New().Parse(path)
	require.NoError(t, err)

	require.Len(t, list.Entries, 3)
	for _, e := range list.Entries {
		assert.True(t, e.Enabled, "lists without stars treat every plugin as enabled")
	}
	assert.Equal(t, 2, list.IndexOf("Dawnguard.esm"), "blank lines do not consume indexes")
}

func TestParse_JSONManifest(t *testing.T) {
	path := writeList(t, "modlist.json", `{
  "game": "skyrimse",
  "plugins": [
    "Skyrim.esm",
    {"name": "USSEP.esp"},
    {"name": "Broken.esp", "enabled": false}
  ]
}`)

	list, err := modlist.New().Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "skyrimse", list.Game)
	require.Len(t, list.Entries, 3)
	assert.True(t, list.Has("Skyrim.esm"))
	assert.True(t, list.Has("USSEP.esp"), "manifest entries default to enabled")
	assert.False(t, list.Has("Broken.esp"))
}

func TestParse_MalformedManifest(t *testing.T) {
	path := writeList(t, "modlist.json", `{"plugins": [42]}`)

	_, err := modlist.New().Parse(path)
	assert.ErrorContains(t, err, "plugin 0")
}

func TestParse_MissingFile(t *testing.T) {
	_, err := modlist.New().Parse(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "reading mod list")
}
