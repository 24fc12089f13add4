package domain_test

import (
	"testing"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testList() *domain.ModList {
	return &domain.ModList{
		Game: "skyrimse",
		Entries: []domain.ModEntry{
			{Name: "Skyrim.esm", Enabled: true, Index: 0},
			{Name: "USSEP.esp", Enabled: true, Index: 1},
			{Name: "DisabledMod.esp", Enabled: false, Index: 2},
			{Name: "SkyUI.esp", Enabled: true, Index: 3},
		},
	}
}

func TestModList_Has(t *testing.T) {
	list := testList()

	assert.True(t, list.Has("USSEP.esp"))
	assert.True(t, list.Has("ussep.ESP"), "plugin names compare case-insensitively")
	assert.False(t, list.Has("DisabledMod.esp"), "disabled plugins do not count as present")
	assert.False(t, list.Has("Missing.esp"))
}

func TestModList_IndexOf(t *testing.T) {
	list := testList()

	assert.Equal(t, 3, list.IndexOf("skyui.esp"))
	assert.Equal(t, -1, list.IndexOf("DisabledMod.esp"))
	assert.Equal(t, -1, list.IndexOf("Missing.esp"))
}

func TestModList_Enabled(t *testing.T) {
	enabled := testList().Enabled()

	assert.Len(t, enabled, 3)
	for _, e := range enabled {
		assert.True(t, e.Enabled)
	}
}
