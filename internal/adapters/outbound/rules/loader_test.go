package rules_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsentry/modsentry/internal/adapters/outbound/rules"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validRules = `version: "2026.08"
game: skyrimse
incompatible:
  - a: Open Cities.esp
    b: JK Skyrim.esp
    severity: critical
    note: use the compatibility patch
requirements:
  - mod: SkyUI.esp
    requires: [SKSE]
load_order:
  - load: USSEP Patch.esp
    after: USSEP.esp
`

func TestLoad_ValidBundle(t *testing.T) {
	rs, err := rules.NewLoader().Load(context.Background(), writeRules(t, validRules))
	require.NoError(t, err)

	assert.Equal(t, "2026.08", rs.Version)
	assert.Equal(t, "skyrimse", rs.Game)
	require.Len(t, rs.Incompatible, 1)
	assert.Equal(t, "Open Cities.esp", rs.Incompatible[0].A)
	require.Len(t, rs.Requirements, 1)
	assert.Equal(t, []string{"SKSE"}, rs.Requirements[0].Requires)
	require.Len(t, rs.LoadOrder, 1)
	assert.Len(t, rs.SHA256, 64, "hex sha256 of the raw file is recorded")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing version", "game: skyrimse\n", "version is required"},
		{
			"incompatible missing plugin",
			"version: \"1\"\nincompatible:\n  - a: A.esp\n",
			"incompatible[0]",
		},
		{
			"requirement without mod",
			"version: \"1\"\nrequirements:\n  - requires: [X]\n",
			"requirements[0]",
		},
		{
			"requirement without deps",
			"version: \"1\"\nrequirements:\n  - mod: A.esp\n",
			"lists nothing required",
		},
		{
			"load order missing anchor",
			"version: \"1\"\nload_order:\n  - load: A.esp\n",
			"load_order[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.NewLoader().Load(context.Background(), writeRules(t, tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := rules.NewLoader().Load(context.Background(), writeRules(t, "{{nope"))
	assert.ErrorContains(t, err, "parsing rules")
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rules.NewLoader().Load(ctx, writeRules(t, validRules))
	assert.ErrorIs(t, err, context.Canceled)
}
