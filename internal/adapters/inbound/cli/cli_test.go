package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsentry/modsentry/internal/adapters/inbound/cli"
)

const rulesYAML = `version: "2026.08"
game: skyrimse
incompatible:
  - a: Open Cities.esp
    b: JK Skyrim.esp
requirements:
  - mod: SkyUI.esp
    requires: [SKSE]
`

const pluginsTxt = `*Skyrim.esm
*Open Cities.esp
*JK Skyrim.esp
*SkyUI.esp
`

const sourcesJSON = `[
  {
    "url": "https://www.nexusmods.com/skyrimspecialedition/mods/266",
    "type": "nexus_mods",
    "content": "Verified fix, tested on 1.6.640",
    "endorsements": 9000,
    "verified": true
  },
  {"title": "some unsourced forum rumor"}
]`

// workspace drops the test into a fresh directory so config and history
// reads stay isolated, and returns paths to the written fixtures.
func workspace(t *testing.T) (plugins, rules, sources string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	plugins = filepath.Join(dir, "plugins.txt")
	rules = filepath.Join(dir, "rules.yaml")
	sources = filepath.Join(dir, "sources.json")
	require.NoError(t, os.WriteFile(plugins, []byte(pluginsTxt), 0644))
	require.NoError(t, os.WriteFile(rules, []byte(rulesYAML), 0644))
	require.NoError(t, os.WriteFile(sources, []byte(sourcesJSON), 0644))
	return plugins, rules, sources
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modsentry dev")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	plugins, rules, _ := workspace(t)

	out, err := run(t, "analyze", plugins, "--rules", rules, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"summary"`)
	assert.Contains(t, out, `"critical_count": 1`)
	assert.Contains(t, out, "Incompatible Mods")
}

func TestAnalyzeCommand_TUI(t *testing.T) {
	plugins, rules, _ := workspace(t)

	out, err := run(t, "analyze", plugins, "--rules", rules)
	require.NoError(t, err)
	assert.Contains(t, out, "modsentry")
	assert.Contains(t, out, "1 critical issue")
	assert.Contains(t, out, "Incompatible Mods")
}

func TestAnalyzeCommand_CIFails(t *testing.T) {
	plugins, rules, _ := workspace(t)

	_, err := run(t, "analyze", plugins, "--rules", rules, "--ci", "--max-critical", "0")
	assert.ErrorContains(t, err, "critical issues exceed")
}

func TestAnalyzeCommand_CIPasses(t *testing.T) {
	plugins, rules, _ := workspace(t)

	_, err := run(t, "analyze", plugins, "--rules", rules, "--ci", "--max-critical", "1")
	assert.NoError(t, err)
}

func TestAnalyzeCommand_NoRules(t *testing.T) {
	plugins, _, _ := workspace(t)

	_, err := run(t, "analyze", plugins)
	assert.ErrorContains(t, err, "no rules file")
}

func TestAnalyzeCommand_RecordsHistory(t *testing.T) {
	plugins, rules, _ := workspace(t)

	_, err := run(t, "analyze", plugins, "--rules", rules)
	require.NoError(t, err)

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "4 mods")
}

func TestHistoryCommand_Empty(t *testing.T) {
	workspace(t)

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No analysis history")
}

func TestSourcesScoreCommand_JSON(t *testing.T) {
	_, _, sources := workspace(t)

	out, err := run(t, "sources", "score", sources, "--json", "--min-score", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, `"overall_score"`)
	assert.Contains(t, out, "nexusmods.com")
	assert.NotContains(t, out, "forum rumor", "low-scoring sources are filtered out")
}

func TestSourcesScoreCommand_PersistsToStore(t *testing.T) {
	_, _, sources := workspace(t)
	db := filepath.Join(t.TempDir(), "knowledge.db")

	_, err := run(t, "sources", "score", sources, "--db", db, "--min-score", "0.5")
	require.NoError(t, err)

	out, err := run(t, "sources", "list", "--db", db, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "nexusmods.com")
}

func TestSourcesListCommand_RequiresDB(t *testing.T) {
	_, err := run(t, "sources", "list")
	assert.ErrorContains(t, err, "--db")
}

func TestRulesValidateCommand(t *testing.T) {
	_, rules, _ := workspace(t)

	out, err := run(t, "rules", "validate", rules)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: version 2026.08")
	assert.Contains(t, out, "1 incompatibilities")
}

func TestRulesUpdateCommand_NoRepo(t *testing.T) {
	workspace(t)

	_, err := run(t, "rules", "update")
	assert.ErrorContains(t, err, "no rules repository")
}
