package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/treegridgo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-a", "options",
		"--id", "menu-admin",
		"--preset", "MENU",
		"--orphans", "reject",
		"-o", "yaml",
		"--log-level", "DEBUG",
		"menus.json", "extra/",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)

	assert.Equal(t, app.ActionOptions, cfg.Action)
	assert.Equal(t, "menu-admin", cfg.TargetID)
	assert.Equal(t, "menu", cfg.Preset)
	assert.Equal(t, "reject", cfg.OrphanPolicy)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"menus.json", "extra/"}, cfg.SourcePaths)
	assert.Empty(t, out.String())
}

func TestParse_Neo4jPasswordFromEnv(t *testing.T) {
	t.Setenv(PasswordEnv, "s3cret")

	cfg, shouldExit, err := Parse([]string{"--neo4j-uri", "neo4j://localhost:7687", "--neo4j-label", "Menu"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "neo4j://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Equal(t, "s3cret", cfg.Neo4j.Password)
	assert.Equal(t, "Menu", cfg.Neo4j.Label)
	assert.Empty(t, cfg.SourcePaths)
}

func TestParse_ServeNeedsNoSource(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"--action", "serve", "--listen", "127.0.0.1:9000"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, app.DefaultForestName, cfg.ForestName)
}

func TestParse_ServeWithSource(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-a", "serve", "--forest-name", "menus", "menus.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "menus", cfg.ForestName)
	assert.True(t, cfg.HasSource())
}

func TestParse_ShouldExit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "help flag", args: []string{"-h"}},
		{name: "no records source", args: []string{"--output", "json"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--bogus", "a.json"}, wantMsg: "unknown flag: --bogus"},
		{name: "bad log format", args: []string{"--log-format", "xml", "a.json"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"--log-level", "loud", "a.json"}, wantMsg: "invalid log-level"},
		{name: "bad action", args: []string{"-a", "prune", "a.json"}, wantMsg: `invalid action "prune"`},
		{name: "find without id", args: []string{"-a", "find", "a.json"}, wantMsg: "requires a target id"},
		{name: "bad output", args: []string{"-o", "csv", "a.json"}, wantMsg: "invalid output format"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
