package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsscripter/rsscripter/internal/config"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

func writePgpass(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgpass")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("PGPASSFILE", path)
}

func connFixture() *rsscripter.ConnectionConfig {
	return &rsscripter.ConnectionConfig{
		Host:     "warehouse.example.com",
		Port:     5439,
		Database: "analytics",
		Username: "scripter",
	}
}

func TestLookupPgpassExactMatch(t *testing.T) {
	writePgpass(t, "warehouse.example.com:5439:analytics:scripter:s3cret\n")

	assert.Equal(t, "s3cret", lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassWildcards(t *testing.T) {
	writePgpass(t, "*:*:*:scripter:anywhere\n")

	assert.Equal(t, "anywhere", lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassFirstMatchWins(t *testing.T) {
	writePgpass(t,
		"warehouse.example.com:5439:analytics:scripter:specific\n"+
			"*:*:*:*:fallback\n")

	assert.Equal(t, "specific", lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassSkipsCommentsAndBlanks(t *testing.T) {
	writePgpass(t,
		"# production credentials\n"+
			"\n"+
			"warehouse.example.com:5439:analytics:scripter:pw\n")

	assert.Equal(t, "pw", lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassNoMatch(t *testing.T) {
	writePgpass(t, "otherhost:5439:analytics:scripter:pw\n")

	assert.Empty(t, lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassMissingFile(t *testing.T) {
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Empty(t, lookupPgpassPassword(connFixture()))
}

func TestLookupPgpassEscapedPassword(t *testing.T) {
	writePgpass(t, `warehouse.example.com:5439:analytics:scripter:p\:a\\ss`+"\n")

	assert.Equal(t, `p:a\ss`, lookupPgpassPassword(connFixture()))
}

func TestSplitPgpassLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "host:5439:db:user:pw",
			want: []string{"host", "5439", "db", "user", "pw"},
		},
		{
			name: "escaped colon",
			line: `host:5439:db:user:p\:w`,
			want: []string{"host", "5439", "db", "user", "p:w"},
		},
		{
			name: "escaped backslash",
			line: `host:5439:db:do\\main\\user:pw`,
			want: []string{"host", "5439", "db", `do\main\user`, "pw"},
		},
		{
			name: "empty fields preserved",
			line: "::::",
			want: []string{"", "", "", "", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPgpassLine(tt.line))
		})
	}
}

func TestPgpassPathPrefersEnv(t *testing.T) {
	t.Setenv("PGPASSFILE", "/custom/pgpass")

	assert.Equal(t, "/custom/pgpass", pgpassPath())
}

func TestConnectionStringFromConfigRequiresHostAndDatabase(t *testing.T) {
	assert.Empty(t, connectionStringFromConfig(nil))

	cfg := &config.ProjectConfig{}
	cfg.Connection.Host = "warehouse"
	assert.Empty(t, connectionStringFromConfig(cfg))

	cfg.Connection.Database = "analytics"
	built := connectionStringFromConfig(cfg)
	assert.Contains(t, built, "warehouse:5439")
	assert.Contains(t, built, "/analytics")
}
