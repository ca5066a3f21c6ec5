// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ParseFlags reads so the host environment can't leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY", "RECENT_WINDOW", "INDEX_LIMIT", "VOTE_RATE", "VOTE_BURST", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, DatabaseSQLite, cfg.DatabaseType)
	assert.Equal(t, DefaultRecentWindow, cfg.RecentWindow)
	assert.Equal(t, DefaultIndexLimit, cfg.IndexLimit)
	assert.Zero(t, cfg.VoteRate)
	assert.Equal(t, DefaultVoteBurst, cfg.VoteBurst)
	assert.Empty(t, cfg.AdminKey)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("RECENT_WINDOW", "2h")
	t.Setenv("INDEX_LIMIT", "10")
	t.Setenv("VOTE_RATE", "0.5")
	t.Setenv("VOTE_BURST", "3")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, DatabasePostgres, cfg.DatabaseType)
	assert.Equal(t, "secret", cfg.AdminKey)
	assert.Equal(t, 2*time.Hour, cfg.RecentWindow)
	assert.Equal(t, 10, cfg.IndexLimit)
	assert.Equal(t, 0.5, cfg.VoteRate)
	assert.Equal(t, 3, cfg.VoteBurst)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RECENT_WINDOW", "2h")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "pgx", "-recent-window", "30m", "-index-limit", "3"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, DatabasePgx, cfg.DatabaseType)
	assert.Equal(t, 30*time.Minute, cfg.RecentWindow)
	assert.Equal(t, 3, cfg.IndexLimit)
}

func TestParseFlags_GenAdminKey(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-gen-admin-key"})
	require.NoError(t, err)
	assert.True(t, cfg.GenAdminKey)
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "polls.yaml")
	err := os.WriteFile(path, []byte(`
port: 7000
database_url: "postgres://from-file"
database_type: postgres
admin_key: file-key
recent_window: 12h
index_limit: 7
vote_rate: 2
vote_burst: 4
`), 0o600)
	require.NoError(t, err)

	t.Setenv("PORT", "9100")

	cfg, err := ParseFlags([]string{"-c", path})
	require.NoError(t, err)

	// env still wins over the file
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "postgres://from-file", cfg.DatabaseURL)
	assert.Equal(t, DatabasePostgres, cfg.DatabaseType)
	assert.Equal(t, "file-key", cfg.AdminKey)
	assert.Equal(t, 12*time.Hour, cfg.RecentWindow)
	assert.Equal(t, 7, cfg.IndexLimit)
	assert.Equal(t, 2.0, cfg.VoteRate)
	assert.Equal(t, 4, cfg.VoteBurst)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown database type", map[string]string{"DATABASE_TYPE": "mysql"}, nil},
		{"bad recent window", map[string]string{"RECENT_WINDOW": "soon"}, nil},
		{"negative recent window", nil, []string{"-recent-window", "-1h"}},
		{"bad index limit", map[string]string{"INDEX_LIMIT": "many"}, nil},
		{"negative index limit", nil, []string{"-index-limit", "-2"}},
		{"bad vote rate", map[string]string{"VOTE_RATE": "fast"}, nil},
		{"negative vote rate", nil, []string{"-vote-rate", "-1"}},
		{"negative vote burst", nil, []string{"-vote-burst", "-1"}},
		{"missing config file", nil, []string{"-c", "/nonexistent/polls.yaml"}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
