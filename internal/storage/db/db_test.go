package db

import (
	"path/filepath"
	"testing"

	"github.com/akuhn/pt/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(dsn string) config.DBConfig {
	return config.DBConfig{
		Driver: DriverSQLite,
		DSN:    dsn,
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	}
}

func TestInitDB(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "nested", "dir", "quiz.sqlite")

	db, err := InitDB(sqliteConfig(dsn))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM quiz_v2`))
	assert.Equal(t, 0, count)

	again, err := InitDB(sqliteConfig(dsn))
	require.NoError(t, err, "schema creation is idempotent")
	again.Close()
}

func TestInitDB_unsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := InitDB(config.DBConfig{Driver: "mongo", DSN: "x"})
	require.Error(t, err)
}

func Test_ensureDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	tests := []struct {
		name string
		dsn  string
	}{
		{name: "memory", dsn: ":memory:"},
		{name: "plain path", dsn: filepath.Join(base, "a", "q.sqlite")},
		{name: "uri with options", dsn: "file:" + filepath.Join(base, "b", "q.sqlite") + "?_busy_timeout=5000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ensureDir(tt.dsn))
		})
	}

	assert.DirExists(t, filepath.Join(base, "a"))
	assert.DirExists(t, filepath.Join(base, "b"))
}
