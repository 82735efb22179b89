package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akuhn/pt/internal/config"
	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/scheduler"
	"github.com/akuhn/pt/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptsR_roundTrip(t *testing.T) {
	t.Parallel()

	conn, err := db.InitDB(config.DBConfig{
		Driver: db.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "quiz.sqlite"),
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn, db.DriverSQLite)
	ctx := context.Background()

	older := models.Attempt{Reference: "1.a", Direction: models.DirectionAB, Succeeded: true, Timestamp: ts}
	other := models.Attempt{Reference: "1.a", Direction: models.DirectionBA, Succeeded: true, Timestamp: ts.Add(time.Minute)}
	newer := models.Attempt{
		Reference: "1.a", Direction: models.DirectionAB, Succeeded: false,
		TypedAnswer: strPtr("thin"), Timestamp: ts.Add(time.Hour),
	}

	require.NoError(t, repo.AppendAttempt(ctx, item, older))
	require.NoError(t, repo.AppendAttempt(ctx, item, other))
	require.NoError(t, repo.AppendAttempt(ctx, item, newer))

	attempts, err := repo.LoadAllAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 3)

	groups := scheduler.Aggregate(attempts)
	g, ok := groups[newer.Key()]
	require.True(t, ok)
	require.Len(t, g.Attempts, 2)

	assertSameAttempt(t, newer, g.Attempts[0])
	assertSameAttempt(t, older, g.Attempts[1])
	assert.Equal(t, []string{"thin"}, g.WrongAnswers())

	stats, err := repo.AttemptStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptStats{TotalCount: 3, RightCount: 2, WrongCount: 1}, stats)
}

func assertSameAttempt(t *testing.T, want, got models.Attempt) {
	t.Helper()

	assert.Equal(t, want.Reference, got.Reference)
	assert.Equal(t, want.Direction, got.Direction)
	assert.Equal(t, want.Succeeded, got.Succeeded)
	assert.Equal(t, want.TypedAnswer, got.TypedAnswer)
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %v != %v", want.Timestamp, got.Timestamp)
}
