package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/pkg/validator"
	"github.com/jmoiron/sqlx"
)

type attemptRow struct {
	ID        int64          `db:"id"`
	Reference string         `db:"reference" validate:"required,max=8"`
	FormA     string         `db:"form_a" validate:"required"`
	FormB     string         `db:"form_b" validate:"required"`
	Direction string         `db:"dir" validate:"oneof=ab ba"`
	Success   bool           `db:"success"`
	Answer    sql.NullString `db:"answer"`
	Timestamp time.Time      `db:"ts"`
}

func (r attemptRow) toModel() (models.Attempt, error) {
	d, err := models.ParseDirection(r.Direction)
	if err != nil {
		return models.Attempt{}, fmt.Errorf("attempt %d: %w", r.ID, err)
	}

	a := models.Attempt{
		Reference: r.Reference,
		Direction: d,
		Succeeded: r.Success,
		Timestamp: r.Timestamp,
	}
	if r.Answer.Valid {
		answer := r.Answer.String
		a.TypedAnswer = &answer
	}
	return a, nil
}

type AttemptsR struct {
	db   QueryI
	bind int
	now  func() time.Time
}

func NewAttemptsRepository(db QueryI, driver string) *AttemptsR {
	return &AttemptsR{
		db:   db,
		bind: sqlx.BindType(driver),
		now:  time.Now,
	}
}

// AppendAttempt records one answer. A zero timestamp is replaced by the write time and
// the typed answer is only kept for failures.
func (q *AttemptsR) AppendAttempt(ctx context.Context, item models.Item, attempt models.Attempt) error {
	if attempt.Reference != item.Reference {
		return fmt.Errorf("attempt for %q recorded against item %q", attempt.Reference, item.Reference)
	}

	row := attemptRow{
		Reference: attempt.Reference,
		FormA:     item.FormA,
		FormB:     item.FormB,
		Direction: attempt.Direction.Code(),
		Success:   attempt.Succeeded,
		Timestamp: attempt.Timestamp,
	}
	if !attempt.Succeeded && attempt.TypedAnswer != nil {
		row.Answer = sql.NullString{String: *attempt.TypedAnswer, Valid: true}
	}
	if row.Timestamp.IsZero() {
		row.Timestamp = q.now()
	}
	row.Timestamp = row.Timestamp.UTC()

	if err := validator.ValidateStruct(row); err != nil {
		return fmt.Errorf("invalid attempt %s: %w", attempt.Key(), err)
	}

	query := sqlx.Rebind(q.bind, `
		INSERT INTO quiz_v2 (reference, form_a, form_b, dir, success, answer, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := q.db.ExecContext(ctx, query, row.Reference, row.FormA, row.FormB, row.Direction, row.Success, row.Answer, row.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append attempt %s: %w", attempt.Key(), err)
	}

	return nil
}

// LoadAllAttempts returns the whole log in write order.
func (q *AttemptsR) LoadAllAttempts(ctx context.Context) ([]models.Attempt, error) {
	query := `SELECT id, reference, dir, success, answer, ts FROM quiz_v2 ORDER BY id`

	var rows []attemptRow
	if err := q.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	attempts := make([]models.Attempt, 0, len(rows))
	for _, r := range rows {
		a, err := r.toModel()
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, nil
}

func (q *AttemptsR) AttemptStats(ctx context.Context) (models.AttemptStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_v2`

	var stats models.AttemptStats
	if err := q.db.GetContext(ctx, &stats, query); err != nil {
		return models.AttemptStats{}, fmt.Errorf("failed to get attempt stats: %w", err)
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}
