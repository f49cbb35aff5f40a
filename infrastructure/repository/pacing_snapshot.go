package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	pacingSnapshotsTable = "pacing_snapshots"
)

// PacingSnapshotRepository persists the nightly pacing computation so
// dashboard loads never recompute across the full entry history.
type PacingSnapshotRepository interface {
	SaveOrUpdate(s *domain.PacingSnapshot) error
	GetByUserAndDate(userID int, date string, metric domain.GoalMetric) (*domain.PacingSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type pacingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPacingSnapshotRepository(conn *postgres.Connection) PacingSnapshotRepository {
	return &pacingSnapshotRepository{
		conn: conn,
	}
}

func (r *pacingSnapshotRepository) SaveOrUpdate(s *domain.PacingSnapshot) error {
	monthlyJSON, err := json.Marshal(s.Monthly)
	if err != nil {
		return errors.Wrap(err, "serializing monthly pacing")
	}

	yearlyJSON, err := json.Marshal(s.Yearly)
	if err != nil {
		return errors.Wrap(err, "serializing yearly pacing")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(pacingSnapshotsTable).
		Columns("user_id", "date", "metric", "monthly", "yearly").
		Values(s.UserID, s.Date, s.Metric, monthlyJSON, yearlyJSON).
		Suffix(`
			ON CONFLICT (user_id, date, metric) DO UPDATE SET
				monthly = EXCLUDED.monthly,
				yearly = EXCLUDED.yearly,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building snapshot upsert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "upserting snapshot")
	}

	return nil
}

func (r *pacingSnapshotRepository) GetByUserAndDate(userID int, date string, metric domain.GoalMetric) (*domain.PacingSnapshot, error) {
	query, args, err := squirrel.
		Select("id, user_id, date, metric, monthly, yearly, created_at, updated_at").
		From(pacingSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID, "date": date, "metric": metric}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building snapshot select")
	}

	s := &domain.PacingSnapshot{}
	var date2 time.Time
	var monthlyJSON, yearlyJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&s.ID,
		&s.UserID,
		&date2,
		&s.Metric,
		&monthlyJSON,
		&yearlyJSON,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning snapshot")
	}

	s.Date = date2.Format(time.DateOnly)

	if err := json.Unmarshal(monthlyJSON, &s.Monthly); err != nil {
		return nil, errors.Wrap(err, "deserializing monthly pacing")
	}
	if err := json.Unmarshal(yearlyJSON, &s.Yearly); err != nil {
		return nil, errors.Wrap(err, "deserializing yearly pacing")
	}

	return s, nil
}

func (r *pacingSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(pacingSnapshotsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building snapshot delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting snapshots")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "reading affected rows")
	}

	return rowsAffected, nil
}
