package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	goalsTable = "goals"
)

// GoalRepository is a per-user key-value store for goal amounts. Reads
// return nil when the key was never set or has been cleared.
type GoalRepository interface {
	Get(userID int, key string) (*domain.Goal, error)
	Set(goal *domain.Goal) error
	Remove(userID int, key string) error
	ListByUser(userID int) ([]*domain.Goal, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) Get(userID int, key string) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select("key, user_id, period, metric, amount, updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"user_id": userID, "key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building goal select")
	}

	goal := &domain.Goal{}
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.Key,
		&goal.UserID,
		&goal.Period,
		&goal.Metric,
		&goal.Amount,
		&goal.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning goal")
	}

	return goal, nil
}

func (r *goalRepository) Set(goal *domain.Goal) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(goalsTable).
		Columns("key", "user_id", "period", "metric", "amount").
		Values(goal.Key, goal.UserID, goal.Period, goal.Metric, goal.Amount).
		Suffix(`
			ON CONFLICT (user_id, key) DO UPDATE SET
				period = EXCLUDED.period,
				metric = EXCLUDED.metric,
				amount = EXCLUDED.amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building goal upsert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "upserting goal")
	}

	return nil
}

func (r *goalRepository) Remove(userID int, key string) error {
	query, args, err := squirrel.
		Delete(goalsTable).
		Where(squirrel.Eq{"user_id": userID, "key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building goal delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "removing goal")
	}

	return nil
}

func (r *goalRepository) ListByUser(userID int) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select("key, user_id, period, metric, amount, updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building goal list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing goals")
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal := &domain.Goal{}
		err := rows.Scan(
			&goal.Key,
			&goal.UserID,
			&goal.Period,
			&goal.Metric,
			&goal.Amount,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning goals")
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating goals")
	}

	return goals, nil
}
