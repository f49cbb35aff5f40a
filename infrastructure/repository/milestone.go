package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	milestonesTable = "milestones"
)

type MilestoneRepository interface {
	Create(m *domain.Milestone) error
	Update(m *domain.Milestone) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.Milestone, error)
	ListByClient(userID int, clientID string) ([]*domain.Milestone, error)
	ListByUser(userID int) ([]*domain.Milestone, error)
}

type milestoneRepository struct {
	conn *postgres.Connection
}

func NewMilestoneRepository(conn *postgres.Connection) MilestoneRepository {
	return &milestoneRepository{
		conn: conn,
	}
}

func (r *milestoneRepository) Create(m *domain.Milestone) error {
	query, args, err := squirrel.
		Insert(milestonesTable).
		Columns("id", "user_id", "client_id", "date", "kind", "title", "notes", "completed").
		Values(m.ID, m.UserID, m.ClientID, m.Date, m.Kind, m.Title, m.Notes, m.Completed).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building milestone insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting milestone")
	}

	return nil
}

func (r *milestoneRepository) Update(m *domain.Milestone) error {
	query, args, err := squirrel.
		Update(milestonesTable).
		Set("date", m.Date).
		Set("kind", m.Kind).
		Set("title", m.Title).
		Set("notes", m.Notes).
		Set("completed", m.Completed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID, "user_id": m.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building milestone update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating milestone")
	}

	return nil
}

func (r *milestoneRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(milestonesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building milestone delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting milestone")
	}

	return nil
}

func (r *milestoneRepository) GetByID(userID int, id string) (*domain.Milestone, error) {
	query, args, err := squirrel.
		Select(milestoneColumns()).
		From(milestonesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building milestone select")
	}

	row := r.conn.QueryRow(query, args...)
	m, err := scanMilestone(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning milestone")
	}

	return m, nil
}

func (r *milestoneRepository) ListByClient(userID int, clientID string) ([]*domain.Milestone, error) {
	return r.list(squirrel.Eq{"user_id": userID, "client_id": clientID})
}

func (r *milestoneRepository) ListByUser(userID int) ([]*domain.Milestone, error) {
	return r.list(squirrel.Eq{"user_id": userID})
}

func (r *milestoneRepository) list(where squirrel.Eq) ([]*domain.Milestone, error) {
	query, args, err := squirrel.
		Select(milestoneColumns()).
		From(milestonesTable).
		Where(where).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building milestone list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing milestones")
	}
	defer rows.Close()

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning milestones")
		}
		milestones = append(milestones, m)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating milestones")
	}

	return milestones, nil
}

func milestoneColumns() string {
	return "id, user_id, client_id, date, kind, title, notes, completed, created_at, updated_at"
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	m := &domain.Milestone{}
	var date time.Time

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.ClientID,
		&date,
		&m.Kind,
		&m.Title,
		&m.Notes,
		&m.Completed,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Date = date.Format(time.DateOnly)

	return m, nil
}
