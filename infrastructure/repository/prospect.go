package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	prospectsTable = "prospects"
)

type ProspectRepository interface {
	Create(p *domain.Prospect) error
	Update(p *domain.Prospect) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.Prospect, error)
	ListByUser(userID int) ([]*domain.Prospect, error)
	ListIdleSince(cutoff string) ([]*domain.Prospect, error)
	MarkStale(ids []string) (int64, error)
}

type prospectRepository struct {
	conn *postgres.Connection
}

func NewProspectRepository(conn *postgres.Connection) ProspectRepository {
	return &prospectRepository{
		conn: conn,
	}
}

func (r *prospectRepository) Create(p *domain.Prospect) error {
	query, args, err := squirrel.
		Insert(prospectsTable).
		Columns("id", "user_id", "name", "email", "phone", "source", "stage", "stale", "notes", "stage_changed_at").
		Values(p.ID, p.UserID, p.Name, p.Email, p.Phone, p.Source, p.Stage, p.Stale, p.Notes, p.StageChangedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building prospect insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting prospect")
	}

	return nil
}

func (r *prospectRepository) Update(p *domain.Prospect) error {
	query, args, err := squirrel.
		Update(prospectsTable).
		Set("name", p.Name).
		Set("email", p.Email).
		Set("phone", p.Phone).
		Set("source", p.Source).
		Set("stage", p.Stage).
		Set("stale", p.Stale).
		Set("notes", p.Notes).
		Set("stage_changed_at", p.StageChangedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building prospect update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating prospect")
	}

	return nil
}

func (r *prospectRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(prospectsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building prospect delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting prospect")
	}

	return nil
}

func (r *prospectRepository) GetByID(userID int, id string) (*domain.Prospect, error) {
	query, args, err := squirrel.
		Select(prospectColumns()).
		From(prospectsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building prospect select")
	}

	row := r.conn.QueryRow(query, args...)
	p, err := scanProspect(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning prospect")
	}

	return p, nil
}

func (r *prospectRepository) ListByUser(userID int) ([]*domain.Prospect, error) {
	query, args, err := squirrel.
		Select(prospectColumns()).
		From(prospectsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("stage_changed_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building prospect list")
	}

	return r.queryProspects(query, args)
}

// ListIdleSince returns non-terminal prospects whose stage has not moved
// since the cutoff timestamp (RFC 3339).
func (r *prospectRepository) ListIdleSince(cutoff string) ([]*domain.Prospect, error) {
	query, args, err := squirrel.
		Select(prospectColumns()).
		From(prospectsTable).
		Where(squirrel.Lt{"stage_changed_at": cutoff}).
		Where(squirrel.Eq{"stale": false}).
		Where(squirrel.NotEq{"stage": []string{string(domain.StageWon), string(domain.StageLost)}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building idle prospect list")
	}

	return r.queryProspects(query, args)
}

func (r *prospectRepository) MarkStale(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update(prospectsTable).
		Set("stale", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building stale update")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "marking prospects stale")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "reading affected rows")
	}

	return rowsAffected, nil
}

func (r *prospectRepository) queryProspects(query string, args []interface{}) ([]*domain.Prospect, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing prospects")
	}
	defer rows.Close()

	prospects := make([]*domain.Prospect, 0)
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning prospects")
		}
		prospects = append(prospects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating prospects")
	}

	return prospects, nil
}

func prospectColumns() string {
	return "id, user_id, name, email, phone, source, stage, stale, notes, stage_changed_at, created_at, updated_at"
}

func scanProspect(row rowScanner) (*domain.Prospect, error) {
	p := &domain.Prospect{}

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Source,
		&p.Stage,
		&p.Stale,
		&p.Notes,
		&p.StageChangedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}
