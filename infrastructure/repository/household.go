package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	householdsTable = "households"
	clientsTable    = "clients"
)

type HouseholdRepository interface {
	CreateHousehold(h *domain.Household) error
	UpdateHousehold(h *domain.Household) error
	DeleteHousehold(userID int, id string) error
	GetHousehold(userID int, id string) (*domain.Household, error)
	ListByUser(userID int) ([]*domain.Household, error)

	CreateClient(c *domain.Client) error
	UpdateClient(c *domain.Client) error
	DeleteClient(householdID, id string) error
	GetClient(id string) (*domain.Client, error)
	ListClients(householdID string) ([]*domain.Client, error)
}

type householdRepository struct {
	conn *postgres.Connection
}

func NewHouseholdRepository(conn *postgres.Connection) HouseholdRepository {
	return &householdRepository{
		conn: conn,
	}
}

func (r *householdRepository) CreateHousehold(h *domain.Household) error {
	query, args, err := squirrel.
		Insert(householdsTable).
		Columns("id", "user_id", "name", "segment", "notes").
		Values(h.ID, h.UserID, h.Name, h.Segment, h.Notes).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building household insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting household")
	}

	return nil
}

func (r *householdRepository) UpdateHousehold(h *domain.Household) error {
	query, args, err := squirrel.
		Update(householdsTable).
		Set("name", h.Name).
		Set("segment", h.Segment).
		Set("notes", h.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": h.ID, "user_id": h.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building household update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating household")
	}

	return nil
}

func (r *householdRepository) DeleteHousehold(userID int, id string) error {
	// Members go with the household
	clientsSQL, clientsArgs, err := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"household_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building client cascade delete")
	}

	query, args, err := squirrel.
		Delete(householdsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building household delete")
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(clientsSQL, clientsArgs...); err != nil {
			return errors.Wrap(err, "deleting household members")
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return errors.Wrap(err, "deleting household")
		}
		return nil
	})
}

func (r *householdRepository) GetHousehold(userID int, id string) (*domain.Household, error) {
	query, args, err := squirrel.
		Select("id, user_id, name, segment, notes, created_at, updated_at").
		From(householdsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building household select")
	}

	h := &domain.Household{}
	err = r.conn.QueryRow(query, args...).Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Segment,
		&h.Notes,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning household")
	}

	members, err := r.ListClients(h.ID)
	if err != nil {
		return nil, err
	}
	h.Members = members

	return h, nil
}

func (r *householdRepository) ListByUser(userID int) ([]*domain.Household, error) {
	query, args, err := squirrel.
		Select("id, user_id, name, segment, notes, created_at, updated_at").
		From(householdsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building household list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing households")
	}
	defer rows.Close()

	households := make([]*domain.Household, 0)
	for rows.Next() {
		h := &domain.Household{}
		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Name,
			&h.Segment,
			&h.Notes,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning households")
		}
		households = append(households, h)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating households")
	}

	return households, nil
}

func (r *householdRepository) CreateClient(c *domain.Client) error {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("id", "household_id", "name", "lastname", "email", "phone", "birth_date", "review_cadence", "next_review_at").
		Values(c.ID, c.HouseholdID, c.Name, c.Lastname, c.Email, c.Phone, c.BirthDate, c.ReviewCadence, c.NextReviewAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building client insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting client")
	}

	return nil
}

func (r *householdRepository) UpdateClient(c *domain.Client) error {
	query, args, err := squirrel.
		Update(clientsTable).
		Set("name", c.Name).
		Set("lastname", c.Lastname).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("birth_date", c.BirthDate).
		Set("review_cadence", c.ReviewCadence).
		Set("next_review_at", c.NextReviewAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building client update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating client")
	}

	return nil
}

func (r *householdRepository) DeleteClient(householdID, id string) error {
	query, args, err := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": id, "household_id": householdID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building client delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting client")
	}

	return nil
}

func (r *householdRepository) GetClient(id string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("id, household_id, name, lastname, email, phone, birth_date, review_cadence, next_review_at, created_at, updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building client select")
	}

	row := r.conn.QueryRow(query, args...)
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning client")
	}

	return c, nil
}

func (r *householdRepository) ListClients(householdID string) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("id, household_id, name, lastname, email, phone, birth_date, review_cadence, next_review_at, created_at, updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"household_id": householdID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building client list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing clients")
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning clients")
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating clients")
	}

	return clients, nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	c := &domain.Client{}
	var birthDate *time.Time

	err := row.Scan(
		&c.ID,
		&c.HouseholdID,
		&c.Name,
		&c.Lastname,
		&c.Email,
		&c.Phone,
		&birthDate,
		&c.ReviewCadence,
		&c.NextReviewAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if birthDate != nil {
		formatted := birthDate.Format(time.DateOnly)
		c.BirthDate = &formatted
	}

	return c, nil
}
