package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	portfoliosTable = "model_portfolios"
)

type PortfolioRepository interface {
	Create(p *domain.ModelPortfolio) error
	Update(p *domain.ModelPortfolio) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.ModelPortfolio, error)
	ListByUser(userID int) ([]*domain.ModelPortfolio, error)
}

type portfolioRepository struct {
	conn *postgres.Connection
}

func NewPortfolioRepository(conn *postgres.Connection) PortfolioRepository {
	return &portfolioRepository{
		conn: conn,
	}
}

func (r *portfolioRepository) Create(p *domain.ModelPortfolio) error {
	allocationsJSON, err := json.Marshal(p.Allocations)
	if err != nil {
		return errors.Wrap(err, "serializing allocations")
	}

	query, args, err := squirrel.
		Insert(portfoliosTable).
		Columns("id", "user_id", "name", "description", "risk_level", "allocations").
		Values(p.ID, p.UserID, p.Name, p.Description, p.RiskLevel, allocationsJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building portfolio insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting portfolio")
	}

	return nil
}

func (r *portfolioRepository) Update(p *domain.ModelPortfolio) error {
	allocationsJSON, err := json.Marshal(p.Allocations)
	if err != nil {
		return errors.Wrap(err, "serializing allocations")
	}

	query, args, err := squirrel.
		Update(portfoliosTable).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("risk_level", p.RiskLevel).
		Set("allocations", allocationsJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building portfolio update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating portfolio")
	}

	return nil
}

func (r *portfolioRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(portfoliosTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building portfolio delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting portfolio")
	}

	return nil
}

func (r *portfolioRepository) GetByID(userID int, id string) (*domain.ModelPortfolio, error) {
	query, args, err := squirrel.
		Select(portfolioColumns()).
		From(portfoliosTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building portfolio select")
	}

	row := r.conn.QueryRow(query, args...)
	p, err := scanPortfolio(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning portfolio")
	}

	return p, nil
}

func (r *portfolioRepository) ListByUser(userID int) ([]*domain.ModelPortfolio, error) {
	query, args, err := squirrel.
		Select(portfolioColumns()).
		From(portfoliosTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building portfolio list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing portfolios")
	}
	defer rows.Close()

	portfolios := make([]*domain.ModelPortfolio, 0)
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning portfolios")
		}
		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating portfolios")
	}

	return portfolios, nil
}

func portfolioColumns() string {
	return "id, user_id, name, description, risk_level, allocations, created_at, updated_at"
}

func scanPortfolio(row rowScanner) (*domain.ModelPortfolio, error) {
	p := &domain.ModelPortfolio{}
	var allocationsJSON []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.RiskLevel,
		&allocationsJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if allocationsJSON != nil {
		if err := json.Unmarshal(allocationsJSON, &p.Allocations); err != nil {
			return nil, errors.Wrap(err, "deserializing allocations")
		}
	}

	return p, nil
}
