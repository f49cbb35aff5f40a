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
	tradingAlertsTable = "trading_alerts"
)

type AlertRepository interface {
	Create(a *domain.TradingAlert) error
	Update(a *domain.TradingAlert) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.TradingAlert, error)
	ListByUser(userID int, status domain.AlertStatus) ([]*domain.TradingAlert, error)
	ListOpen() ([]*domain.TradingAlert, error)
	ExpireOlderThan(date string) (int64, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) Create(a *domain.TradingAlert) error {
	query, args, err := squirrel.
		Insert(tradingAlertsTable).
		Columns("id", "user_id", "client_id", "symbol", "action", "target_price", "status", "expires_at", "notes").
		Values(a.ID, a.UserID, a.ClientID, a.Symbol, a.Action, a.TargetPrice, a.Status, a.ExpiresAt, a.Notes).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building alert insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting alert")
	}

	return nil
}

func (r *alertRepository) Update(a *domain.TradingAlert) error {
	query, args, err := squirrel.
		Update(tradingAlertsTable).
		Set("client_id", a.ClientID).
		Set("symbol", a.Symbol).
		Set("action", a.Action).
		Set("target_price", a.TargetPrice).
		Set("status", a.Status).
		Set("expires_at", a.ExpiresAt).
		Set("notes", a.Notes).
		Set("triggered_at", a.TriggeredAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID, "user_id": a.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building alert update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating alert")
	}

	return nil
}

func (r *alertRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(tradingAlertsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building alert delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting alert")
	}

	return nil
}

func (r *alertRepository) GetByID(userID int, id string) (*domain.TradingAlert, error) {
	query, args, err := squirrel.
		Select(alertColumns()).
		From(tradingAlertsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building alert select")
	}

	row := r.conn.QueryRow(query, args...)
	a, err := scanAlert(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning alert")
	}

	return a, nil
}

func (r *alertRepository) ListByUser(userID int, status domain.AlertStatus) ([]*domain.TradingAlert, error) {
	queryBuilder := squirrel.
		Select(alertColumns()).
		From(tradingAlertsTable).
		Where(squirrel.Eq{"user_id": userID})

	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": status})
	}

	query, args, err := queryBuilder.
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building alert list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing alerts")
	}
	defer rows.Close()

	alerts := make([]*domain.TradingAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning alerts")
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating alerts")
	}

	return alerts, nil
}

// ListOpen returns every open alert regardless of owner. The price sync
// uses it to batch quote lookups across all advisors.
func (r *alertRepository) ListOpen() ([]*domain.TradingAlert, error) {
	query, args, err := squirrel.
		Select(alertColumns()).
		From(tradingAlertsTable).
		Where(squirrel.Eq{"status": domain.AlertOpen}).
		OrderBy("symbol ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building open alert list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing open alerts")
	}
	defer rows.Close()

	alerts := make([]*domain.TradingAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning open alerts")
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating open alerts")
	}

	return alerts, nil
}

// ExpireOlderThan flips open alerts with an expiry before the given date
// to expired, returning how many were touched.
func (r *alertRepository) ExpireOlderThan(date string) (int64, error) {
	query, args, err := squirrel.
		Update(tradingAlertsTable).
		Set("status", domain.AlertExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.AlertOpen}).
		Where(squirrel.Lt{"expires_at": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building alert expiry update")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "expiring alerts")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "reading affected rows")
	}

	return rowsAffected, nil
}

func alertColumns() string {
	return "id, user_id, client_id, symbol, action, target_price, status, expires_at, notes, triggered_at, created_at, updated_at"
}

func scanAlert(row rowScanner) (*domain.TradingAlert, error) {
	a := &domain.TradingAlert{}
	var expiresAt *time.Time

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ClientID,
		&a.Symbol,
		&a.Action,
		&a.TargetPrice,
		&a.Status,
		&expiresAt,
		&a.Notes,
		&a.TriggeredAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiresAt != nil {
		formatted := expiresAt.Format(time.DateOnly)
		a.ExpiresAt = &formatted
	}

	return a, nil
}
