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
	revenueEntriesTable = "revenue_entries"
)

// RevenueFilter narrows a listing. Zero values mean "no filter".
type RevenueFilter struct {
	Domain    domain.RevenueDomain
	Status    domain.RevenueStatus
	EntryType domain.InvestmentEntryType
	ClientID  string
	FromDate  string
	ToDate    string
}

type RevenueEntryRepository interface {
	Create(entry *domain.RevenueEntry) error
	Update(entry *domain.RevenueEntry) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.RevenueEntry, error)
	ListByUser(userID int, filter RevenueFilter) ([]*domain.RevenueEntry, error)
}

type revenueEntryRepository struct {
	conn *postgres.Connection
}

func NewRevenueEntryRepository(conn *postgres.Connection) RevenueEntryRepository {
	return &revenueEntryRepository{
		conn: conn,
	}
}

func (r *revenueEntryRepository) Create(entry *domain.RevenueEntry) error {
	query, args, err := squirrel.
		Insert(revenueEntriesTable).
		Columns(
			"id", "user_id", "client_id", "domain", "date", "amount", "status",
			"policy_type", "entry_type", "monthly_premium", "account_type", "notes",
		).
		Values(
			entry.ID,
			entry.UserID,
			entry.ClientID,
			entry.Domain,
			entry.Date,
			entry.Amount,
			entry.Status,
			entry.PolicyType,
			entry.EntryType,
			entry.MonthlyPremium,
			entry.AccountType,
			entry.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building revenue insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting revenue entry")
	}

	return nil
}

func (r *revenueEntryRepository) Update(entry *domain.RevenueEntry) error {
	query, args, err := squirrel.
		Update(revenueEntriesTable).
		Set("client_id", entry.ClientID).
		Set("date", entry.Date).
		Set("amount", entry.Amount).
		Set("status", entry.Status).
		Set("policy_type", entry.PolicyType).
		Set("entry_type", entry.EntryType).
		Set("monthly_premium", entry.MonthlyPremium).
		Set("account_type", entry.AccountType).
		Set("notes", entry.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID, "user_id": entry.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building revenue update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating revenue entry")
	}

	return nil
}

func (r *revenueEntryRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(revenueEntriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building revenue delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting revenue entry")
	}

	return nil
}

func (r *revenueEntryRepository) GetByID(userID int, id string) (*domain.RevenueEntry, error) {
	query, args, err := squirrel.
		Select(revenueColumns()).
		From(revenueEntriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building revenue select")
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanRevenueEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning revenue entry")
	}

	return entry, nil
}

func (r *revenueEntryRepository) ListByUser(userID int, filter RevenueFilter) ([]*domain.RevenueEntry, error) {
	queryBuilder := squirrel.
		Select(revenueColumns()).
		From(revenueEntriesTable).
		Where(squirrel.Eq{"user_id": userID})

	if filter.Domain != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"domain": filter.Domain})
	}

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.EntryType != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"entry_type": filter.EntryType})
	}

	if filter.ClientID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"client_id": filter.ClientID})
	}

	if filter.FromDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": filter.FromDate})
	}

	if filter.ToDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": filter.ToDate})
	}

	query, args, err := queryBuilder.
		OrderBy("date DESC, created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building revenue list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing revenue entries")
	}
	defer rows.Close()

	entries := make([]*domain.RevenueEntry, 0)
	for rows.Next() {
		entry, err := scanRevenueEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning revenue entries")
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating revenue entries")
	}

	return entries, nil
}

func revenueColumns() string {
	return "id, user_id, client_id, domain, date, amount, status, policy_type, entry_type, monthly_premium, account_type, notes, created_at, updated_at"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevenueEntry(row rowScanner) (*domain.RevenueEntry, error) {
	entry := &domain.RevenueEntry{}
	var date time.Time

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ClientID,
		&entry.Domain,
		&date,
		&entry.Amount,
		&entry.Status,
		&entry.PolicyType,
		&entry.EntryType,
		&entry.MonthlyPremium,
		&entry.AccountType,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Date = date.Format(time.DateOnly)

	return entry, nil
}
