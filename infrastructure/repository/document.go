package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

const (
	documentsTable = "documents"
)

type DocumentRepository interface {
	Create(d *domain.Document) error
	Update(d *domain.Document) error
	Delete(userID int, id string) error
	GetByID(userID int, id string) (*domain.Document, error)
	ListByUser(userID int, category string) ([]*domain.Document, error)
}

type documentRepository struct {
	conn *postgres.Connection
}

func NewDocumentRepository(conn *postgres.Connection) DocumentRepository {
	return &documentRepository{
		conn: conn,
	}
}

func (r *documentRepository) Create(d *domain.Document) error {
	query, args, err := squirrel.
		Insert(documentsTable).
		Columns("id", "user_id", "client_id", "title", "category", "file_name", "content_type", "size_bytes", "uploaded_at").
		Values(d.ID, d.UserID, d.ClientID, d.Title, d.Category, d.FileName, d.ContentType, d.SizeBytes, d.UploadedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building document insert")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "inserting document")
	}

	return nil
}

func (r *documentRepository) Update(d *domain.Document) error {
	query, args, err := squirrel.
		Update(documentsTable).
		Set("client_id", d.ClientID).
		Set("title", d.Title).
		Set("category", d.Category).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID, "user_id": d.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building document update")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating document")
	}

	return nil
}

func (r *documentRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building document delete")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting document")
	}

	return nil
}

func (r *documentRepository) GetByID(userID int, id string) (*domain.Document, error) {
	query, args, err := squirrel.
		Select(documentColumns()).
		From(documentsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building document select")
	}

	row := r.conn.QueryRow(query, args...)
	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning document")
	}

	return d, nil
}

func (r *documentRepository) ListByUser(userID int, category string) ([]*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns()).
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID})

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": category})
	}

	query, args, err := queryBuilder.
		OrderBy("uploaded_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building document list")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing documents")
	}
	defer rows.Close()

	documents := make([]*domain.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning documents")
		}
		documents = append(documents, d)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating documents")
	}

	return documents, nil
}

func documentColumns() string {
	return "id, user_id, client_id, title, category, file_name, content_type, size_bytes, uploaded_at, created_at, updated_at"
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	d := &domain.Document{}

	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.ClientID,
		&d.Title,
		&d.Category,
		&d.FileName,
		&d.ContentType,
		&d.SizeBytes,
		&d.UploadedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}
