package documents

import (
	"errors"
	"time"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrTitleRequired     = errors.New("document title is required")
	ErrFileNameRequired  = errors.New("document file name is required")
	ErrNegativeSizeBytes = errors.New("document size cannot be negative")
)

// DocumentService manages library metadata. Binary content never passes
// through this API.
type DocumentService interface {
	Create(d *domain.Document) (*domain.Document, error)
	Update(userID int, d *domain.Document) error
	Delete(userID int, id string) error
	Get(userID int, id string) (*domain.Document, error)
	List(userID int, category string) ([]*domain.Document, error)
}

type Service struct {
	documentRepo repository.DocumentRepository
}

func NewService(documentRepo repository.DocumentRepository) DocumentService {
	return &Service{
		documentRepo: documentRepo,
	}
}

func (s *Service) Create(d *domain.Document) (*domain.Document, error) {
	if err := validateDocument(d); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	d.ID = id

	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}

	if err := s.documentRepo.Create(d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Update(userID int, d *domain.Document) error {
	existing, err := s.documentRepo.GetByID(userID, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDocumentNotFound
	}

	if err := validateDocument(d); err != nil {
		return err
	}

	d.UserID = userID
	if d.UploadedAt.IsZero() {
		d.UploadedAt = existing.UploadedAt
	}

	return s.documentRepo.Update(d)
}

func (s *Service) Delete(userID int, id string) error {
	return s.documentRepo.Delete(userID, id)
}

func (s *Service) Get(userID int, id string) (*domain.Document, error) {
	return s.documentRepo.GetByID(userID, id)
}

func (s *Service) List(userID int, category string) ([]*domain.Document, error) {
	return s.documentRepo.ListByUser(userID, category)
}

func validateDocument(d *domain.Document) error {
	if d.Title == "" {
		return ErrTitleRequired
	}

	if d.FileName == "" {
		return ErrFileNameRequired
	}

	if d.SizeBytes < 0 {
		return ErrNegativeSizeBytes
	}

	return nil
}
