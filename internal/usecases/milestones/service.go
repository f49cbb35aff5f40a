package milestones

import (
	"errors"
	"time"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrTitleRequired     = errors.New("milestone title is required")
	ErrClientRequired    = errors.New("milestone client is required")
	ErrInvalidDate       = errors.New("milestone date must be YYYY-MM-DD")
)

// MilestoneService manages dated client events.
type MilestoneService interface {
	Create(m *domain.Milestone) (*domain.Milestone, error)
	Update(userID int, m *domain.Milestone) error
	Delete(userID int, id string) error
	Get(userID int, id string) (*domain.Milestone, error)
	ListByClient(userID int, clientID string) ([]*domain.Milestone, error)
	List(userID int) ([]*domain.Milestone, error)
	Complete(userID int, id string) (*domain.Milestone, error)
}

type Service struct {
	milestoneRepo repository.MilestoneRepository
}

func NewService(milestoneRepo repository.MilestoneRepository) MilestoneService {
	return &Service{
		milestoneRepo: milestoneRepo,
	}
}

func (s *Service) Create(m *domain.Milestone) (*domain.Milestone, error) {
	if err := validateMilestone(m); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.Completed = false

	if m.Kind == "" {
		m.Kind = domain.MilestoneOther
	}

	if err := s.milestoneRepo.Create(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Update(userID int, m *domain.Milestone) error {
	existing, err := s.milestoneRepo.GetByID(userID, m.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMilestoneNotFound
	}

	if err := validateMilestone(m); err != nil {
		return err
	}

	m.UserID = userID

	return s.milestoneRepo.Update(m)
}

func (s *Service) Delete(userID int, id string) error {
	return s.milestoneRepo.Delete(userID, id)
}

func (s *Service) Get(userID int, id string) (*domain.Milestone, error) {
	return s.milestoneRepo.GetByID(userID, id)
}

func (s *Service) ListByClient(userID int, clientID string) ([]*domain.Milestone, error) {
	return s.milestoneRepo.ListByClient(userID, clientID)
}

func (s *Service) List(userID int) ([]*domain.Milestone, error) {
	return s.milestoneRepo.ListByUser(userID)
}

func (s *Service) Complete(userID int, id string) (*domain.Milestone, error) {
	m, err := s.milestoneRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMilestoneNotFound
	}

	m.Completed = true

	if err := s.milestoneRepo.Update(m); err != nil {
		return nil, err
	}

	return m, nil
}

func validateMilestone(m *domain.Milestone) error {
	if m.Title == "" {
		return ErrTitleRequired
	}

	if m.ClientID == "" {
		return ErrClientRequired
	}

	if _, err := time.Parse(time.DateOnly, m.Date); err != nil {
		return ErrInvalidDate
	}

	return nil
}
