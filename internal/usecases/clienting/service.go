package clienting

import (
	"errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrNameRequired      = errors.New("name is required")
)

// ClientService manages households and their member clients.
type ClientService interface {
	CreateHousehold(h *domain.Household) (*domain.Household, error)
	UpdateHousehold(userID int, req *domain.UpdateHouseholdRequest) error
	DeleteHousehold(userID int, id string) error
	GetHousehold(userID int, id string) (*domain.Household, error)
	ListHouseholds(userID int) ([]*domain.Household, error)

	AddMember(userID int, householdID string, c *domain.Client) (*domain.Client, error)
	UpdateMember(userID int, req *domain.UpdateClientRequest) error
	RemoveMember(userID int, householdID, clientID string) error
}

type Service struct {
	householdRepo repository.HouseholdRepository
}

func NewService(householdRepo repository.HouseholdRepository) ClientService {
	return &Service{
		householdRepo: householdRepo,
	}
}

func (s *Service) CreateHousehold(h *domain.Household) (*domain.Household, error) {
	if h.Name == "" {
		return nil, ErrNameRequired
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	h.ID = id

	if err := s.householdRepo.CreateHousehold(h); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *Service) UpdateHousehold(userID int, req *domain.UpdateHouseholdRequest) error {
	h, err := s.householdRepo.GetHousehold(userID, req.ID)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrHouseholdNotFound
	}

	if req.Name != nil {
		h.Name = *req.Name
	}

	if req.Segment != nil {
		h.Segment = *req.Segment
	}

	if req.Notes != nil {
		h.Notes = *req.Notes
	}

	return s.householdRepo.UpdateHousehold(h)
}

func (s *Service) DeleteHousehold(userID int, id string) error {
	return s.householdRepo.DeleteHousehold(userID, id)
}

func (s *Service) GetHousehold(userID int, id string) (*domain.Household, error) {
	return s.householdRepo.GetHousehold(userID, id)
}

func (s *Service) ListHouseholds(userID int) ([]*domain.Household, error) {
	return s.householdRepo.ListByUser(userID)
}

func (s *Service) AddMember(userID int, householdID string, c *domain.Client) (*domain.Client, error) {
	if c.Name == "" {
		return nil, ErrNameRequired
	}

	h, err := s.householdRepo.GetHousehold(userID, householdID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHouseholdNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.HouseholdID = householdID

	if err := s.householdRepo.CreateClient(c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) UpdateMember(userID int, req *domain.UpdateClientRequest) error {
	c, err := s.householdRepo.GetClient(req.ID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrClientNotFound
	}

	// The household must belong to the caller
	h, err := s.householdRepo.GetHousehold(userID, c.HouseholdID)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrClientNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Lastname != nil {
		c.Lastname = *req.Lastname
	}

	if req.Email != nil {
		c.Email = req.Email
	}

	if req.Phone != nil {
		c.Phone = req.Phone
	}

	if req.BirthDate != nil {
		c.BirthDate = req.BirthDate
	}

	if req.ReviewCadence != nil {
		c.ReviewCadence = *req.ReviewCadence
	}

	return s.householdRepo.UpdateClient(c)
}

func (s *Service) RemoveMember(userID int, householdID, clientID string) error {
	h, err := s.householdRepo.GetHousehold(userID, householdID)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrHouseholdNotFound
	}

	return s.householdRepo.DeleteClient(householdID, clientID)
}
