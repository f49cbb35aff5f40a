package portfolios

import (
	"errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrPortfolioNotFound  = errors.New("model portfolio not found")
	ErrNameRequired       = errors.New("portfolio name is required")
	ErrInvalidAllocations = errors.New("allocation weights must be positive and sum to 100")
)

// PortfolioService manages reusable allocation templates.
type PortfolioService interface {
	Create(p *domain.ModelPortfolio) (*domain.ModelPortfolio, error)
	Update(userID int, p *domain.ModelPortfolio) error
	Delete(userID int, id string) error
	Get(userID int, id string) (*domain.ModelPortfolio, error)
	List(userID int) ([]*domain.ModelPortfolio, error)
}

type Service struct {
	portfolioRepo repository.PortfolioRepository
}

func NewService(portfolioRepo repository.PortfolioRepository) PortfolioService {
	return &Service{
		portfolioRepo: portfolioRepo,
	}
}

func (s *Service) Create(p *domain.ModelPortfolio) (*domain.ModelPortfolio, error) {
	if err := validatePortfolio(p); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.portfolioRepo.Create(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(userID int, p *domain.ModelPortfolio) error {
	existing, err := s.portfolioRepo.GetByID(userID, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioNotFound
	}

	if err := validatePortfolio(p); err != nil {
		return err
	}

	p.UserID = userID

	return s.portfolioRepo.Update(p)
}

func (s *Service) Delete(userID int, id string) error {
	return s.portfolioRepo.Delete(userID, id)
}

func (s *Service) Get(userID int, id string) (*domain.ModelPortfolio, error) {
	return s.portfolioRepo.GetByID(userID, id)
}

func (s *Service) List(userID int) ([]*domain.ModelPortfolio, error) {
	return s.portfolioRepo.ListByUser(userID)
}

func validatePortfolio(p *domain.ModelPortfolio) error {
	if p.Name == "" {
		return ErrNameRequired
	}

	if !p.ValidateAllocations() {
		return ErrInvalidAllocations
	}

	return nil
}
