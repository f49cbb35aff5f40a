package prospecting

import (
	"errors"
	"time"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrProspectNotFound = errors.New("prospect not found")
	ErrInvalidStage     = errors.New("unknown funnel stage")
	ErrNameRequired     = errors.New("prospect name is required")
	ErrTerminalStage    = errors.New("prospect already left the funnel")
)

// ProspectService manages the intake funnel.
type ProspectService interface {
	Create(p *domain.Prospect) (*domain.Prospect, error)
	Update(userID int, p *domain.Prospect) error
	Delete(userID int, id string) error
	Get(userID int, id string) (*domain.Prospect, error)
	List(userID int) ([]*domain.Prospect, error)
	MoveStage(userID int, id string, stage domain.ProspectStage) (*domain.Prospect, error)
	FunnelSummary(userID int) (*domain.FunnelSummary, error)
}

type Service struct {
	prospectRepo repository.ProspectRepository
}

func NewService(prospectRepo repository.ProspectRepository) ProspectService {
	return &Service{
		prospectRepo: prospectRepo,
	}
}

func (s *Service) Create(p *domain.Prospect) (*domain.Prospect, error) {
	if p.Name == "" {
		return nil, ErrNameRequired
	}

	if p.Stage == "" {
		p.Stage = domain.StageLead
	}

	if !domain.ValidStage(p.Stage) {
		return nil, ErrInvalidStage
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.Stale = false
	p.StageChangedAt = time.Now()

	if err := s.prospectRepo.Create(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(userID int, p *domain.Prospect) error {
	existing, err := s.prospectRepo.GetByID(userID, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProspectNotFound
	}

	// Stage moves go through MoveStage so the timestamps stay honest
	p.Stage = existing.Stage
	p.Stale = existing.Stale
	p.StageChangedAt = existing.StageChangedAt
	p.UserID = userID

	return s.prospectRepo.Update(p)
}

func (s *Service) Delete(userID int, id string) error {
	return s.prospectRepo.Delete(userID, id)
}

func (s *Service) Get(userID int, id string) (*domain.Prospect, error) {
	return s.prospectRepo.GetByID(userID, id)
}

func (s *Service) List(userID int) ([]*domain.Prospect, error) {
	return s.prospectRepo.ListByUser(userID)
}

// MoveStage advances (or rewinds) a prospect in the funnel. Any stage may
// move to any other except out of a terminal stage; a move clears the
// stale flag and restamps the stage clock.
func (s *Service) MoveStage(userID int, id string, stage domain.ProspectStage) (*domain.Prospect, error) {
	if !domain.ValidStage(stage) {
		return nil, ErrInvalidStage
	}

	p, err := s.prospectRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProspectNotFound
	}

	if p.Stage.Terminal() {
		return nil, ErrTerminalStage
	}

	p.Stage = stage
	p.Stale = false
	p.StageChangedAt = time.Now()

	if err := s.prospectRepo.Update(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) FunnelSummary(userID int) (*domain.FunnelSummary, error) {
	prospects, err := s.prospectRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.FunnelSummary{
		Stages: make(map[domain.ProspectStage]int, len(domain.FunnelOrder)),
	}

	for _, stage := range domain.FunnelOrder {
		summary.Stages[stage] = 0
	}

	for _, p := range prospects {
		summary.Stages[p.Stage]++
		summary.Total++
		if p.Stale {
			summary.Stale++
		}
	}

	if summary.Total > 0 {
		summary.ConversionRate = utils.RoundWithTwoDecimalPlace(
			float64(summary.Stages[domain.StageWon]) / float64(summary.Total) * 100,
		)
	}

	return summary, nil
}
