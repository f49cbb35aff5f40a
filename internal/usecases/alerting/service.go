package alerting

import (
	"errors"
	"time"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

var (
	ErrAlertNotFound     = errors.New("alert not found")
	ErrSymbolRequired    = errors.New("alert symbol is required")
	ErrInvalidAction     = errors.New("alert action must be buy or sell")
	ErrInvalidPrice      = errors.New("target price must be positive")
	ErrAlertNotOpen      = errors.New("alert is no longer open")
	ErrInvalidExpiryDate = errors.New("expiry date must be YYYY-MM-DD")
)

// AlertService manages price watches on client positions.
type AlertService interface {
	Create(a *domain.TradingAlert) (*domain.TradingAlert, error)
	Update(userID int, a *domain.TradingAlert) error
	Delete(userID int, id string) error
	Get(userID int, id string) (*domain.TradingAlert, error)
	List(userID int, status domain.AlertStatus) ([]*domain.TradingAlert, error)
	Trigger(userID int, id string) (*domain.TradingAlert, error)
	Dismiss(userID int, id string) (*domain.TradingAlert, error)
}

type Service struct {
	alertRepo repository.AlertRepository
}

func NewService(alertRepo repository.AlertRepository) AlertService {
	return &Service{
		alertRepo: alertRepo,
	}
}

func (s *Service) Create(a *domain.TradingAlert) (*domain.TradingAlert, error) {
	if err := validateAlert(a); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.Status = domain.AlertOpen
	a.TriggeredAt = nil

	if err := s.alertRepo.Create(a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Update(userID int, a *domain.TradingAlert) error {
	existing, err := s.alertRepo.GetByID(userID, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAlertNotFound
	}

	if err := validateAlert(a); err != nil {
		return err
	}

	// Lifecycle moves go through Trigger and Dismiss
	a.Status = existing.Status
	a.TriggeredAt = existing.TriggeredAt
	a.UserID = userID

	return s.alertRepo.Update(a)
}

func (s *Service) Delete(userID int, id string) error {
	return s.alertRepo.Delete(userID, id)
}

func (s *Service) Get(userID int, id string) (*domain.TradingAlert, error) {
	return s.alertRepo.GetByID(userID, id)
}

func (s *Service) List(userID int, status domain.AlertStatus) ([]*domain.TradingAlert, error) {
	return s.alertRepo.ListByUser(userID, status)
}

func (s *Service) Trigger(userID int, id string) (*domain.TradingAlert, error) {
	return s.close(userID, id, domain.AlertTriggered)
}

func (s *Service) Dismiss(userID int, id string) (*domain.TradingAlert, error) {
	return s.close(userID, id, domain.AlertDismissed)
}

// close moves an open alert to a terminal status. Only open alerts may
// move; triggered, dismissed and expired are final.
func (s *Service) close(userID int, id string, status domain.AlertStatus) (*domain.TradingAlert, error) {
	a, err := s.alertRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAlertNotFound
	}

	if a.Status != domain.AlertOpen {
		return nil, ErrAlertNotOpen
	}

	a.Status = status
	if status == domain.AlertTriggered {
		now := time.Now()
		a.TriggeredAt = &now
	}

	if err := s.alertRepo.Update(a); err != nil {
		return nil, err
	}

	return a, nil
}

func validateAlert(a *domain.TradingAlert) error {
	if a.Symbol == "" {
		return ErrSymbolRequired
	}

	if a.Action != domain.ActionBuy && a.Action != domain.ActionSell {
		return ErrInvalidAction
	}

	if a.TargetPrice.Sign() <= 0 {
		return ErrInvalidPrice
	}

	if a.ExpiresAt != nil {
		if _, err := time.Parse(time.DateOnly, *a.ExpiresAt); err != nil {
			return ErrInvalidExpiryDate
		}
	}

	return nil
}
