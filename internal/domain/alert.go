package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertAction is the trade side the alert watches for.
type AlertAction string

const (
	ActionBuy  AlertAction = "buy"
	ActionSell AlertAction = "sell"
)

// AlertStatus is the alert lifecycle.
type AlertStatus string

const (
	AlertOpen      AlertStatus = "open"
	AlertTriggered AlertStatus = "triggered"
	AlertDismissed AlertStatus = "dismissed"
	AlertExpired   AlertStatus = "expired"
)

// TradingAlert is a price watch on a symbol. ExpiresAt is optional; the
// maintenance sweep expires past-due open alerts.
type TradingAlert struct {
	ID          string          `json:"id"`
	UserID      int             `json:"user_id"`
	ClientID    *string         `json:"client_id"`
	Symbol      string          `json:"symbol"`
	Action      AlertAction     `json:"action"`
	TargetPrice decimal.Decimal `json:"target_price"`
	Status      AlertStatus     `json:"status"`
	ExpiresAt   *string         `json:"expires_at"`
	Notes       string          `json:"notes,omitempty"`
	TriggeredAt *time.Time      `json:"triggered_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
