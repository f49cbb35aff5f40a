package scheduler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	marketdomain "github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/domain"
	marketmocks "github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/mocks"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/alerting"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openAlert(id string, userID int, symbol string, action domain.AlertAction, target string) *domain.TradingAlert {
	return &domain.TradingAlert{
		ID:          id,
		UserID:      userID,
		Symbol:      symbol,
		Action:      action,
		TargetPrice: price(target),
		Status:      domain.AlertOpen,
	}
}

func TestAlertPriceSyncService_syncOpenAlerts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator)
	}{
		{
			name: "buy alert fires when the price drops to the target",
			setup: func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator) {
				alert := openAlert("al1", 7, "VTI", domain.ActionBuy, "250")

				alertRepo.EXPECT().ListOpen().Return([]*domain.TradingAlert{alert}, nil)
				market.EXPECT().LatestPrices(gomock.Any()).Return(map[string]decimal.Decimal{
					"VTI": price("248.10"),
				}, nil)

				// Trigger goes through the alert service: re-read then update
				alertRepo.EXPECT().GetByID(7, "al1").Return(alert, nil)
				alertRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *domain.TradingAlert) error {
					assert.Equal(t, domain.AlertTriggered, a.Status)
					assert.NotNil(t, a.TriggeredAt)
					return nil
				})
			},
		},
		{
			name: "buy alert holds while the price stays above the target",
			setup: func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator) {
				alert := openAlert("al2", 7, "VTI", domain.ActionBuy, "250")

				alertRepo.EXPECT().ListOpen().Return([]*domain.TradingAlert{alert}, nil)
				market.EXPECT().LatestPrices(gomock.Any()).Return(map[string]decimal.Decimal{
					"VTI": price("251.00"),
				}, nil)
			},
		},
		{
			name: "sell alert fires when the price rises to the target",
			setup: func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator) {
				alert := openAlert("al3", 9, "NVDA", domain.ActionSell, "120")

				alertRepo.EXPECT().ListOpen().Return([]*domain.TradingAlert{alert}, nil)
				market.EXPECT().LatestPrices(gomock.Any()).Return(map[string]decimal.Decimal{
					"NVDA": price("120"),
				}, nil)

				alertRepo.EXPECT().GetByID(9, "al3").Return(alert, nil)
				alertRepo.EXPECT().Update(gomock.Any()).Return(nil)
			},
		},
		{
			name: "symbol unknown to the provider is skipped",
			setup: func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator) {
				alert := openAlert("al4", 9, "DELISTED", domain.ActionSell, "10")

				alertRepo.EXPECT().ListOpen().Return([]*domain.TradingAlert{alert}, nil)
				market.EXPECT().LatestPrices(gomock.Any()).Return(map[string]decimal.Decimal{}, nil)
			},
		},
		{
			name: "no open alerts skips the provider entirely",
			setup: func(alertRepo *mocks.MockAlertRepository, market *marketmocks.MockMarketDataIntegrator) {
				alertRepo.EXPECT().ListOpen().Return([]*domain.TradingAlert{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAlertRepo := mocks.NewMockAlertRepository(ctrl)
			mockMarket := marketmocks.NewMockMarketDataIntegrator(ctrl)

			tt.setup(mockAlertRepo, mockMarket)

			service := &AlertPriceSyncService{
				alertRepo:         mockAlertRepo,
				alertService:      alerting.NewService(mockAlertRepo),
				marketDataService: mockMarket,
			}

			service.syncOpenAlerts()
		})
	}
}

func TestAlertPriceSyncService_fetchPricesDeduplicatesSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMarket := marketmocks.NewMockMarketDataIntegrator(ctrl)

	alerts := []*domain.TradingAlert{
		openAlert("a1", 1, "VTI", domain.ActionBuy, "250"),
		openAlert("a2", 2, "VTI", domain.ActionSell, "300"),
		openAlert("a3", 1, "XEQT", domain.ActionBuy, "30"),
	}

	mockMarket.EXPECT().
		LatestPrices(gomock.Any()).
		DoAndReturn(func(params marketdomain.GetQuotesParams) (map[string]decimal.Decimal, error) {
			assert.ElementsMatch(t, []string{"VTI", "XEQT"}, params.Symbols)
			return map[string]decimal.Decimal{
				"VTI":  price("260"),
				"XEQT": price("31"),
			}, nil
		})

	service := &AlertPriceSyncService{marketDataService: mockMarket}

	prices := service.fetchPrices(alerts)

	assert.Len(t, prices, 2)
	assert.True(t, prices["VTI"].Equal(price("260")))
}

func TestTargetReached(t *testing.T) {
	buy := openAlert("b", 1, "VTI", domain.ActionBuy, "100")
	sell := openAlert("s", 1, "VTI", domain.ActionSell, "100")

	assert.True(t, targetReached(buy, price("99.99")))
	assert.True(t, targetReached(buy, price("100")))
	assert.False(t, targetReached(buy, price("100.01")))

	assert.False(t, targetReached(sell, price("99.99")))
	assert.True(t, targetReached(sell, price("100")))
	assert.True(t, targetReached(sell, price("100.01")))

	unknown := openAlert("u", 1, "VTI", domain.AlertAction("hold"), "100")
	assert.False(t, targetReached(unknown, price("100")))
}

func TestAlertPriceSyncService_statusReflectsCompletedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)
	mockAlertRepo.EXPECT().ListOpen().Return(nil, nil)

	service := &AlertPriceSyncService{
		alertRepo:    mockAlertRepo,
		alertService: alerting.NewService(mockAlertRepo),
	}

	service.syncOpenAlerts()

	status := service.GetStatus()

	assert.False(t, status["sync_running"].(bool))
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
