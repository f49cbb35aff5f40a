package marketdata

import (
	"github.com/shopspring/decimal"

	marketdomain "github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/domain"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/quoteclient"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
)

type MarketDataIntegrator interface {
	LatestPrices(params marketdomain.GetQuotesParams) (map[string]decimal.Decimal, error)
	CheckConnection() (bool, error)
}

type MarketDataService struct {
	cfg    *config.Config
	Client quoteclient.Client
}

func New(cfg *config.Config, client quoteclient.Client) MarketDataIntegrator {
	return &MarketDataService{
		cfg:    cfg,
		Client: client,
	}
}

// LatestPrices resolves the given symbols to their most recent quote.
// Symbols the provider does not know are absent from the result.
func (s *MarketDataService) LatestPrices(params marketdomain.GetQuotesParams) (map[string]decimal.Decimal, error) {
	paramsClient := quoteclient.QuotesConsultationParams{
		Symbols: params.Symbols,
		Token:   s.cfg.MarketData.AccessToken,
	}

	resp, err := s.Client.GetQuotes(paramsClient, &s.cfg.MarketData)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(resp))
	for _, quote := range resp {
		prices[quote.Symbol] = quote.Price
	}

	return prices, nil
}

func (s *MarketDataService) CheckConnection() (bool, error) {
	params := quoteclient.QuotesConsultationParams{
		Symbols: []string{"SPY"},
		Token:   s.cfg.MarketData.AccessToken,
	}

	_, err := s.Client.GetQuotes(params, &s.cfg.MarketData)
	if err != nil {
		return false, err
	}

	return true, nil
}
