package quoteclient

import (
	"net/http"
	"time"

	"github.com/Kingcorpe/practice-manager-api/internal/config"
)

type Client interface {
	GetQuotes(params QuotesConsultationParams, marketDataConfig *config.MarketData) (QuotesConsultationResponse, error)
}

type QuoteClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &QuoteClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
