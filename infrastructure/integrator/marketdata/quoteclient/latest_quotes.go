package quoteclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	marketdomain "github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
)

type QuotesConsultationParams struct {
	Symbols []string
	Token   string
}

type QuotesConsultationResponse []marketdomain.Quote

func (c *QuoteClient) GetQuotes(params QuotesConsultationParams, marketDataConfig *config.MarketData) (QuotesConsultationResponse, error) {
	var response QuotesConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(marketDataConfig.URL)
	if err != nil {
		return response, fmt.Errorf("parsing provider base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/quotes/latest")

	query := endpoint.Query()
	query.Set("symbols", strings.Join(params.Symbols, ","))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("creating quote request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+marketDataConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("executing quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("quote request failed with status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("decoding quote response: %w", err)
	}

	return response, nil
}
