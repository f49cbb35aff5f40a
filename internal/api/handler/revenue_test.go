package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestPreviewCommission(t *testing.T) {
	handler := PreviewCommission()

	body := `{"policy_type":"T10","monthly_premium":"1000"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/revenue/commission/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CommissionPreviewResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, domain.PolicyT10, resp.PolicyType)
	assert.True(t, resp.Computed)
	assert.True(t, resp.AnnualPremium.Equal(decimal.RequireFromString("12000")),
		"annual premium was %s", resp.AnnualPremium)
	assert.True(t, resp.Commission.Equal(decimal.RequireFromString("13680")),
		"commission was %s", resp.Commission)
}

func TestPreviewCommissionRejectsMalformedBody(t *testing.T) {
	handler := PreviewCommission()

	req := httptest.NewRequest(http.MethodPost, "/v1/revenue/commission/preview", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
