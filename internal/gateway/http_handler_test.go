package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"transfer-compliance/internal/domain"
	"transfer-compliance/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewComplianceUseCase(NewBuiltinConfigRepository(), NewStaticRateConverter())
	srv := httptest.NewServer(NewHandler(uc).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandler_Healthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Evaluate(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"origin_country": "DE",
		"counterparty_country": "DE",
		"customer_category": "individual",
		"direction": "OUT",
		"amount": 500
	}`
	resp, err := http.Post(srv.URL+"/api/v1/evaluations", "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ComplianceResult
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, domain.ClassificationFullMatch, result.Classification)
	assert.Equal(t, "DE", result.Origin.CountryCode)
	assert.Equal(t, "EUR", result.Currency)
	assert.NotEmpty(t, result.Origin.MandatoryFields)
}

func TestHandler_Evaluate_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing countries", body: `{"customer_category":"individual","direction":"OUT","amount":10}`},
		{name: "unknown category", body: `{"origin_country":"DE","counterparty_country":"CH","customer_category":"trust","direction":"OUT","amount":10}`},
		{name: "unknown direction", body: `{"origin_country":"DE","counterparty_country":"CH","customer_category":"individual","direction":"SIDEWAYS","amount":10}`},
		{name: "negative amount", body: `{"origin_country":"DE","counterparty_country":"CH","customer_category":"individual","direction":"OUT","amount":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/v1/evaluations", "application/json", strings.NewReader(tt.body))
			assert.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_Evaluate_UnknownJurisdiction(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"origin_country": "ZZ",
		"counterparty_country": "DE",
		"customer_category": "individual",
		"direction": "OUT",
		"amount": 100
	}`
	resp, err := http.Post(srv.URL+"/api/v1/evaluations", "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errBody map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Contains(t, errBody["error"], "ZZ")
}
