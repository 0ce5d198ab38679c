package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-agent/config"
	"rental-agent/repository"
	"rental-agent/service"
)

const simulationBody = `{
	"property": {"purchase_price": 200000, "notary_fee": 15000, "land_value_fraction": 0.1},
	"loan": {"annual_rate": 0.03, "years": 20, "insurance_rate": 0.0036},
	"rental": {"monthly_rent": 1200, "occupancy_rate": 0.95, "management_fee_rate": 0.08},
	"tax": {"regime": "LMNP", "income_tax_rate": 0.30, "social_levy_rate": 0.17},
	"holding_years": 15,
	"appreciation_rate": 0.02
}`

type testServer struct {
	loan       *LoanHandler
	simulation *SimulationHandler
	repo       *repository.SimulationRepositoryMemory
}

func newTestServer() testServer {
	repo := repository.NewSimulationRepositoryMemory()
	cache := repository.NewMockCache(0)
	return testServer{
		loan:       NewLoanHandler(service.NewLoanService(repo, cache)),
		simulation: NewSimulationHandler(service.NewSimulationService(repo, cache, config.DefaultAssumptions(), service.NewAdvisorService(""))),
		repo:       repo,
	}
}

func post(path, body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCalculateLoanHandler_OK(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.loan.CalculateLoan(w, post("/loan/calculate", `{"amount": 10000, "annual_rate": 0.12, "years": 2}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, 470.73, body["monthly_payment"])
	assert.Len(t, body["schedule"], 24)
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.loan.CalculateLoan(w, httptest.NewRequest(http.MethodGet, "/loan/calculate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.loan.CalculateLoan(w, post("/loan/calculate", `{invalid-json}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, w)["code"])
}

func TestCalculateLoanHandler_ValidationError(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.loan.CalculateLoan(w, post("/loan/calculate", `{"amount": 10000, "annual_rate": 0.12, "years": 0}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "INVALID_INPUT", body["code"])
	assert.Contains(t, body["message"], "years")
}

func TestSimulationHandler_Simulate(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.simulation.Simulate(w, post("/simulation", simulationBody))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	yields := body["yields"].(map[string]any)
	assert.Equal(t, "Infinity", yields["payback_years"])
	selfFinancing := body["self_financing"].(map[string]any)
	assert.Equal(t, -921.42, selfFinancing["cash_flow_monthly"])
	assert.NotEmpty(t, body["explanation"])
}

func TestSimulationHandler_Components(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		field   string
		want    any
	}{
		{"self-financing", srv.simulation.SelfFinancing, "self_financing_ratio", 0.553017},
		{"taxation", srv.simulation.Taxation, "net_result_after_tax", -155.44},
		{"resale", srv.simulation.Resale, "capital_gains_tax", 11807.15},
		{"yield", srv.simulation.Yields, "gross_yield", 0.063628},
		{"irr", srv.simulation.IRR, "rate", 0.010862},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, post("/simulation/"+tt.name, simulationBody))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, decodeBody(t, w)[tt.field])
		})
	}
}

func TestSimulationHandler_UnsupportedRegime(t *testing.T) {
	srv := newTestServer()
	body := bytes.Replace([]byte(simulationBody), []byte(`"LMNP"`), []byte(`"SCI"`), 1)

	w := httptest.NewRecorder()
	srv.simulation.Taxation(w, post("/simulation/taxation", string(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_REGIME", decodeBody(t, w)["code"])
}

func TestSimulationHandler_ResaleChart(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.simulation.ResaleChart(w, post("/simulation/resale/chart", simulationBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestSimulationHandler_History(t *testing.T) {
	srv := newTestServer()
	srv.simulation.Simulate(httptest.NewRecorder(), post("/simulation", simulationBody))
	srv.loan.CalculateLoan(httptest.NewRecorder(), post("/loan/calculate", `{"amount": 5000, "annual_rate": 0.05, "years": 1}`))

	w := httptest.NewRecorder()
	srv.simulation.History(w, httptest.NewRequest(http.MethodGet, "/simulation/history?limit=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "loan", records[0]["kind"])
}

func TestSimulationHandler_HistoryInvalidLimit(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.simulation.History(w, httptest.NewRequest(http.MethodGet, "/simulation/history?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	srv.simulation.History(w, post("/simulation/history", ""))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_RateLimitAndRequestID(t *testing.T) {
	srv := newTestServer()
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	router := NewRouter(srv.loan, srv.simulation, limiter)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, post("/simulation/yield", simulationBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, post("/simulation/yield", simulationBody))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMITED", decodeBody(t, w)["code"])
}

func TestRouter_UnknownPath(t *testing.T) {
	srv := newTestServer()
	limiter := NewRateLimiter(10, time.Minute)
	defer limiter.Stop()

	w := httptest.NewRecorder()
	NewRouter(srv.loan, srv.simulation, limiter).ServeHTTP(w, post("/simulation/unknown", "{}"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
