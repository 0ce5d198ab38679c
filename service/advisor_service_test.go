package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-agent/domain"
)

func sampleResult() domain.SimulationResult {
	return domain.SimulationResult{
		Scenario: domain.Scenario{
			Property:     domain.PropertyAsset{PurchasePrice: 200000, NotaryFee: 15000},
			Loan:         domain.Loan{Principal: 215000, AnnualRate: 0.03, Years: 20, MonthlyPayment: 1192.38},
			Tax:          domain.TaxProfile{Regime: domain.RegimeLMP},
			HoldingYears: 15,
		},
		SelfFinancing: domain.SelfFinancingResult{CashFlowMonthly: -921.42, SelfFinancingRatio: 0.553017},
		Taxation:      domain.TaxResult{TaxableIncome: -155.44, NetResultAfterTax: -155.44, DeficitNotCarried: true},
		Resale:        domain.ResaleProjection{HoldingYears: 15, SalePrice: 269173.67, NetResult: -24000},
		IRR:           domain.IRRSolution{Rate: 0.010862, Converged: true},
		Yields:        domain.YieldResult{PaybackYears: domain.Unbounded(math.Inf(1))},
	}
}

func TestAdvisor_FallbackWithoutKey(t *testing.T) {
	advisor := NewAdvisorService("")

	text := advisor.Explain(context.Background(), sampleResult())

	assert.Contains(t, text, "55%")
	assert.Contains(t, text, "921.42")
	assert.Contains(t, text, "not carried forward")
	assert.Contains(t, text, "1.09%")
}

func TestAdvisor_FallbackBareOwnership(t *testing.T) {
	result := sampleResult()
	result.Scenario.Tax.Regime = domain.RegimeNuePropriete
	result.Taxation = domain.TaxResult{}
	result.SelfFinancing = domain.SelfFinancingResult{CashFlowMonthly: 50, SelfFinancingRatio: domain.Unbounded(math.Inf(1))}
	result.IRR.Converged = false

	text := fallbackExplanation(result)

	assert.Contains(t, text, "surplus of 50.00")
	assert.Contains(t, text, "unbounded")
	assert.Contains(t, text, "no rental income to tax")
	assert.Contains(t, text, "could not be determined")
	assert.NotContains(t, text, "carried forward")
}

func TestAdvisor_CallsChatAPI(t *testing.T) {
	var got OpenAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Rent covers half the outflows.  "}}]}`))
	}))
	defer server.Close()

	advisor := NewAdvisorService("test-key")
	advisor.apiURL = server.URL

	text := advisor.Explain(context.Background(), sampleResult())

	assert.Equal(t, "Rent covers half the outflows.", text)
	assert.Equal(t, openAIModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Contains(t, got.Messages[1].Content, "Tax regime: LMP")
	assert.Contains(t, got.Messages[1].Content, "not carried forward")
}

func TestAdvisor_FallsBackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	advisor := NewAdvisorService("test-key")
	advisor.apiURL = server.URL

	text := advisor.Explain(context.Background(), sampleResult())

	assert.Equal(t, fallbackExplanation(sampleResult()), text)
}

func TestAdvisor_FallsBackOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	advisor := NewAdvisorService("test-key")
	advisor.apiURL = server.URL

	assert.Equal(t, fallbackExplanation(sampleResult()), advisor.Explain(context.Background(), sampleResult()))
}
