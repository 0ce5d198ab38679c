package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rental-agent/domain"
	"rental-agent/logger"
)

const (
	openAIURL   = "https://api.openai.com/v1/chat/completions"
	openAIModel = "gpt-4o-mini"
)

// AdvisorService explains a simulation in a few sentences, through the
// OpenAI chat API when a key is configured.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// NewAdvisorService returns an advisor calling OpenAI with apiKey. An empty
// key always yields the built-in explanation.
func NewAdvisorService(apiKey string) *AdvisorService {
	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  openAIURL,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Explain returns the explanation of result, falling back to the built-in
// text when the API is disabled or fails.
func (s *AdvisorService) Explain(ctx context.Context, result domain.SimulationResult) string {
	if !s.enabled {
		return fallbackExplanation(result)
	}

	explanation, err := s.callLLM(ctx, explanationPrompt(result))
	if err != nil {
		logger.Get().Warnw("advisor unavailable, using built-in explanation", "error", err)
		return fallbackExplanation(result)
	}
	return explanation
}

func explanationPrompt(r domain.SimulationResult) string {
	sc := r.Scenario
	return fmt.Sprintf(`Explain this rental property investment to a private investor.

PROPERTY AND FINANCING:
- Purchase price: %.2f, acquisition cost: %.2f
- Loan: %.2f over %d years at %.2f%%, monthly payment %.2f
- Tax regime: %s

RESULTS:
- Monthly cash flow: %.2f, self-financing ratio: %s
- Tax due in the first year: %.2f, net result after tax: %.2f%s
- Gross yield %.2f%%, net yield %.2f%%, net-of-tax yield %.2f%%
- Internal rate of return over %d years: %.2f%%%s
- Resale after %d years: sale price %.2f, capital gains tax %.2f, net result %.2f

Write 3 to 4 plain sentences covering whether the rent covers the outflows, the
tax position and the return on resale. Do not invent figures.`,
		sc.Property.PurchasePrice, sc.Property.AcquisitionCost(),
		sc.Loan.Principal, sc.Loan.Years, sc.Loan.AnnualRate*100, sc.Loan.MonthlyPayment,
		sc.Tax.Regime,
		r.SelfFinancing.CashFlowMonthly, formatRatio(r.SelfFinancing.SelfFinancingRatio),
		r.Taxation.TaxDue, r.Taxation.NetResultAfterTax, deficitNote(r.Taxation),
		r.Yields.GrossYield*100, r.Yields.NetYield*100, r.Yields.NetOfTaxYield*100,
		sc.HoldingYears, r.IRR.Rate*100, convergenceNote(r.IRR),
		r.Resale.HoldingYears, r.Resale.SalePrice, r.Resale.CapitalGainsTax, r.Resale.NetResult,
	)
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: openAIModel,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a financial advisor specialized in French furnished rental investments (LMNP, LMP) and bare ownership. You explain results clearly, with the figures you are given, and you point out risks without dramatizing them.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return strings.TrimSpace(openAIResp.Choices[0].Message.Content), nil
}

func fallbackExplanation(r domain.SimulationResult) string {
	var b strings.Builder

	sf := r.SelfFinancing
	if sf.CashFlowMonthly >= 0 {
		fmt.Fprintf(&b, "The rent covers all monthly outflows with a surplus of %.2f (self-financing ratio %s). ",
			sf.CashFlowMonthly, formatRatio(sf.SelfFinancingRatio))
	} else {
		fmt.Fprintf(&b, "The rent covers %s of the monthly outflows, leaving %.2f to fund each month. ",
			formatShare(sf.SelfFinancingRatio), -sf.CashFlowMonthly)
	}

	tax := r.Taxation
	switch r.Scenario.Tax.Regime {
	case domain.RegimeNuePropriete:
		b.WriteString("Under bare ownership there is no rental income to tax. ")
	default:
		fmt.Fprintf(&b, "Under %s the first-year tax is %.2f for a net result after tax of %.2f. ",
			r.Scenario.Tax.Regime, tax.TaxDue, tax.NetResultAfterTax)
	}
	if tax.DeficitNotCarried {
		fmt.Fprintf(&b, "The %.2f deficit is assumed to be offset against other income and is not carried forward. ",
			-tax.TaxableIncome)
	}

	if r.IRR.Converged {
		fmt.Fprintf(&b, "Selling after %d years at %.2f leaves a net result of %.2f, an internal rate of return of %.2f%%.",
			r.Resale.HoldingYears, r.Resale.SalePrice, r.Resale.NetResult, r.IRR.Rate*100)
	} else {
		fmt.Fprintf(&b, "Selling after %d years at %.2f leaves a net result of %.2f; the internal rate of return could not be determined.",
			r.Resale.HoldingYears, r.Resale.SalePrice, r.Resale.NetResult)
	}

	return b.String()
}

func formatRatio(ratio domain.Unbounded) string {
	if ratio.IsInf() {
		return "unbounded"
	}
	return fmt.Sprintf("%.2f", float64(ratio))
}

func formatShare(ratio domain.Unbounded) string {
	if ratio.IsInf() {
		return "all"
	}
	return fmt.Sprintf("%.0f%%", float64(ratio)*100)
}

func deficitNote(tax domain.TaxResult) string {
	if !tax.DeficitNotCarried {
		return ""
	}
	return " (deficit offset against other income, not carried forward)"
}

func convergenceNote(irr domain.IRRSolution) string {
	if irr.Converged {
		return ""
	}
	return " (approximation, did not converge)"
}
