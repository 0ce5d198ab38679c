package service

import (
	"context"
	"math"

	"rental-agent/apperrors"
	"rental-agent/config"
	"rental-agent/domain"
	"rental-agent/engine"
	"rental-agent/repository"
)

// SimulationService turns simulation requests into engine scenarios and
// rounds, caches and records the results.
type SimulationService struct {
	repo        repository.SimulationRepository
	cache       repository.CacheRepository
	assumptions config.SimulationAssumptions
	advisor     *AdvisorService
}

// NewSimulationService wires the service. A nil advisor leaves full
// simulations without explanation.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	assumptions config.Assumptions,
	advisor *AdvisorService,
) *SimulationService {
	return &SimulationService{
		repo:        repo,
		cache:       cache,
		assumptions: assumptions.Simulation,
		advisor:     advisor,
	}
}

// Scenario validates input and resolves it into the scenario the engine
// evaluates: defaults from the assumptions, the borrowed amount and the
// annuity payment. An interest-free loan has no annuity, so its payment is 0.
func (s *SimulationService) Scenario(input domain.SimulationInput) (domain.Scenario, error) {
	if err := validateInput(input); err != nil {
		return domain.Scenario{}, err
	}
	if input.Property.PurchasePrice > MaxPropertyAmount {
		return domain.Scenario{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"property.purchase_price exceeds the maximum allowed")
	}

	holdingYears := s.assumptions.HoldingYears
	if input.HoldingYears != nil {
		holdingYears = *input.HoldingYears
	}
	appreciation := s.assumptions.AppreciationRate
	if input.AppreciationRate != nil {
		appreciation = *input.AppreciationRate
	}
	monthlyIncome := input.MonthlyIncome
	if monthlyIncome == 0 {
		monthlyIncome = s.assumptions.MonthlyIncome
	}

	principal := math.Max(0, input.Property.AcquisitionCost()-input.Loan.DownPayment)
	loan := engine.WithMonthlyPayment(domain.Loan{
		Principal:      principal,
		AnnualRate:     input.Loan.AnnualRate,
		Years:          input.Loan.Years,
		OriginationFee: input.Loan.OriginationFee,
		InsuranceRate:  input.Loan.InsuranceRate,
	})

	return domain.Scenario{
		Property:         input.Property,
		Loan:             loan,
		Rental:           input.Rental,
		Tax:              input.Tax,
		HoldingYears:     holdingYears,
		AppreciationRate: appreciation,
		SaleCosts:        input.SaleCosts,
		MonthlyIncome:    monthlyIncome,
	}, nil
}

// run resolves the scenario, serves a cached result when one exists and
// otherwise computes, caches and records a fresh one.
func run[T any](
	ctx context.Context,
	s *SimulationService,
	kind string,
	input domain.SimulationInput,
	compute func(domain.Scenario) T,
) (T, error) {
	var zero T
	scenario, err := s.Scenario(input)
	if err != nil {
		return zero, err
	}

	key, err := cacheKey(kind, scenario)
	if err != nil {
		return zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var cached T
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	result := compute(scenario)
	cacheStore(ctx, s.cache, key, result)
	saveRecord(ctx, s.repo, kind, key, scenario, result)
	return result, nil
}

func (s *SimulationService) SelfFinancing(ctx context.Context, input domain.SimulationInput) (domain.SelfFinancingResult, error) {
	return run(ctx, s, KindSelfFinancing, input, func(sc domain.Scenario) domain.SelfFinancingResult {
		return roundSelfFinancing(engine.SelfFinancing(sc.Property, sc.Loan, sc.Rental))
	})
}

func (s *SimulationService) Taxation(ctx context.Context, input domain.SimulationInput) (domain.TaxResult, error) {
	return run(ctx, s, KindTaxation, input, func(sc domain.Scenario) domain.TaxResult {
		return roundTaxation(engine.Taxation(sc.Property, sc.Loan, sc.Rental, sc.Tax, sc.HoldingYears))
	})
}

func (s *SimulationService) Resale(ctx context.Context, input domain.SimulationInput) (domain.ResaleProjection, error) {
	return run(ctx, s, KindResale, input, func(sc domain.Scenario) domain.ResaleProjection {
		return roundProjection(engine.ProjectResale(sc.Property, sc.Loan, sc.HoldingYears, sc.AppreciationRate, sc.SaleCosts))
	})
}

func (s *SimulationService) Yields(ctx context.Context, input domain.SimulationInput) (domain.YieldResult, error) {
	return run(ctx, s, KindYield, input, func(sc domain.Scenario) domain.YieldResult {
		return roundYields(engine.Yields(sc.Property, sc.Loan, sc.Rental, sc.Tax, sc.AppreciationRate, sc.HoldingYears))
	})
}

func (s *SimulationService) IRR(ctx context.Context, input domain.SimulationInput) (domain.IRRSolution, error) {
	return run(ctx, s, KindIRR, input, func(sc domain.Scenario) domain.IRRSolution {
		return roundIRR(engine.ComputeIRR(sc.Property, sc.Loan, sc.Rental, sc.Tax, sc.AppreciationRate, sc.HoldingYears))
	})
}

// Simulate evaluates every calculation of the scenario and attaches the
// advisor's explanation. The explanation is produced per request and never
// cached with the figures.
func (s *SimulationService) Simulate(ctx context.Context, input domain.SimulationInput) (domain.SimulationResult, error) {
	result, err := run(ctx, s, KindSimulation, input, func(sc domain.Scenario) domain.SimulationResult {
		raw := engine.Simulate(sc)
		return domain.SimulationResult{
			Scenario:      sc,
			Schedule:      roundSchedule(raw.Schedule),
			LoanSummary:   roundLoanSummary(raw.LoanSummary),
			SelfFinancing: roundSelfFinancing(raw.SelfFinancing),
			Taxation:      roundTaxation(raw.Taxation),
			Resale:        roundProjection(raw.Resale),
			Yields:        roundYields(raw.Yields),
			IRR:           roundIRR(raw.IRR),
		}
	})
	if err != nil {
		return result, err
	}
	if s.advisor != nil {
		result.Explanation = s.advisor.Explain(ctx, result)
	}
	return result, nil
}

// History returns the most recent calculations. The limit defaults to
// DefaultHistoryLimit and is capped at MaxHistoryLimit.
func (s *SimulationService) History(ctx context.Context, limit int) ([]domain.SimulationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// ResaleChart renders the yearly property value against the remaining loan
// balance as a PNG.
func (s *SimulationService) ResaleChart(ctx context.Context, input domain.SimulationInput) ([]byte, error) {
	scenario, err := s.Scenario(input)
	if err != nil {
		return nil, err
	}
	projection := engine.ProjectResale(scenario.Property, scenario.Loan,
		scenario.HoldingYears, scenario.AppreciationRate, scenario.SaleCosts)

	png, err := RenderResaleChart(projection.Timeline)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrChartUnavailable, err)
	}
	return png, nil
}
