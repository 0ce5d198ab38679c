package service

import (
	"context"
	"encoding/json"
	"fmt"

	"rental-agent/apperrors"
	"rental-agent/domain"
	"rental-agent/engine"
	"rental-agent/logger"
	"rental-agent/repository"
)

type LoanService struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.SimulationRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{repo: repo, cache: cache}
}

// CalculateLoan computes the monthly payment, the amortization schedule and
// the credit summary of a loan.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := validateInput(input); err != nil {
		return domain.LoanResult{}, err
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("amount exceeds the maximum of %.2f", MaxLoanAmount))
	}

	key, err := cacheKey(KindLoan, input)
	if err != nil {
		return domain.LoanResult{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var cached domain.LoanResult
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	loan := resolvePayment(domain.Loan{
		Principal:     input.Amount,
		AnnualRate:    input.AnnualRate,
		Years:         input.Years,
		InsuranceRate: input.InsuranceRate,
	})

	total := loan.MonthlyPayment * float64(loan.Months())
	result := domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(loan.MonthlyPayment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - loan.Principal),
		Summary:        roundLoanSummary(engine.SummarizeLoan(loan, input.MonthlyIncome)),
		Schedule:       roundSchedule(engine.AmortizationSchedule(loan.Principal, loan.AnnualRate, loan.Years, loan.MonthlyPayment)),
	}

	cacheStore(ctx, s.cache, key, result)
	saveRecord(ctx, s.repo, KindLoan, key, input, result)

	return result, nil
}

// resolvePayment derives the monthly payment of loan. An interest-free loan
// is repaid in equal installments of principal.
func resolvePayment(loan domain.Loan) domain.Loan {
	if loan.AnnualRate == 0 && loan.Months() > 0 && loan.Principal > 0 {
		loan.MonthlyPayment = loan.Principal / float64(loan.Months())
		return loan
	}
	return engine.WithMonthlyPayment(loan)
}

func cacheLookup(ctx context.Context, cache repository.CacheRepository, key string, target any) bool {
	raw, ok := cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		logger.Get().Warnw("discarding unreadable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func cacheStore(ctx context.Context, cache repository.CacheRepository, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warnw("failed to encode result for cache", "key", key, "error", err)
		return
	}
	if err := cache.Set(ctx, key, string(data)); err != nil {
		logger.Get().Warnw("failed to cache result", "key", key, "error", err)
	}
}
