package http

import "net/http"

// NewRouter registers every endpoint behind the rate limiter, with request
// logging outermost.
func NewRouter(
	loanHandler *LoanHandler,
	simulationHandler *SimulationHandler,
	limiter *RateLimiter,
) http.Handler {
	routes := map[string]http.HandlerFunc{
		"/loan/calculate":            loanHandler.CalculateLoan,
		"/simulation":                simulationHandler.Simulate,
		"/simulation/self-financing": simulationHandler.SelfFinancing,
		"/simulation/taxation":       simulationHandler.Taxation,
		"/simulation/resale":         simulationHandler.Resale,
		"/simulation/resale/chart":   simulationHandler.ResaleChart,
		"/simulation/yield":          simulationHandler.Yields,
		"/simulation/irr":            simulationHandler.IRR,
		"/simulation/history":        simulationHandler.History,
	}

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.Handle(pattern, RateLimitMiddleware(limiter, handler))
	}

	return RequestLogging(mux)
}
