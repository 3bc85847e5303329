// AngelaMos | 2026
// chain.go

package middleware

import (
	"log/slog"
	"net/http"
)

// Observability returns the outer request stack in mounting order.
// Recoverer sits innermost so a recovered panic still reaches the access
// log and metrics as a 500.
func Observability(
	logger *slog.Logger,
	withMetrics bool,
) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		RequestID,
		Tracing,
		Logger(logger),
	}
	if withMetrics {
		stack = append(stack, Metrics)
	}
	return append(stack, Recoverer)
}
