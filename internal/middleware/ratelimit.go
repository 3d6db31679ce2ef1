package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/utils"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client IP. rate uses the limiter format,
// e.g. "20-M" for twenty a minute. Empty disables.
func RateLimit(rate string) (gin.HandlerFunc, error) {
	if rate == "" {
		return func(ctx *gin.Context) { ctx.Next() }, nil
	}

	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(ctx *gin.Context) {
		utils.FailMsg(ctx, http.StatusTooManyRequests, "Too many requests")
	})), nil
}
