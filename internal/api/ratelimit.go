package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
)

const rateLimitedMessage = "Too many requests. Please try again later."

// rateLimitRegistrations limits account creation per client IP. Every
// request takes a token, including ones that later fail validation.
func (s *Server) rateLimitRegistrations(ctx huma.Context, next func(huma.Context)) {
	key := clientIP(ctx.RemoteAddr())

	ok, wait := s.registrationLimiter.Allow(key)
	if !ok {
		s.logger.Warn("Rate limit exceeded", "ip", key, "path", ctx.URL().Path, "retry_after", wait)
		if wait > 0 {
			ctx.SetHeader("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		}
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, rateLimitedMessage,
			domainerrors.RateLimited(rateLimitedMessage))
		return
	}

	next(ctx)
}
