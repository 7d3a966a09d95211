package rest

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// LoggingMiddleware logs every HTTP request with method, path, status, duration, and remote address.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// OptionalAuth attaches claims when a bearer token is present. Requests
// without an Authorization header pass through anonymously; a header that
// does not carry a valid token is rejected.
func OptionalAuth(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			if jwtService == nil {
				writeError(w, http.StatusUnauthorized, "authentication is not configured")
				return
			}

			token, ok := auth.BearerToken(header)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAuth rejects requests that OptionalAuth left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.ClaimsFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated callers that lack role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			if !claims.HasRole(role) {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

const (
	limiterIdleTTL   = 5 * time.Minute
	limiterSweepSize = 4096
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client. Authenticated callers
// are keyed by user ID, anonymous ones by remote IP.
type RateLimiter struct {
	clients map[string]*clientLimiter
	now     func() time.Time
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
}

// NewRateLimiter creates a limiter allowing rps requests per second per client
// with the given burst. A burst below rps is raised to rps.
func NewRateLimiter(rps, burst int) *RateLimiter {
	if burst < rps {
		burst = rps
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.clients) >= limiterSweepSize {
		for k, c := range rl.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(rl.clients, k)
			}
		}
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// RateLimitMiddleware enforces the per-client limit and answers 429 once a
// client exhausts its bucket.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if id := auth.RequesterID(r.Context()); id != uuid.Nil {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
