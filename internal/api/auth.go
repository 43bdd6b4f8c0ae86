package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"danubio/internal/config"

	"golang.org/x/time/rate"
)

// Permission strings required by the admin endpoints. Public catalog routes
// need no key.
const (
	PermReadBookings   = "read:bookings"
	PermWriteBookings  = "write:bookings"
	PermReadInquiries  = "read:inquiries"
	PermWriteInquiries = "write:inquiries"
	PermWriteCatalog   = "write:catalog"
	PermExportBookings = "export:bookings"
)

var errPermissionDenied = fmt.Errorf("permission denied")

// HTTPAuth provides API-key auth and per-key rate limiting for the admin
// endpoints.
type HTTPAuth struct {
	cfg      *config.APIConfig
	clients  map[string]config.APIClientKey
	limiters sync.Map // map[string]*rate.Limiter
}

func NewHTTPAuth(cfg *config.APIConfig) *HTTPAuth {
	m := make(map[string]config.APIClientKey, len(cfg.Auth.APIKeys))
	for _, k := range cfg.Auth.APIKeys {
		m[k.Key] = k
	}
	return &HTTPAuth{cfg: cfg, clients: m}
}

// Wrap enforces auth on requests whose path/method requires a permission.
// Everything else passes through untouched.
func (a *HTTPAuth) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		required := requiredPermissionHTTP(r)
		if required == "" || !a.cfg.Auth.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		client, err := a.checkAuth(r, required)
		if err != nil {
			statusCode := http.StatusUnauthorized
			if err == errPermissionDenied {
				statusCode = http.StatusForbidden
			}
			writeError(w, statusCode, err.Error())
			return
		}

		if err := a.checkRateLimit(client.Key); err != nil {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *HTTPAuth) checkAuth(r *http.Request, required string) (config.APIClientKey, error) {
	header := strings.TrimSpace(strings.ToLower(a.cfg.Auth.HeaderAPIKey))
	if header == "" {
		header = "x-api-key"
	}

	apiKey := strings.TrimSpace(r.Header.Get(header))
	if apiKey == "" {
		return config.APIClientKey{}, fmt.Errorf("missing api key header")
	}

	client, ok := a.clients[apiKey]
	if !ok || subtle.ConstantTimeCompare([]byte(client.Key), []byte(apiKey)) != 1 {
		return config.APIClientKey{}, fmt.Errorf("invalid api key")
	}

	// An empty permission list grants everything.
	if len(client.Permissions) == 0 {
		return client, nil
	}
	for _, p := range client.Permissions {
		if strings.TrimSpace(p) == required {
			return client, nil
		}
	}
	return config.APIClientKey{}, errPermissionDenied
}

// requiredPermissionHTTP maps a request to the permission it needs, or ""
// when the route is public.
func requiredPermissionHTTP(r *http.Request) string {
	path := r.URL.Path

	switch {
	case path == "/api/v1/bookings" && r.Method == http.MethodGet:
		return PermReadBookings
	case strings.HasPrefix(path, "/api/v1/bookings/") && strings.HasSuffix(path, "/status"):
		return PermWriteBookings
	case path == "/api/v1/inquiries" && r.Method == http.MethodGet:
		return PermReadInquiries
	case strings.HasPrefix(path, "/api/v1/inquiries/") && strings.HasSuffix(path, "/status"):
		return PermWriteInquiries
	case strings.HasPrefix(path, "/api/v1/inquiries/") && r.Method == http.MethodGet:
		return PermReadInquiries
	case strings.HasPrefix(path, "/api/v1/destinations/") && r.Method == http.MethodPatch:
		return PermWriteCatalog
	case strings.HasPrefix(path, "/api/v1/admin/"):
		return PermExportBookings
	}
	return ""
}

func (a *HTTPAuth) checkRateLimit(key string) error {
	if a.cfg.RateLimit.RPS <= 0 {
		return nil
	}

	lim := a.getLimiter(key)
	if !lim.Allow() {
		return fmt.Errorf("rate limit exceeded")
	}
	return nil
}

func (a *HTTPAuth) getLimiter(key string) *rate.Limiter {
	if v, ok := a.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	burst := a.cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(a.cfg.RateLimit.RPS), burst)
	actual, loaded := a.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}
