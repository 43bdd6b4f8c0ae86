package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"danubio/internal/config"
	"danubio/internal/domain"
	"danubio/internal/metrics"
	"danubio/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPServer exposes the catalog and booking API over HTTP/JSON.
type HTTPServer struct {
	cfg       *config.Config
	catalog   *service.CatalogService
	bookings  *service.BookingService
	inquiries *service.InquiryService
	throttle  domain.ThrottleRepository
	logger    *zerolog.Logger
	server    *http.Server
	auth      *HTTPAuth
}

func NewHTTPServer(
	cfg *config.Config,
	catalog *service.CatalogService,
	bookings *service.BookingService,
	inquiries *service.InquiryService,
	throttle domain.ThrottleRepository,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:       cfg,
		catalog:   catalog,
		bookings:  bookings,
		inquiries: inquiries,
		throttle:  throttle,
		logger:    logger,
	}
	srv.auth = NewHTTPAuth(&cfg.API)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/destinations", srv.handleDestinations)
	mux.HandleFunc("/api/v1/destinations/", srv.handleDestinationSub)
	mux.HandleFunc("/api/v1/experiences", srv.handleExperiences)
	mux.HandleFunc("/api/v1/experiences/", srv.handleExperienceSub)
	mux.HandleFunc("/api/v1/bookings", srv.handleBookings)
	mux.HandleFunc("/api/v1/bookings/", srv.handleBookingSub)
	mux.HandleFunc("/api/v1/inquiries", srv.handleInquiries)
	mux.HandleFunc("/api/v1/inquiries/", srv.handleInquirySub)
	mux.HandleFunc("/api/v1/testimonials", srv.handleTestimonials)
	mux.HandleFunc("/api/v1/testimonials/", srv.handleTestimonialSub)
	mux.HandleFunc("/api/v1/search/destinations", srv.handleSearchDestinations)
	mux.HandleFunc("/api/v1/admin/export/bookings", srv.handleExportBookings)
	mux.HandleFunc("/api/v1/healthz", srv.handleHealth)

	handler := requestIDMiddleware(srv.loggingMiddleware(srv.auth.Wrap(mux)))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

// Handler returns the fully wrapped HTTP handler, for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		metrics.IncHTTP(endpointLabel(r.URL.Path))
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Str("request_id", recorder.Header().Get("X-Request-ID")).
			Msg("http request")
	})
}

// endpointLabel folds id-bearing paths into one metrics label per resource.
func endpointLabel(path string) string {
	const prefix = "/api/v1/"
	if !strings.HasPrefix(path, prefix) {
		return "other"
	}
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i > 0 {
		return rest[:i]
	}
	if rest == "" {
		return "other"
	}
	return rest
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
