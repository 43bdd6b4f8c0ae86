package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"danubio/internal/export"
	"danubio/internal/metrics"
	"danubio/internal/models"
	"danubio/internal/service"
)

// Destinations

func (s *HTTPServer) handleDestinations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	destinations, err := s.catalog.Destinations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch destinations")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

func (s *HTTPServer) handleDestinationSub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/destinations/")

	if rest == "featured" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		destinations, err := s.catalog.FeaturedDestinations(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch featured destinations")
			return
		}
		writeJSON(w, http.StatusOK, destinations)
		return
	}

	id, ok := parseID(w, rest)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		destination, err := s.catalog.Destination(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch destination")
			return
		}
		if destination == nil {
			writeError(w, http.StatusNotFound, "destination not found")
			return
		}
		writeJSON(w, http.StatusOK, destination)
	case http.MethodPatch:
		s.updateDestination(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type destinationUpdateRequest struct {
	Name        *string  `json:"name"`
	Country     *string  `json:"country"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
	Featured    *bool    `json:"featured"`
	Available   *bool    `json:"available"`
}

func (req *destinationUpdateRequest) validate() error {
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if req.Rating != nil && *req.Rating < 0 {
		return fmt.Errorf("rating must be non-negative")
	}
	return nil
}

func (s *HTTPServer) updateDestination(w http.ResponseWriter, r *http.Request, id int64) {
	var req destinationUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.catalog.UpdateDestination(r.Context(), id, models.DestinationUpdate{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		Available:   req.Available,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update destination")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Experiences

func (s *HTTPServer) handleExperiences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	experiences, err := s.catalog.Experiences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch experiences")
		return
	}
	writeJSON(w, http.StatusOK, experiences)
}

func (s *HTTPServer) handleExperienceSub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := parseID(w, strings.TrimPrefix(r.URL.Path, "/api/v1/experiences/"))
	if !ok {
		return
	}

	experience, err := s.catalog.Experience(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch experience")
		return
	}
	if experience == nil {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, experience)
}

// Bookings

type bookingRequest struct {
	ItemID        int64  `json:"item_id"`
	ItemType      string `json:"item_type"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	CheckinDate   string `json:"checkin_date"`
	CheckoutDate  string `json:"checkout_date"`
	Guests        int    `json:"guests"`

	// Accepted for wire compatibility but discarded; the server reprices.
	TotalPrice int64 `json:"total_price"`
}

// validate rejects malformed bookings before they reach the store and clamps
// guests into the bookable range.
func (req *bookingRequest) validate() error {
	if req.ItemID <= 0 {
		return fmt.Errorf("item_id is required")
	}
	if !models.ValidItemType(req.ItemType) {
		return fmt.Errorf("item_type must be %q or %q", models.ItemTypeDestination, models.ItemTypeExperience)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer_name is required")
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("customer_email is invalid")
	}
	if err := validDate(req.CheckinDate); err != nil {
		return fmt.Errorf("checkin_date: %w", err)
	}
	if err := validDate(req.CheckoutDate); err != nil {
		return fmt.Errorf("checkout_date: %w", err)
	}

	if req.Guests < models.MinGuests {
		req.Guests = models.MinGuests
	}
	if req.Guests > models.MaxGuests {
		req.Guests = models.MaxGuests
	}
	return nil
}

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createBooking(w, r)
	case http.MethodGet:
		bookings, err := s.bookings.ListBookings(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch bookings")
			return
		}
		writeJSON(w, http.StatusOK, bookings)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request) {
	if !s.throttleAllow(w, r) {
		return
	}

	var req bookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := s.bookings.CreateBooking(r.Context(), models.NewBooking{
		ItemID:        req.ItemID,
		ItemType:      req.ItemType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CheckinDate:   req.CheckinDate,
		CheckoutDate:  req.CheckoutDate,
		Guests:        req.Guests,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownItem) {
			writeError(w, http.StatusBadRequest, "unknown booking item")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create booking")
		return
	}

	metrics.IncBookingCreated()
	writeJSON(w, http.StatusCreated, booking)
}

func (s *HTTPServer) handleBookingSub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/bookings/")

	if idPart, ok := strings.CutSuffix(rest, "/status"); ok {
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		id, ok := parseID(w, idPart)
		if !ok {
			return
		}
		s.updateBookingStatus(w, r, id)
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := parseID(w, rest)
	if !ok {
		return
	}

	booking, err := s.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch booking")
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *HTTPServer) updateBookingStatus(w http.ResponseWriter, r *http.Request, id int64) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := s.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update booking")
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Inquiries

type inquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Interests string `json:"interests"`
	Message   string `json:"message"`
}

func (req *inquiryRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func (s *HTTPServer) handleInquiries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createInquiry(w, r)
	case http.MethodGet:
		inquiries, err := s.inquiries.ListInquiries(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch inquiries")
			return
		}
		writeJSON(w, http.StatusOK, inquiries)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createInquiry(w http.ResponseWriter, r *http.Request) {
	if !s.throttleAllow(w, r) {
		return
	}

	var req inquiryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inquiry, err := s.inquiries.CreateInquiry(r.Context(), models.NewInquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interests: req.Interests,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create inquiry")
		return
	}

	metrics.IncInquiryCreated()
	writeJSON(w, http.StatusCreated, inquiry)
}

func (s *HTTPServer) handleInquirySub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/inquiries/")

	idPart, isStatus := strings.CutSuffix(rest, "/status")
	if !isStatus {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		id, ok := parseID(w, rest)
		if !ok {
			return
		}
		inquiry, err := s.inquiries.GetInquiry(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch inquiry")
			return
		}
		if inquiry == nil {
			writeError(w, http.StatusNotFound, "inquiry not found")
			return
		}
		writeJSON(w, http.StatusOK, inquiry)
		return
	}

	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, idOK := parseID(w, idPart)
	if !idOK {
		return
	}

	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inquiry, err := s.inquiries.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update inquiry")
		return
	}
	if inquiry == nil {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, inquiry)
}

// Testimonials

func (s *HTTPServer) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	testimonials, err := s.catalog.Testimonials(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch testimonials")
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (s *HTTPServer) handleTestimonialSub(w http.ResponseWriter, r *http.Request) {
	if strings.TrimPrefix(r.URL.Path, "/api/v1/testimonials/") != "featured" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	testimonials, err := s.catalog.FeaturedTestimonials(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch featured testimonials")
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

// Search

func (s *HTTPServer) handleSearchDestinations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query().Get("query")

	// checkin/checkout are accepted and validated but do not filter against
	// existing bookings; availability stays a per-destination flag.
	for _, param := range []string{"checkin", "checkout"} {
		if raw := strings.TrimSpace(r.URL.Query().Get(param)); raw != "" {
			if _, err := time.Parse(models.DateLayout, raw); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s date; expected YYYY-MM-DD", param))
				return
			}
		}
	}

	destinations, err := s.catalog.SearchDestinations(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search destinations")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

// Export

func (s *HTTPServer) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.bookings.ListBookings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch bookings")
		return
	}
	inquiries, err := s.inquiries.ListInquiries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch inquiries")
		return
	}

	f, err := export.Workbook(bookings, inquiries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build export")
		return
	}
	defer f.Close()

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format(models.DateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("write export response")
	}
}

// Helpers

// decodeBody decodes a JSON request body, rejecting unknown fields. Writes a
// 400 and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func validDate(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, raw); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// throttleAllow applies the public-submission throttle keyed by client host.
// Writes a 429 and returns false when the limit is exhausted.
func (s *HTTPServer) throttleAllow(w http.ResponseWriter, r *http.Request) bool {
	if s.throttle == nil || s.cfg.Throttle.Limit <= 0 {
		return true
	}

	window := time.Duration(s.cfg.Throttle.Window) * time.Second
	allowed, err := s.throttle.Allow(r.Context(), clientKey(r), s.cfg.Throttle.Limit, window)
	if err != nil {
		// Throttle failures never block customers.
		s.logger.Warn().Err(err).Msg("throttle check failed")
		return true
	}
	if !allowed {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return false
	}
	return true
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return "unknown"
}
