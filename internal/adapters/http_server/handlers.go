package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayinubud/internal/app"
	"stayinubud/internal/availability"
	"stayinubud/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
	C *app.ContactService

	// Now is the clock behind "today"; tests pin it.
	Now func() time.Time
}

func (h *Handlers) today() domain.Date {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return domain.DateOf(now())
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/villas", h.listVillas)
	s.mux.Get("/v1/villas/{slug}", h.getVilla)
	s.mux.Get("/v1/villas/{slug}/bookings", h.listBookings)
	s.mux.Get("/v1/villas/{slug}/calendar", h.getCalendar)
	s.mux.Post("/v1/villas/{slug}/booking-requests", h.createBookingRequest)
	s.mux.Get("/v1/posts", h.listPosts)
	s.mux.Get("/v1/posts/{slug}", h.getPost)
	s.mux.Post("/v1/inquiries", h.createInquiry)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable serves v with a weak ETag and honors If-None-Match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- catalog ----

func (h *Handlers) listVillas(w http.ResponseWriter, r *http.Request) {
	vs, err := h.Q.ListVillas(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Store Unavailable", "villa catalog unavailable")
		return
	}
	writeCacheable(w, r, struct {
		Villas []domain.Villa `json:"villas"`
	}{Villas: vs})
}

func (h *Handlers) getVilla(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.GetVillaBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "villa not found")
		return
	}
	writeCacheable(w, r, v)
}

// ---- availability ----

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.GetVillaBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "villa not found")
		return
	}
	bs := h.Q.ActiveBookings(r.Context(), v.ID, h.today())
	if bs == nil {
		bs = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, struct {
		VillaSlug string           `json:"villa_slug"`
		Bookings  []domain.Booking `json:"bookings"`
	}{VillaSlug: v.Slug, Bookings: bs})
}

type calendarCell struct {
	Day     int    `json:"day,omitempty"`
	Padding bool   `json:"padding,omitempty"`
	Status  string `json:"status,omitempty"`
}

type calendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Label string         `json:"label"`
	Cells []calendarCell `json:"cells"`
}

// getCalendar renders one or two month grids (months=1|2, default 2 for
// the side-by-side display). A requested month before the current real
// month clamps forward to it; the calendar never navigates into the past.
func (h *Handlers) getCalendar(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.GetVillaBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "villa not found")
		return
	}

	today := h.today()
	year, month := today.Year(), today.Month()
	if ys := r.URL.Query().Get("year"); ys != "" {
		y, err := strconv.Atoi(ys)
		if err != nil || y < 2000 || y > 2200 {
			writeProblem(w, http.StatusBadRequest, "Invalid year", "year must be a 4-digit year")
			return
		}
		year = y
	}
	if ms := r.URL.Query().Get("month"); ms != "" {
		m, err := strconv.Atoi(ms)
		if err != nil || m < 1 || m > 12 {
			writeProblem(w, http.StatusBadRequest, "Invalid month", "month must be 1-12")
			return
		}
		month = time.Month(m)
	}
	months := 2
	if ms := r.URL.Query().Get("months"); ms != "" {
		m, err := strconv.Atoi(ms)
		if err != nil || m < 1 || m > 2 {
			writeProblem(w, http.StatusBadRequest, "Invalid months", "months must be 1 or 2")
			return
		}
		months = m
	}
	year, month = availability.Clamp(year, month, today)

	bookings := h.Q.ActiveBookings(r.Context(), v.ID, today)

	out := make([]calendarMonth, 0, months)
	y, m := year, month
	for i := 0; i < months; i++ {
		cm := calendarMonth{Year: y, Month: int(m), Label: m.String() + " " + strconv.Itoa(y)}
		for c := range availability.MonthCells(y, m, bookings, today) {
			cell := calendarCell{Day: c.Day, Padding: c.Padding}
			if !c.Padding {
				cell.Status = c.Status.String()
			}
			cm.Cells = append(cm.Cells, cell)
		}
		out = append(out, cm)
		y, m = availability.NextMonth(y, m)
	}

	writeJSON(w, http.StatusOK, struct {
		VillaSlug string          `json:"villa_slug"`
		Today     string          `json:"today"`
		Months    []calendarMonth `json:"months"`
	}{VillaSlug: v.Slug, Today: today.String(), Months: out})
}

// ---- booking requests ----

type bookingRequestBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	CheckIn string `json:"check_in"`
	Nights  int    `json:"nights"`
	Guests  int    `json:"guests"`
}

func (h *Handlers) createBookingRequest(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.GetVillaBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "villa not found")
		return
	}

	var body bookingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	checkIn, err := domain.ParseDate(body.CheckIn)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "check_in must be YYYY-MM-DD")
		return
	}
	req := app.BookingRequest{
		Name:    body.Name,
		Email:   body.Email,
		CheckIn: checkIn,
		Nights:  body.Nights,
		Guests:  body.Guests,
	}
	if err := req.Validate(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}

	// The quote always carries the WhatsApp handoff; a failed lead write
	// is logged inside Submit and never surfaces here.
	quote := h.B.Submit(r.Context(), v, req)
	writeJSON(w, http.StatusCreated, quote)
}

// ---- journal ----

func (h *Handlers) listPosts(w http.ResponseWriter, r *http.Request) {
	ps := h.Q.ListPosts(r.Context())
	if ps == nil {
		ps = []domain.Post{}
	}
	writeCacheable(w, r, struct {
		Posts []domain.Post `json:"posts"`
	}{Posts: ps})
}

func (h *Handlers) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "post not found")
		return
	}
	writeCacheable(w, r, p)
}

// ---- contact inquiries ----

// createInquiry surfaces persistence failures, unlike the booking-lead
// path: contact submissions are visibly retryable.
func (h *Handlers) createInquiry(w http.ResponseWriter, r *http.Request) {
	var inq domain.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inq); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := h.C.Submit(r.Context(), inq); err != nil {
		if errors.Is(err, app.ErrInvalid) {
			writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
			return
		}
		writeProblem(w, http.StatusBadGateway, "Store Unavailable", "could not save your message, please try again")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Status string `json:"status"`
	}{Status: "success"})
}
