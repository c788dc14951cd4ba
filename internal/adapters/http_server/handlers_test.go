package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "stayinubud/internal/adapters/http_server"
	"stayinubud/internal/adapters/whatsapp"
	"stayinubud/internal/app"
	"stayinubud/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	villas   []domain.Villa
	bookings []domain.Booking
	posts    []domain.Post

	bookingsErr error
	inquiryErr  error

	inquiries []domain.Inquiry
}

func (f *fakeStore) ListVillas(ctx context.Context) ([]domain.Villa, error) {
	return f.villas, nil
}
func (f *fakeStore) GetVillaBySlug(ctx context.Context, slug string) (domain.Villa, error) {
	for _, v := range f.villas {
		if v.Slug == slug {
			return v, nil
		}
	}
	return domain.Villa{}, domain.ErrNotFound
}
func (f *fakeStore) ListBookings(ctx context.Context, villaID string, activeOn domain.Date) ([]domain.Booking, error) {
	return f.bookings, f.bookingsErr
}
func (f *fakeStore) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return f.posts, nil
}
func (f *fakeStore) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}
func (f *fakeStore) InsertInquiry(ctx context.Context, inq domain.Inquiry) error {
	if f.inquiryErr != nil {
		return f.inquiryErr
	}
	f.inquiries = append(f.inquiries, inq)
	return nil
}

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

// ---- setup ----

func fixedToday() time.Time {
	return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
}

func testStore() *fakeStore {
	return &fakeStore{
		villas: []domain.Villa{{
			ID:            "1",
			Slug:          "villa-amandari",
			Name:          "Villa Amandari",
			PricePerNight: 4_500_000,
			Capacity:      4,
		}},
		bookings: []domain.Booking{{
			ID:        "b1",
			VillaID:   "1",
			StartDate: mustDate("2024-03-10"),
			EndDate:   mustDate("2024-03-12"),
		}},
		posts: []domain.Post{{
			ID:          "p1",
			Slug:        "bali-guide",
			Title:       "A Guide to Ubud",
			IsPublished: true,
			PublishedAt: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		}},
	}
}

func newTestMux(store *fakeStore) http.Handler {
	q := app.NewQueryService(store, nopCache{}, time.Minute)
	b := app.NewBookingService(store, whatsapp.New("6281234567890"))
	c := app.NewContactService(store)

	s := httpserver.New()
	s.MountHandlers(&httpserver.Handlers{Q: q, B: b, C: c, Now: fixedToday})
	return s.Mux()
}

func doReq(t *testing.T, mux http.Handler, method, target, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *strings.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	} else {
		rdr = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, rdr)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ---- tests ----

func TestHealthz(t *testing.T) {
	rr := doReq(t, newTestMux(testStore()), "GET", "/healthz", "", nil)
	if rr.Code != 200 || rr.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rr.Code, rr.Body.String())
	}
}

func TestListVillas_ETagRoundTrip(t *testing.T) {
	mux := newTestMux(testStore())

	rr := doReq(t, mux, "GET", "/v1/villas", "", nil)
	if rr.Code != 200 {
		t.Fatalf("status: %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Fatalf("etag = %q", etag)
	}
	var out struct {
		Villas []domain.Villa `json:"villas"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Villas) != 1 || out.Villas[0].Slug != "villa-amandari" {
		t.Fatalf("villas: %+v", out.Villas)
	}

	// conditional revalidation returns 304 with no body
	rr2 := doReq(t, mux, "GET", "/v1/villas", "", map[string]string{"If-None-Match": etag})
	if rr2.Code != http.StatusNotModified {
		t.Fatalf("revalidation status: %d", rr2.Code)
	}
	if rr2.Body.Len() != 0 {
		t.Fatalf("304 carried a body: %q", rr2.Body.String())
	}
}

func TestGetVilla_NotFoundProblem(t *testing.T) {
	rr := doReq(t, newTestMux(testStore()), "GET", "/v1/villas/no-such-villa", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content-type: %q", ct)
	}
	var p struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Title != "Not Found" || p.Status != 404 {
		t.Fatalf("problem: %+v", p)
	}
}

func TestListBookings(t *testing.T) {
	rr := doReq(t, newTestMux(testStore()), "GET", "/v1/villas/villa-amandari/bookings", "", nil)
	if rr.Code != 200 {
		t.Fatalf("status: %d", rr.Code)
	}
	var out struct {
		VillaSlug string           `json:"villa_slug"`
		Bookings  []domain.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.VillaSlug != "villa-amandari" || len(out.Bookings) != 1 {
		t.Fatalf("out: %+v", out)
	}
}

func TestListBookings_StoreErrorDegradesToEmpty(t *testing.T) {
	store := testStore()
	store.bookingsErr = errors.New("boom")
	rr := doReq(t, newTestMux(store), "GET", "/v1/villas/villa-amandari/bookings", "", nil)
	if rr.Code != 200 {
		t.Fatalf("status: %d", rr.Code)
	}
	var out struct {
		Bookings []domain.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Bookings == nil || len(out.Bookings) != 0 {
		t.Fatalf("want empty list, got %+v", out.Bookings)
	}
}

type calendarResp struct {
	VillaSlug string `json:"villa_slug"`
	Today     string `json:"today"`
	Months    []struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Label string `json:"label"`
		Cells []struct {
			Day     int    `json:"day"`
			Padding bool   `json:"padding"`
			Status  string `json:"status"`
		} `json:"cells"`
	} `json:"months"`
}

func TestGetCalendar_Default(t *testing.T) {
	rr := doReq(t, newTestMux(testStore()), "GET", "/v1/villas/villa-amandari/calendar", "", nil)
	if rr.Code != 200 {
		t.Fatalf("status: %d", rr.Code)
	}
	var out calendarResp
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Today != "2024-03-01" {
		t.Fatalf("today: %q", out.Today)
	}
	if len(out.Months) != 2 {
		t.Fatalf("default must render two months, got %d", len(out.Months))
	}
	m0, m1 := out.Months[0], out.Months[1]
	if m0.Year != 2024 || m0.Month != 3 || m0.Label != "March 2024" {
		t.Fatalf("first month: %+v", m0)
	}
	if m1.Year != 2024 || m1.Month != 4 {
		t.Fatalf("second month: %+v", m1)
	}

	// March 2024 starts on a Friday: five leading padding cells then 31 days
	pad := 0
	for _, c := range m0.Cells {
		if c.Padding {
			pad++
		}
	}
	if pad != 5 || len(m0.Cells) != 5+31 {
		t.Fatalf("march grid: %d padding, %d cells", pad, len(m0.Cells))
	}

	// the stored interval blocks its days inclusively
	status := map[int]string{}
	for _, c := range m0.Cells {
		if !c.Padding {
			status[c.Day] = c.Status
		}
	}
	for day := 10; day <= 12; day++ {
		if status[day] != "booked" {
			t.Errorf("day %d = %q, want booked", day, status[day])
		}
	}
	if status[9] != "available" || status[13] != "available" {
		t.Errorf("interval neighbors: day9=%q day13=%q", status[9], status[13])
	}
	if status[1] != "available" {
		t.Errorf("today must not read as past: %q", status[1])
	}
}

func TestGetCalendar_PastMonthClampsForward(t *testing.T) {
	rr := doReq(t, newTestMux(testStore()), "GET", "/v1/villas/villa-amandari/calendar?year=2024&month=1&months=1", "", nil)
	if rr.Code != 200 {
		t.Fatalf("status: %d", rr.Code)
	}
	var out calendarResp
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Months) != 1 {
		t.Fatalf("months: %d", len(out.Months))
	}
	if out.Months[0].Year != 2024 || out.Months[0].Month != 3 {
		t.Fatalf("past request must clamp to the current month: %+v", out.Months[0])
	}
}

func TestGetCalendar_BadParams(t *testing.T) {
	mux := newTestMux(testStore())
	for _, target := range []string{
		"/v1/villas/villa-amandari/calendar?month=13",
		"/v1/villas/villa-amandari/calendar?month=0",
		"/v1/villas/villa-amandari/calendar?year=99",
		"/v1/villas/villa-amandari/calendar?months=3",
	} {
		if rr := doReq(t, mux, "GET", target, "", nil); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", target, rr.Code)
		}
	}
}

func TestCreateBookingRequest(t *testing.T) {
	store := testStore()
	body := `{"name":"Ana Guest","email":"ana@example.com","check_in":"2024-07-15","nights":3,"guests":2}`
	rr := doReq(t, newTestMux(store), "POST", "/v1/villas/villa-amandari/booking-requests", body, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
	var q app.BookingQuote
	if err := json.Unmarshal(rr.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.Total != 13_500_000 || q.TotalDisplay != "Rp 13.500.000" {
		t.Fatalf("quote: %+v", q)
	}
	if !strings.HasPrefix(q.WhatsAppURL, "https://wa.me/6281234567890?text=") {
		t.Fatalf("whatsapp url: %q", q.WhatsAppURL)
	}
	if len(store.inquiries) != 1 {
		t.Fatalf("lead rows: %d", len(store.inquiries))
	}
}

func TestCreateBookingRequest_LeadFailureStillCreated(t *testing.T) {
	store := testStore()
	store.inquiryErr = errors.New("insert denied")
	body := `{"name":"Ana","email":"ana@example.com","check_in":"2024-07-15","nights":2,"guests":2}`
	rr := doReq(t, newTestMux(store), "POST", "/v1/villas/villa-amandari/booking-requests", body, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("lead failure must not surface: %d %s", rr.Code, rr.Body.String())
	}
	var q app.BookingQuote
	if err := json.Unmarshal(rr.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.WhatsAppURL == "" {
		t.Fatal("handoff missing")
	}
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	mux := newTestMux(testStore())
	cases := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"bad date", `{"name":"A","email":"a@b.c","check_in":"July 15","nights":1,"guests":1}`},
		{"zero nights", `{"name":"A","email":"a@b.c","check_in":"2024-07-15","nights":0,"guests":1}`},
		{"missing name", `{"email":"a@b.c","check_in":"2024-07-15","nights":1,"guests":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doReq(t, mux, "POST", "/v1/villas/villa-amandari/booking-requests", tc.body, nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status: %d", rr.Code)
			}
		})
	}
}

func TestCreateBookingRequest_UnknownVilla(t *testing.T) {
	body := `{"name":"A","email":"a@b.c","check_in":"2024-07-15","nights":1,"guests":1}`
	rr := doReq(t, newTestMux(testStore()), "POST", "/v1/villas/nope/booking-requests", body, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
}

func TestPosts(t *testing.T) {
	mux := newTestMux(testStore())

	rr := doReq(t, mux, "GET", "/v1/posts", "", nil)
	if rr.Code != 200 {
		t.Fatalf("list status: %d", rr.Code)
	}
	var out struct {
		Posts []domain.Post `json:"posts"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Posts) != 1 || out.Posts[0].Slug != "bali-guide" {
		t.Fatalf("posts: %+v", out.Posts)
	}

	if rr := doReq(t, mux, "GET", "/v1/posts/bali-guide", "", nil); rr.Code != 200 {
		t.Fatalf("get status: %d", rr.Code)
	}
	if rr := doReq(t, mux, "GET", "/v1/posts/nope", "", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("missing post status: %d", rr.Code)
	}
}

func TestGetPost_UnpublishedIs404(t *testing.T) {
	store := testStore()
	store.posts = append(store.posts, domain.Post{Slug: "draft", IsPublished: false})
	rr := doReq(t, newTestMux(store), "GET", "/v1/posts/draft", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unpublished post must 404, got %d", rr.Code)
	}
}

func TestCreateInquiry(t *testing.T) {
	store := testStore()
	mux := newTestMux(store)

	body := `{"name":"Ana","email":"ana@example.com","message":"Is July free?"}`
	rr := doReq(t, mux, "POST", "/v1/inquiries", body, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rr.Code, rr.Body.String())
	}
	if len(store.inquiries) != 1 {
		t.Fatalf("inquiries: %d", len(store.inquiries))
	}

	// validation failure is a 400
	rr = doReq(t, mux, "POST", "/v1/inquiries", `{"name":"","email":"x","message":""}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("validation status: %d", rr.Code)
	}
}

func TestCreateInquiry_StoreFailureIs502(t *testing.T) {
	store := testStore()
	store.inquiryErr = errors.New("boom")
	body := `{"name":"Ana","email":"ana@example.com","message":"Hello"}`
	rr := doReq(t, newTestMux(store), "POST", "/v1/inquiries", body, nil)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status: %d, want 502", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content-type: %q", ct)
	}
}
