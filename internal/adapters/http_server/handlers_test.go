package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpserver "travel_console/internal/adapters/http_server"
	"travel_console/internal/app"
	"travel_console/internal/domain"
)

// memRepo is an in-memory record store assigning ids and timestamps.
type memRepo struct {
	mu      sync.Mutex
	rows    []domain.Package
	listErr error
	now     time.Time
}

func (m *memRepo) CreatePackage(ctx context.Context, p domain.NewPackage) (domain.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(time.Second)
	row := domain.Package{
		ID: int64(len(m.rows) + 1), Name: p.Name, Destination: p.Destination, Duration: p.Duration,
		Price: p.Price, OriginalPrice: p.OriginalPrice, Description: p.Description,
		Highlights: p.Highlights, Includes: p.Includes, Category: p.Category, Status: p.Status,
		Featured: p.Featured, Image: p.Image, Route: p.Route, Nights: p.Nights, Days: p.Days,
		TripType: p.TripType, CreatedAt: m.now,
	}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memRepo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Package, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0; i-- {
		out = append(out, m.rows[i])
	}
	return out, nil
}

type panicLister struct{}

func (panicLister) ListPackages(ctx context.Context) ([]domain.Package, error) { panic("kaboom") }

func newServer(repo *memRepo) http.Handler {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q: app.NewPackageQueries(repo, nil, 0),
		C: app.NewPackageCommands(repo, nil, nil),
	})
	return srv.Mux()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreatePackage_DefaultsScenario(t *testing.T) {
	h := newServer(&memRepo{now: time.Now()})

	rr := do(t, h, http.MethodPost, "/api/packages",
		`{"name":"Test Trip","destination":"Goa","duration":"3 days","price":500}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}

	var body struct {
		Package map[string]any `json:"package"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := body.Package
	if p["status"] != "Active" || p["featured"] != false || p["image"] != "/cards/1.jpg" {
		t.Fatalf("unexpected defaults: %v", p)
	}
	if p["trip_type"] != "custom" || p["route"] != "" || p["nights"] != 0.0 || p["days"] != 0.0 {
		t.Fatalf("unexpected defaults: %v", p)
	}
	if p["id"] == nil || p["created_at"] == nil {
		t.Fatalf("store fields missing: %v", p)
	}
}

func TestListPackages_NewestFirst(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	h := newServer(repo)
	for _, n := range []string{"Bali Adventure", "European Grand Tour", "Thailand Discovery"} {
		if rr := do(t, h, http.MethodPost, "/api/packages", `{"name":"`+n+`"}`); rr.Code != http.StatusCreated {
			t.Fatalf("create %s: %d", n, rr.Code)
		}
	}

	rr := do(t, h, http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var body struct {
		Packages []domain.Package `json:"packages"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Packages) != 3 || body.Packages[0].Name != "Thailand Discovery" {
		t.Fatalf("unexpected list: %+v", body.Packages)
	}
	for i := 1; i < len(body.Packages); i++ {
		if body.Packages[i].CreatedAt.After(body.Packages[i-1].CreatedAt) {
			t.Fatalf("not sorted by created_at desc at %d", i)
		}
	}
}

func TestListPackages_EmptyIsArray(t *testing.T) {
	rr := do(t, newServer(&memRepo{}), http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != `{"packages":[]}` {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestListPackages_StoreFailure(t *testing.T) {
	repo := &memRepo{listErr: domain.NewStoreError("select packages", errors.New(`relation "packages" does not exist`))}

	rr := do(t, newServer(repo), http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&body)
	if body["error"] != `relation "packages" does not exist` {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListPackages_UnexpectedErrorIsGeneric(t *testing.T) {
	repo := &memRepo{listErr: errors.New("dial tcp: secret host details")}

	rr := do(t, newServer(repo), http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), `"Internal server error"`) {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestPanicBecomesInternalServerError(t *testing.T) {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: panicLister{}})

	rr := do(t, srv.Mux(), http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"Internal server error"}` {
		t.Fatalf("body %s", rr.Body.String())
	}
}

func TestCreatePackage_RejectsMalformedBodies(t *testing.T) {
	h := newServer(&memRepo{})
	cases := map[string]string{
		"syntax":        `{"name":`,
		"unknown field": `{"name":"x","bookings":15}`,
		"wrong type":    `{"price":"cheap"}`,
		"empty":         ``,
		"trailing":      `{"name":"x"} {"name":"y"}`,
		"trailing ]":    `{"name":"x"}]`,
		"trailing junk": `{"name":"x"} nope`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/packages", body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), `"error"`) {
				t.Fatalf("missing error field: %s", rr.Body.String())
			}
		})
	}
}

func TestCreatePackage_TrailingWhitespaceAccepted(t *testing.T) {
	h := newServer(&memRepo{})
	rr := do(t, h, http.MethodPost, "/api/packages", "{\"name\":\"x\"}\n\t ")
	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestListPackages_ETag(t *testing.T) {
	h := newServer(&memRepo{})

	first := do(t, h, http.MethodGet, "/api/packages", "")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
	req.Header.Set("If-None-Match", etag)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestOtherRoutes(t *testing.T) {
	h := newServer(&memRepo{})

	if rr := do(t, h, http.MethodGet, "/healthz", ""); rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(t, h, http.MethodGet, "/swagger.json", ""); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"openapi"`) {
		t.Fatalf("swagger.json: %d", rr.Code)
	}
	if rr := do(t, h, http.MethodDelete, "/api/packages", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE: %d", rr.Code)
	}
}
