package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/citu-lostit/lostit/internal/backend"
	"github.com/citu-lostit/lostit/internal/db"
	"github.com/citu-lostit/lostit/internal/model"
)

const testSecret = "test-secret"

// fakeBackend serves canned REST responses and records every request it
// receives, so tests can assert which mutations were (not) issued.
type fakeBackend struct {
	mu       sync.Mutex
	requests []string

	admins     []model.Admin
	items      []model.Item
	claims     []model.Claim
	categories []model.Category
	locations  []model.Location
}

func (fb *fakeBackend) record(r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.requests = append(fb.requests, r.Method+" "+r.URL.RequestURI())
}

func (fb *fakeBackend) recorded() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.requests...)
}

func (fb *fakeBackend) hasRequest(want string) bool {
	for _, got := range fb.recorded() {
		if got == want {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (fb *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/items/getAllItems", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fb.items)
	})
	mux.HandleFunc("POST /api/items/addItem", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("PUT /api/items/updateItemDetails", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /api/items/deleteItem/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/items/transferToInventory/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/items/addReportedItem", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	mux.HandleFunc("GET /api/claims/getAllClaims", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fb.claims)
	})
	mux.HandleFunc("POST /api/claims/createClaim/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("DELETE /api/claims/deleteClaim/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/categories/getAllCategories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fb.categories)
	})
	mux.HandleFunc("GET /api/locations/getAllLocations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fb.locations)
	})

	mux.HandleFunc("GET /api/admins/getAllAdmins", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fb.admins)
	})
	mux.HandleFunc("PUT /api/admins/updateAdminDetails/{id}", func(w http.ResponseWriter, r *http.Request) {
		var admin model.Admin
		json.NewDecoder(r.Body).Decode(&admin)
		fb.mu.Lock()
		for i := range fb.admins {
			if fb.admins[i].AdminID == admin.AdminID {
				fb.admins[i] = admin
			}
		}
		fb.mu.Unlock()
		writeJSON(w, admin)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.record(r)
		mux.ServeHTTP(w, r)
	})
}

// setupTestServer starts a fake backend and the page server in front of it.
// One admin account exists: walter / hunter2-hunter2.
func setupTestServer(t *testing.T) (*httptest.Server, *fakeBackend) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2-hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}

	fb := &fakeBackend{
		admins: []model.Admin{{
			AdminID:  1,
			Username: "walter",
			Password: string(hash),
			Email:    "walter@example.edu",
			FullName: "Walter Reyes",
		}},
		items: []model.Item{
			{
				ItemID: 1, ItemName: "Black Wallet", Description: "Leather",
				Status:   model.ItemStatusUnclaimed,
				Category: &model.Category{CategoryID: 1, CategoryName: "Others"},
				Location: &model.Location{LocationID: 1, LocationBuilding: "NGE", LocationFloor: "2nd Floor"},
			},
			{
				ItemID: 2, ItemName: "Car Keys", Status: model.ItemStatusClaimed,
				Category: &model.Category{CategoryID: 2, CategoryName: "Electronics"},
			},
			{
				ItemID: 3, ItemName: "Blue Umbrella", Status: model.ItemStatusReported,
				Category: &model.Category{CategoryID: 1, CategoryName: "Others"},
			},
		},
		claims: []model.Claim{
			{ClaimID: 7, FirstName: "Ana", LastName: "Lim", StudEmail: "ana@example.edu",
				Item: &model.Item{ItemID: 2, ItemName: "Car Keys"}},
		},
		categories: []model.Category{
			{CategoryID: 1, CategoryName: "Others"},
			{CategoryID: 2, CategoryName: "Electronics"},
		},
		locations: []model.Location{
			{LocationID: 1, LocationBuilding: "NGE", LocationFloor: "2nd Floor"},
		},
	}

	backendSrv := httptest.NewServer(fb.handler())
	t.Cleanup(backendSrv.Close)

	database := db.NewTestDB(t)
	router, err := NewRouter(database, backend.New(backendSrv.URL), testSecret)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, fb
}

// noRedirect returns a client that reports redirects instead of following them.
func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// login performs a form login and returns the session cookie.
func login(t *testing.T, server *httptest.Server) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {"walter"}, "password": {"hunter2-hunter2"}}
	resp, err := noRedirect().PostForm(server.URL+"/login", form)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after login, got %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie after login")
	return nil
}

// get fetches a page with the given session cookie and returns status and body.
func get(t *testing.T, server *httptest.Server, path string, session *http.Cookie) (int, string) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, server.URL+path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := noRedirect().Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// postForm posts a form with the given session cookie.
func postForm(t *testing.T, server *httptest.Server, path string, session *http.Cookie, form url.Values) (int, string, *http.Response) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := noRedirect().Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), resp
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	server, _ := setupTestServer(t)

	for _, path := range []string{"/", "/inventory", "/claims", "/reports", "/profile"} {
		status, _ := get(t, server, path, nil)
		if status != http.StatusSeeOther {
			t.Errorf("GET %s anonymous: status = %d, want %d", path, status, http.StatusSeeOther)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	server, _ := setupTestServer(t)

	form := url.Values{"username": {"walter"}, "password": {"wrong"}}
	resp, err := noRedirect().PostForm(server.URL+"/login", form)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Invalid username or password.") {
		t.Error("expected generic credential error in response")
	}
	for _, c := range resp.Cookies() {
		if c.Name == "session" && c.Value != "" {
			t.Error("expected no session cookie for failed login")
		}
	}
}

func TestLoginAndDashboard(t *testing.T) {
	server, _ := setupTestServer(t)
	session := login(t, server)

	status, body := get(t, server, "/", session)
	if status != http.StatusOK {
		t.Fatalf("dashboard status = %d", status)
	}
	if !strings.Contains(body, "Dashboard") {
		t.Error("expected dashboard heading")
	}
	// 3 items total, 1 unclaimed, tracked categories broken out.
	if !strings.Contains(body, "Walter Reyes") {
		t.Error("expected logged-in user's name in the nav")
	}
	if !strings.Contains(body, "Electronics") || !strings.Contains(body, "Others") {
		t.Error("expected tracked category bars")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	server, _ := setupTestServer(t)
	session := login(t, server)

	status, _, _ := postForm(t, server, "/logout", session, url.Values{})
	if status != http.StatusSeeOther {
		t.Fatalf("logout status = %d", status)
	}

	// The old cookie must stop working, not just be cleared client-side.
	status, _ = get(t, server, "/inventory", session)
	if status != http.StatusSeeOther {
		t.Errorf("revoked session status = %d, want redirect", status)
	}
}

func TestInventorySearchFiltersRows(t *testing.T) {
	server, _ := setupTestServer(t)
	session := login(t, server)

	status, body := get(t, server, "/inventory?q=wal", session)
	if status != http.StatusOK {
		t.Fatalf("inventory status = %d", status)
	}
	if !strings.Contains(body, "Black Wallet") {
		t.Error("expected matching item in results")
	}
	if strings.Contains(body, "Car Keys") {
		t.Error("expected non-matching item to be filtered out")
	}
}

func TestItemCreateValidationIssuesNoMutation(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	form := url.Values{
		"itemName":   {""},
		"categoryId": {"1"},
		"locationId": {"1"},
	}
	_, body, _ := postForm(t, server, "/inventory", session, form)

	if !strings.Contains(body, "item name is required") {
		t.Error("expected validation error in response")
	}
	if fb.hasRequest("POST /api/items/addItem") {
		t.Error("validation failure must not issue a mutation request")
	}
}

func TestItemCreateSubmits(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	form := url.Values{
		"itemName":    {"Red Tumbler"},
		"description": {"Left in the canteen"},
		"status":      {model.ItemStatusUnclaimed},
		"categoryId":  {"1"},
		"locationId":  {"1"},
	}
	status, _, resp := postForm(t, server, "/inventory", session, form)

	if status != http.StatusSeeOther {
		t.Fatalf("expected redirect after create, got %d", status)
	}
	if loc := resp.Header.Get("Location"); loc != "/inventory" {
		t.Errorf("redirect location = %q, want /inventory", loc)
	}
	if !fb.hasRequest("POST /api/items/addItem") {
		t.Errorf("expected addItem request, got %v", fb.recorded())
	}
}

func TestItemDeleteSubmits(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	status, _, _ := postForm(t, server, "/inventory/1/delete", session, url.Values{})
	if status != http.StatusSeeOther {
		t.Fatalf("expected redirect after delete, got %d", status)
	}
	if !fb.hasRequest("DELETE /api/items/deleteItem/1") {
		t.Errorf("expected deleteItem request, got %v", fb.recorded())
	}
}

func TestClaimCreateValidationIssuesNoMutation(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	form := url.Values{
		"itemId":    {"2"},
		"firstName": {""},
		"lastName":  {"Lim"},
		"studEmail": {"ana@example.edu"},
	}
	_, body, _ := postForm(t, server, "/claims", session, form)

	if !strings.Contains(body, "first name is required") {
		t.Error("expected validation error in response")
	}
	for _, req := range fb.recorded() {
		if strings.HasPrefix(req, "POST /api/claims/createClaim") {
			t.Error("validation failure must not issue a mutation request")
		}
	}
}

func TestClaimCreateSubmits(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	form := url.Values{
		"itemId":      {"2"},
		"firstName":   {"Ana"},
		"lastName":    {"Lim"},
		"studEmail":   {"ana@example.edu"},
		"dateClaimed": {"2024-06-01"},
	}
	status, _, _ := postForm(t, server, "/claims", session, form)

	if status != http.StatusSeeOther {
		t.Fatalf("expected redirect after claim create, got %d", status)
	}
	if !fb.hasRequest("POST /api/claims/createClaim/2") {
		t.Errorf("expected createClaim request, got %v", fb.recorded())
	}
}

func TestReportsQueueShowsOnlyReportedItems(t *testing.T) {
	server, _ := setupTestServer(t)
	session := login(t, server)

	status, body := get(t, server, "/reports", session)
	if status != http.StatusOK {
		t.Fatalf("reports status = %d", status)
	}
	if !strings.Contains(body, "Blue Umbrella") {
		t.Error("expected reported item in review queue")
	}
	if strings.Contains(body, "Black Wallet") {
		t.Error("expected non-reported items to be excluded")
	}
}

func TestReportAcceptTransfersItem(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	status, _, _ := postForm(t, server, "/reports/3/accept", session, url.Values{})
	if status != http.StatusSeeOther {
		t.Fatalf("expected redirect after accept, got %d", status)
	}
	if !fb.hasRequest("POST /api/items/transferToInventory/3") {
		t.Errorf("expected transfer request, got %v", fb.recorded())
	}
}

func TestReportDeclineDeletesItem(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	status, _, _ := postForm(t, server, "/reports/3/decline", session, url.Values{})
	if status != http.StatusSeeOther {
		t.Fatalf("expected redirect after decline, got %d", status)
	}
	if !fb.hasRequest("DELETE /api/items/deleteItem/3") {
		t.Errorf("expected delete request, got %v", fb.recorded())
	}
}

func TestPublicReportForm(t *testing.T) {
	server, fb := setupTestServer(t)

	// No session required.
	status, body := get(t, server, "/report", nil)
	if status != http.StatusOK {
		t.Fatalf("report form status = %d", status)
	}
	if !strings.Contains(body, "Report a Found Item") {
		t.Error("expected public report form")
	}

	form := url.Values{
		"itemName":    {"Umbrella"},
		"description": {"Blue, near the gym"},
		"categoryId":  {"1"},
		"locationId":  {"1"},
	}
	status, body, _ = postForm(t, server, "/report", nil, form)
	if status != http.StatusOK {
		t.Fatalf("report submit status = %d", status)
	}
	if !strings.Contains(body, "submitted for review") {
		t.Error("expected submission confirmation")
	}
	if !fb.hasRequest("POST /api/items/addReportedItem") {
		t.Errorf("expected addReportedItem request, got %v", fb.recorded())
	}
}

func TestForgotPasswordFlow(t *testing.T) {
	server, fb := setupTestServer(t)

	// Unknown email gets the same confirmation, no reset link.
	_, body, _ := postForm(t, server, "/forgot-password", nil, url.Values{"email": {"nobody@example.edu"}})
	if !strings.Contains(body, "If that email belongs to an admin account") {
		t.Error("expected uniform confirmation for unknown email")
	}
	if strings.Contains(body, "/reset-password?token=") {
		t.Error("expected no reset link for unknown email")
	}

	// Known email yields a usable link.
	_, body, _ = postForm(t, server, "/forgot-password", nil, url.Values{"email": {"walter@example.edu"}})
	start := strings.Index(body, "/reset-password?token=")
	if start < 0 {
		t.Fatal("expected reset link for known email")
	}
	link := body[start:]
	link = link[:strings.IndexAny(link, `"`)]

	status, body := get(t, server, link, nil)
	if status != http.StatusOK {
		t.Fatalf("reset page status = %d", status)
	}
	if !strings.Contains(body, "Set new password") {
		t.Error("expected reset form for valid token")
	}

	token := strings.TrimPrefix(link, "/reset-password?token=")
	form := url.Values{
		"token":           {token},
		"password":        {"a-new-password"},
		"confirmPassword": {"a-new-password"},
	}
	_, body, _ = postForm(t, server, "/reset-password", nil, form)
	if !fb.hasRequest("PUT /api/admins/updateAdminDetails/1") {
		t.Errorf("expected admin update request, got %v", fb.recorded())
	}

	// The token is single-use.
	_, body, _ = postForm(t, server, "/reset-password", nil, form)
	if !strings.Contains(body, "invalid or has expired") {
		t.Error("expected consumed token to be rejected")
	}
}

func TestProfileUpdateRefreshesSession(t *testing.T) {
	server, fb := setupTestServer(t)
	session := login(t, server)

	form := url.Values{
		"fullName":    {"Walter B. Reyes"},
		"email":       {"walter@example.edu"},
		"phoneNumber": {"0917 555 0101"},
	}
	status, body, resp := postForm(t, server, "/profile", session, form)
	if status != http.StatusOK {
		t.Fatalf("profile submit status = %d", status)
	}
	if !strings.Contains(body, "Profile updated successfully.") {
		t.Error("expected success message")
	}
	if !fb.hasRequest("PUT /api/admins/updateAdminDetails/1") {
		t.Errorf("expected admin update request, got %v", fb.recorded())
	}

	var refreshed *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" && c.Value != "" {
			refreshed = c
		}
	}
	if refreshed == nil {
		t.Fatal("expected re-issued session cookie")
	}

	_, dash := get(t, server, "/", refreshed)
	if !strings.Contains(dash, "Walter B. Reyes") {
		t.Error("expected updated name in the nav")
	}
}
