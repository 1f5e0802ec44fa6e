package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/samparc/medical-api/internal/cache"
	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/middleware"
	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store/sqlstore"
	"github.com/samparc/medical-api/internal/utils"
)

const (
	testAdminEmail    = "admin@samparc.test"
	testAdminPassword = "admin-pass"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingNotifier struct {
	mu                 sync.Mutex
	submitted          []models.Appointment
	appointmentChanges []models.Appointment
	sellerChanges      []models.Seller
}

func (n *recordingNotifier) AppointmentSubmitted(apt *models.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.submitted = append(n.submitted, *apt)
}

func (n *recordingNotifier) AppointmentStatusChanged(apt *models.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.appointmentChanges = append(n.appointmentChanges, *apt)
}

func (n *recordingNotifier) SellerStatusChanged(seller *models.Seller) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sellerChanges = append(n.sellerChanges, *seller)
}

type testServer struct {
	handler  *Handler
	router   *gin.Engine
	store    *sqlstore.Store
	notifier *recordingNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithCache(t, nil)
}

// newTestServerWithCache wires the handlers to contentCache, which may be nil.
func newTestServerWithCache(t *testing.T, contentCache *cache.ContentCache) *testServer {
	t.Helper()
	utils.ConfigureJWT("handler-test-secret", time.Hour)
	utils.PasswordCost = bcrypt.MinCost

	s, err := sqlstore.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	n := &recordingNotifier{}
	h := NewHandler(s, n, contentCache, []config.AdminCredential{{Email: testAdminEmail, Password: testAdminPassword}})
	r := gin.New()
	h.RegisterRoutes(r, middleware.NewRateLimiter(1000, 1000))
	return &testServer{handler: h, router: r, store: s, notifier: n}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, id int64, email, role string) string {
	t.Helper()
	tok, err := utils.GenerateJWT(id, email, role)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	return tok
}

func adminToken(t *testing.T) string {
	return token(t, 1, testAdminEmail, utils.RoleAdmin)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}

// createSeller stores a seller directly and returns it with a session token.
func (ts *testServer) createSeller(t *testing.T, email string, status models.SellerStatus) (*models.Seller, string) {
	t.Helper()
	seller := &models.Seller{
		Name:               "Test Seller",
		BusinessName:       "Test Pharma",
		Email:              email,
		Phone:              "9876543210",
		Status:             status,
		DocumentsSubmitted: []string{"licence.pdf"},
		CreatedAt:          time.Now().UTC(),
	}
	if err := ts.store.CreateSeller(context.Background(), seller); err != nil {
		t.Fatalf("CreateSeller() error = %v", err)
	}
	return seller, token(t, seller.ID, seller.Email, utils.RoleSeller)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/healthz", "", nil)
	expectStatus(t, w, http.StatusOK)
}

func TestRoleGroups(t *testing.T) {
	ts := newTestServer(t)
	customer := token(t, 9, "c@example.com", utils.RoleCustomer)

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{name: "admin route without token", path: "/api/appointments", want: http.StatusUnauthorized},
		{name: "admin route as customer", path: "/api/appointments", token: customer, want: http.StatusForbidden},
		{name: "seller route as customer", path: "/api/seller/me", token: customer, want: http.StatusForbidden},
		{name: "customer route as admin", path: "/api/customer/me", token: adminToken(t), want: http.StatusForbidden},
		{name: "admin route as admin", path: "/api/appointments", token: adminToken(t), want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, ts.do(t, http.MethodGet, tt.path, tt.token, nil), tt.want)
		})
	}
}
