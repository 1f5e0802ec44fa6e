package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samparc/medical-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/secret", AuthMiddleware(), RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "role": c.GetString(UserRoleKey)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	utils.ConfigureJWT("test-secret", time.Hour)
	adminToken, err := utils.GenerateJWT(0, "admin@example.com", utils.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	sellerToken, err := utils.GenerateJWT(3, "s@example.com", utils.RoleSeller)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + sellerToken, want: http.StatusForbidden},
		{name: "admin", header: "Bearer " + adminToken, want: http.StatusOK},
	}
	r := protectedRouter(utils.RoleAdmin)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRejectsOtherSecret(t *testing.T) {
	utils.ConfigureJWT("first-secret", time.Hour)
	token, err := utils.GenerateJWT(1, "c@example.com", utils.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	utils.ConfigureJWT("second-secret", time.Hour)
	t.Cleanup(func() { utils.ConfigureJWT("test-secret", time.Hour) })

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedRouter(utils.RoleCustomer).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("generated request id %q is not a uuid", generated)
	}
	if w.Body.String() != generated {
		t.Fatalf("context id = %q, header id = %q", w.Body.String(), generated)
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != incoming {
		t.Fatalf("request id = %q, want caller's %q", got, incoming)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Now()

	if !rl.allow("10.0.0.1", now) || !rl.allow("10.0.0.1", now) {
		t.Fatal("burst of 2 should be allowed")
	}
	if rl.allow("10.0.0.1", now) {
		t.Fatal("third request within the same instant should be limited")
	}
	if !rl.allow("10.0.0.2", now) {
		t.Fatal("other clients have their own bucket")
	}
	if !rl.allow("10.0.0.1", now.Add(1100*time.Millisecond)) {
		t.Fatal("bucket should refill after a second")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/chat", NewRateLimiter(1, 1).Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v, want [200 429]", codes)
	}
}
