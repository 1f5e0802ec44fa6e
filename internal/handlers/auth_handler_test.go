package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/utils"
)

type authResponse[T any] struct {
	Token string `json:"token"`
	User  T      `json:"user"`
}

func TestAdminLogin(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{name: "valid", email: testAdminEmail, password: testAdminPassword, want: http.StatusOK},
		{name: "email is case insensitive", email: "Admin@Samparc.Test", password: testAdminPassword, want: http.StatusOK},
		{name: "wrong password", email: testAdminEmail, password: "nope", want: http.StatusUnauthorized},
		{name: "unknown email", email: "other@samparc.test", password: testAdminPassword, want: http.StatusUnauthorized},
		{name: "missing password", email: testAdminEmail, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/auth/admin/login", "", map[string]string{"email": tt.email, "password": tt.password})
			expectStatus(t, w, tt.want)
			if tt.want != http.StatusOK {
				return
			}
			resp := decode[authResponse[map[string]string]](t, w)
			claims, err := utils.ValidateJWT(resp.Token)
			if err != nil {
				t.Fatalf("ValidateJWT() error = %v", err)
			}
			if claims.Role != utils.RoleAdmin || claims.Email != testAdminEmail {
				t.Fatalf("claims = %+v, want admin %s", claims, testAdminEmail)
			}
		})
	}
}

func TestCustomerRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)
	register := map[string]string{
		"name":            "Asha Patil",
		"email":           "Asha@Example.com",
		"phone":           "9876543210",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}

	w := ts.do(t, http.MethodPost, "/auth/customers/register", "", register)
	expectStatus(t, w, http.StatusCreated)
	if strings.Contains(w.Body.String(), "passwordHash") || strings.Contains(w.Body.String(), "secret1") {
		t.Fatalf("register response leaks the password: %s", w.Body.String())
	}
	created := decode[authResponse[models.Customer]](t, w)
	if created.Token == "" || created.User.ID == 0 || created.User.Email != "asha@example.com" {
		t.Fatalf("register response = %+v", created)
	}

	t.Run("duplicate email", func(t *testing.T) {
		expectStatus(t, ts.do(t, http.MethodPost, "/auth/customers/register", "", register), http.StatusConflict)
	})

	t.Run("validation", func(t *testing.T) {
		bad := []map[string]string{
			{"name": "A", "email": "a@example.com", "phone": "1", "password": "short", "confirmPassword": "short"},
			{"name": "A", "email": "a@example.com", "phone": "1", "password": "secret1", "confirmPassword": "secret2"},
			{"name": "A", "email": "not-an-email", "phone": "1", "password": "secret1", "confirmPassword": "secret1"},
			{"name": "   ", "email": "a@example.com", "phone": "1", "password": "secret1", "confirmPassword": "secret1"},
		}
		for _, body := range bad {
			expectStatus(t, ts.do(t, http.MethodPost, "/auth/customers/register", "", body), http.StatusBadRequest)
		}
	})

	t.Run("login", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/customers/login", "", map[string]string{"email": "asha@example.com", "password": "secret1"})
		expectStatus(t, w, http.StatusOK)
		resp := decode[authResponse[models.Customer]](t, w)

		me := ts.do(t, http.MethodGet, "/api/customer/me", resp.Token, nil)
		expectStatus(t, me, http.StatusOK)
		if got := decode[models.Customer](t, me); got.ID != created.User.ID {
			t.Fatalf("me = %+v, want id %d", got, created.User.ID)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/customers/login", "", map[string]string{"email": "asha@example.com", "password": "secret2"})
		expectStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("login unknown email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/customers/login", "", map[string]string{"email": "ghost@example.com", "password": "secret1"})
		expectStatus(t, w, http.StatusUnauthorized)
	})
}

func TestSellerRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)
	register := map[string]any{
		"name":            "Ravi Kumar",
		"businessName":    "Kumar Medicals",
		"email":           "ravi@example.com",
		"phone":           "9876500000",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"documents":       []string{"drug-licence.pdf", "gst.pdf"},
	}

	w := ts.do(t, http.MethodPost, "/auth/sellers/register", "", register)
	expectStatus(t, w, http.StatusCreated)
	seller := decode[models.Seller](t, w)
	if seller.Status != models.SellerPending || len(seller.DocumentsSubmitted) != 2 {
		t.Fatalf("registered seller = %+v", seller)
	}

	noDocs := map[string]any{}
	for k, v := range register {
		noDocs[k] = v
	}
	noDocs["email"] = "other@example.com"
	noDocs["documents"] = []string{}
	expectStatus(t, ts.do(t, http.MethodPost, "/auth/sellers/register", "", noDocs), http.StatusBadRequest)

	expectStatus(t, ts.do(t, http.MethodPost, "/auth/sellers/register", "", register), http.StatusConflict)

	// Pending sellers can sign in to see their status.
	login := ts.do(t, http.MethodPost, "/auth/sellers/login", "", map[string]string{"email": "ravi@example.com", "password": "secret1"})
	expectStatus(t, login, http.StatusOK)
	resp := decode[authResponse[models.Seller]](t, login)
	me := ts.do(t, http.MethodGet, "/api/seller/me", resp.Token, nil)
	expectStatus(t, me, http.StatusOK)
	if got := decode[models.Seller](t, me); got.Status != models.SellerPending {
		t.Fatalf("me status = %s, want Pending", got.Status)
	}
}
