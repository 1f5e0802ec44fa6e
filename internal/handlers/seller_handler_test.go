package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/samparc/medical-api/internal/models"
)

func TestSellerMedicinesRequireApproval(t *testing.T) {
	ts := newTestServer(t)
	seller, sellerToken := ts.createSeller(t, "ravi@example.com", models.SellerPending)
	body := map[string]any{"name": "Azithromycin", "category": "Antibiotics", "price": 12000}

	expectStatus(t, ts.do(t, http.MethodPost, "/api/seller/medicines", sellerToken, body), http.StatusForbidden)

	w := ts.do(t, http.MethodPatch, fmt.Sprintf("/api/sellers/%d/status", seller.ID), adminToken(t), map[string]string{"status": "Approved"})
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Seller](t, w); got.Status != models.SellerApproved {
		t.Fatalf("status = %s, want Approved", got.Status)
	}
	if len(ts.notifier.sellerChanges) != 1 || ts.notifier.sellerChanges[0].Status != models.SellerApproved {
		t.Fatalf("seller notifications = %+v", ts.notifier.sellerChanges)
	}

	expectStatus(t, ts.do(t, http.MethodPost, "/api/seller/medicines", sellerToken, map[string]any{"name": "Free", "category": "X", "price": 0}), http.StatusBadRequest)

	w = ts.do(t, http.MethodPost, "/api/seller/medicines", sellerToken, body)
	expectStatus(t, w, http.StatusCreated)
	listed := decode[models.SellerMedicine](t, w)
	if listed.SellerID != seller.ID || !listed.Available {
		t.Fatalf("listed = %+v", listed)
	}

	// Suspension blocks edits but not withdrawals.
	expectStatus(t, ts.do(t, http.MethodPatch, fmt.Sprintf("/api/sellers/%d/status", seller.ID), adminToken(t), map[string]string{"status": "Suspended"}), http.StatusOK)
	path := fmt.Sprintf("/api/seller/medicines/%d", listed.ID)
	expectStatus(t, ts.do(t, http.MethodPut, path, sellerToken, body), http.StatusForbidden)
	expectStatus(t, ts.do(t, http.MethodDelete, path, sellerToken, nil), http.StatusOK)
}

func TestSellerMedicineOwnership(t *testing.T) {
	ts := newTestServer(t)
	_, ownerToken := ts.createSeller(t, "owner@example.com", models.SellerApproved)
	other, otherToken := ts.createSeller(t, "other@example.com", models.SellerApproved)

	w := ts.do(t, http.MethodPost, "/api/seller/medicines", ownerToken, map[string]any{"name": "Cetirizine", "category": "Allergy", "price": 2500})
	expectStatus(t, w, http.StatusCreated)
	listed := decode[models.SellerMedicine](t, w)
	path := fmt.Sprintf("/api/seller/medicines/%d", listed.ID)

	edit := map[string]any{"name": "Cetirizine 10mg", "category": "Allergy", "price": 2600, "available": false}
	expectStatus(t, ts.do(t, http.MethodPut, path, otherToken, edit), http.StatusNotFound)
	expectStatus(t, ts.do(t, http.MethodDelete, path, otherToken, nil), http.StatusNotFound)

	w = ts.do(t, http.MethodPut, path, ownerToken, edit)
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.SellerMedicine](t, w); got.Name != "Cetirizine 10mg" || got.Available || got.Price != 2600 {
		t.Fatalf("edited = %+v", got)
	}

	w = ts.do(t, http.MethodGet, "/api/seller/medicines", otherToken, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.SellerMedicine](t, w); len(got) != 0 {
		t.Fatalf("other seller sees %d medicines, want 0", len(got))
	}

	w = ts.do(t, http.MethodGet, "/api/seller-medicines", adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.SellerMedicine](t, w); len(got) != 1 {
		t.Fatalf("admin sees %d medicines, want 1", len(got))
	}
	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/seller-medicines?sellerId=%d", other.ID), adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.SellerMedicine](t, w); len(got) != 0 {
		t.Fatalf("filtered list has %d medicines, want 0", len(got))
	}
	expectStatus(t, ts.do(t, http.MethodGet, "/api/seller-medicines?sellerId=x", adminToken(t), nil), http.StatusBadRequest)

	expectStatus(t, ts.do(t, http.MethodDelete, fmt.Sprintf("/api/seller-medicines/%d", listed.ID), adminToken(t), nil), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodDelete, path, ownerToken, nil), http.StatusNotFound)
}

func TestAdminSellers(t *testing.T) {
	ts := newTestServer(t)
	pending, _ := ts.createSeller(t, "pending@example.com", models.SellerPending)
	approved, approvedToken := ts.createSeller(t, "approved@example.com", models.SellerApproved)

	w := ts.do(t, http.MethodGet, "/api/sellers?status=Pending", adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.Seller](t, w); len(got) != 1 || got[0].ID != pending.ID {
		t.Fatalf("pending sellers = %+v", got)
	}
	expectStatus(t, ts.do(t, http.MethodGet, "/api/sellers?status=Banned", adminToken(t), nil), http.StatusBadRequest)

	w = ts.do(t, http.MethodGet, "/api/sellers?email=APPROVED@example.com", adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Seller](t, w); got.ID != approved.ID {
		t.Fatalf("by email = %+v, want id %d", got, approved.ID)
	}
	expectStatus(t, ts.do(t, http.MethodGet, "/api/sellers?email=nobody@example.com", adminToken(t), nil), http.StatusNotFound)

	expectStatus(t, ts.do(t, http.MethodPatch, fmt.Sprintf("/api/sellers/%d/status", pending.ID), adminToken(t), map[string]string{"status": "approved"}), http.StatusBadRequest)
	expectStatus(t, ts.do(t, http.MethodPatch, "/api/sellers/999/status", adminToken(t), map[string]string{"status": "Rejected"}), http.StatusNotFound)

	w = ts.do(t, http.MethodPost, "/api/seller/medicines", approvedToken, map[string]any{"name": "ORS", "category": "Hydration", "price": 500})
	expectStatus(t, w, http.StatusCreated)

	expectStatus(t, ts.do(t, http.MethodDelete, fmt.Sprintf("/api/sellers/%d", approved.ID), adminToken(t), nil), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodGet, fmt.Sprintf("/api/sellers/%d", approved.ID), adminToken(t), nil), http.StatusNotFound)

	w = ts.do(t, http.MethodGet, "/api/seller-medicines", adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.SellerMedicine](t, w); len(got) != 0 {
		t.Fatalf("deleted seller still has %d medicines", len(got))
	}

	// The deleted seller's token no longer resolves to an account.
	expectStatus(t, ts.do(t, http.MethodGet, "/api/seller/me", approvedToken, nil), http.StatusUnauthorized)
}

func TestAdminCustomers(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/auth/customers/register", "", map[string]string{
		"name": "Meera", "email": "meera@example.com", "phone": "9000000000", "password": "secret1", "confirmPassword": "secret1",
	})
	expectStatus(t, w, http.StatusCreated)
	customer := decode[authResponse[models.Customer]](t, w).User

	w = ts.do(t, http.MethodGet, "/api/customers", adminToken(t), nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.Customer](t, w); len(got) != 1 || got[0].Email != "meera@example.com" {
		t.Fatalf("customers = %+v", got)
	}

	path := fmt.Sprintf("/api/customers/%d", customer.ID)
	expectStatus(t, ts.do(t, http.MethodGet, path, adminToken(t), nil), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodDelete, path, adminToken(t), nil), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodGet, path, adminToken(t), nil), http.StatusNotFound)
	expectStatus(t, ts.do(t, http.MethodDelete, path, adminToken(t), nil), http.StatusNotFound)
}
