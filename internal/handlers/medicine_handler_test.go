package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/samparc/medical-api/internal/models"
)

func addMedicine(t *testing.T, ts *testServer, body map[string]any) models.Medicine {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/medicines", adminToken(t), body)
	expectStatus(t, w, http.StatusCreated)
	return decode[models.Medicine](t, w)
}

func medicineNames(ms []models.Medicine) []string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Name)
	}
	return names
}

func TestMedicineCatalog(t *testing.T) {
	ts := newTestServer(t)

	para := addMedicine(t, ts, map[string]any{"name": "Paracetamol 500mg", "description": "Fever and pain relief", "category": "Tablets", "price": 3000})
	if !para.Available || para.ID == 0 {
		t.Fatalf("new medicine = %+v, want available with an id", para)
	}
	addMedicine(t, ts, map[string]any{"name": "Cough Syrup", "description": "Dry cough", "category": "Syrups", "price": 9500})
	addMedicine(t, ts, map[string]any{"name": "Vitamin C", "description": "Immunity", "category": "Tablets", "price": 1500, "available": false})

	tests := []struct {
		path string
		want []string
	}{
		{path: "/medicines", want: []string{"Paracetamol 500mg", "Cough Syrup", "Vitamin C"}},
		{path: "/medicines?sort=price", want: []string{"Vitamin C", "Paracetamol 500mg", "Cough Syrup"}},
		{path: "/medicines?available=true", want: []string{"Paracetamol 500mg", "Cough Syrup"}},
		{path: "/medicines?available=false", want: []string{"Vitamin C"}},
		{path: "/medicines?category=Tablets&sort=price", want: []string{"Vitamin C", "Paracetamol 500mg"}},
		{path: "/medicines/available", want: []string{"Paracetamol 500mg", "Cough Syrup"}},
		{path: "/medicines/search?q=COUGH", want: []string{"Cough Syrup"}},
		{path: "/medicines/search?q=tablets", want: []string{"Paracetamol 500mg", "Vitamin C"}},
		{path: "/medicines/search?q=", want: []string{"Paracetamol 500mg", "Cough Syrup", "Vitamin C"}},
		{path: "/medicines/category/Syrups", want: []string{"Cough Syrup"}},
		{path: "/medicines/category/Ointments", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, tt.path, "", nil)
			expectStatus(t, w, http.StatusOK)
			got := medicineNames(decode[[]models.Medicine](t, w))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Fatalf("names = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("bad query", func(t *testing.T) {
		expectStatus(t, ts.do(t, http.MethodGet, "/medicines?sort=name", "", nil), http.StatusBadRequest)
		expectStatus(t, ts.do(t, http.MethodGet, "/medicines?available=maybe", "", nil), http.StatusBadRequest)
	})

	t.Run("get", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, fmt.Sprintf("/medicines/%d", para.ID), "", nil)
		expectStatus(t, w, http.StatusOK)
		if got := decode[models.Medicine](t, w); got != para {
			t.Fatalf("get = %+v, want %+v", got, para)
		}
		expectStatus(t, ts.do(t, http.MethodGet, "/medicines/999", "", nil), http.StatusNotFound)
		expectStatus(t, ts.do(t, http.MethodGet, "/medicines/abc", "", nil), http.StatusBadRequest)
	})
}

func TestMedicineAdminWrites(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]any{"name": "Ibuprofen", "category": "Tablets", "price": 4000}

	expectStatus(t, ts.do(t, http.MethodPost, "/api/medicines", "", body), http.StatusUnauthorized)

	invalid := []map[string]any{
		{"name": "", "category": "Tablets", "price": 10},
		{"name": "X", "category": "  ", "price": 10},
		{"name": "X", "category": "Tablets", "price": -1},
	}
	for _, b := range invalid {
		expectStatus(t, ts.do(t, http.MethodPost, "/api/medicines", adminToken(t), b), http.StatusBadRequest)
	}

	m := addMedicine(t, ts, body)
	path := fmt.Sprintf("/api/medicines/%d", m.ID)

	w := ts.do(t, http.MethodPut, path, adminToken(t), map[string]any{"name": "Ibuprofen 400", "category": "Tablets", "price": 0, "available": false})
	expectStatus(t, w, http.StatusOK)
	edited := decode[models.Medicine](t, w)
	if edited.Name != "Ibuprofen 400" || edited.Price != 0 || edited.Available {
		t.Fatalf("edited = %+v", edited)
	}

	// Available keeps its value when the form omits it.
	w = ts.do(t, http.MethodPut, path, adminToken(t), map[string]any{"name": "Ibuprofen 400", "category": "Tablets", "price": 4200})
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Medicine](t, w); got.Available || got.Price != 4200 {
		t.Fatalf("edited = %+v", got)
	}

	expectStatus(t, ts.do(t, http.MethodPut, "/api/medicines/999", adminToken(t), body), http.StatusNotFound)
	expectStatus(t, ts.do(t, http.MethodDelete, path, adminToken(t), nil), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodDelete, path, adminToken(t), nil), http.StatusNotFound)
	expectStatus(t, ts.do(t, http.MethodGet, fmt.Sprintf("/medicines/%d", m.ID), "", nil), http.StatusNotFound)
}
