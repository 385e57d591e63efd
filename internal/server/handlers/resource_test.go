package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/service/dairy"
	"github.com/Narasimha40-dev/DAIRY/internal/service/export"
)

func newSalesEngine(t *testing.T) (*gin.Engine, *dairy.Collection) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := dairy.NewCollection(nil)
	r := gin.New()
	NewResourceHandler(c.Sales,
		func() any { return c.Summary() },
		map[string]func() aggregate.Series{"milk-type": c.Series},
		nil).Register(r.Group("/milk-sales"))
	return r, c
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

const validSale = `{"name":"Ravi","village":"Kothur","milkType":"Cow","quantity":10,"rate":"40"}`

func TestCreateRecord(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "valid", body: validSale, wantStatus: http.StatusCreated},
		{name: "invalid fields", body: `{"name":"ravi","village":"Kothur","milkType":"Cow","quantity":0,"rate":40}`, wantStatus: http.StatusUnprocessableEntity, wantError: CodeValidation},
		{name: "not an object", body: `[1,2]`, wantStatus: http.StatusBadRequest, wantError: CodeBadRequest},
		{name: "nested value", body: `{"name":{"first":"Ravi"}}`, wantStatus: http.StatusBadRequest, wantError: CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newSalesEngine(t)
			w := do(r, http.MethodPost, "/milk-sales", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantError != "" {
				if got := decode(t, w)["error"]; got != tt.wantError {
					t.Fatalf("expected error %s, got %v", tt.wantError, got)
				}
			}
		})
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	r, c := newSalesEngine(t)
	w := do(r, http.MethodPost, "/milk-sales", `{"name":"Ravi","village":"","milkType":"Camel","quantity":"1","rate":"2"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	fields, ok := decode(t, w)["fields"].(map[string]any)
	if !ok || fields["village"] != "Village is required" || fields["milkType"] == nil {
		t.Fatalf("unexpected fields %v", fields)
	}
	if c.Sales.Len() != 0 {
		t.Fatalf("invalid create was stored")
	}
}

func TestGetAsText(t *testing.T) {
	r, _ := newSalesEngine(t)
	do(r, http.MethodPost, "/milk-sales", validSale)

	w := do(r, http.MethodGet, "/milk-sales/1?format=text", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Name: Ravi") || !strings.Contains(w.Body.String(), "Total: 400") {
		t.Fatalf("unexpected text view %d %q", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/milk-sales/9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing record, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/milk-sales/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	r, c := newSalesEngine(t)
	do(r, http.MethodPost, "/milk-sales", validSale)

	w := do(r, http.MethodDelete, "/milk-sales/1", "")
	if w.Code != http.StatusOK || decode(t, w)["deleted"] != false || c.Sales.Len() != 1 {
		t.Fatalf("unconfirmed delete removed the record: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodDelete, "/milk-sales/1?confirm=true", "")
	if w.Code != http.StatusOK || decode(t, w)["deleted"] != true || c.Sales.Len() != 0 {
		t.Fatalf("confirmed delete failed: %d %s", w.Code, w.Body.String())
	}
}

func TestListSearchAndStats(t *testing.T) {
	r, _ := newSalesEngine(t)
	do(r, http.MethodPost, "/milk-sales", validSale)
	do(r, http.MethodPost, "/milk-sales", `{"name":"Sita","village":"Medak","milkType":"Goat","quantity":2,"rate":50}`)

	if got := decode(t, do(r, http.MethodGet, "/milk-sales?q=medak", ""))["count"]; got != float64(1) {
		t.Fatalf("expected 1 search hit, got %v", got)
	}

	stats := decode(t, do(r, http.MethodGet, "/milk-sales/stats", ""))
	if stats["entries"] != float64(2) || stats["highDemandType"] != "Cow" {
		t.Fatalf("unexpected stats %v", stats)
	}

	chart := decode(t, do(r, http.MethodGet, "/milk-sales/charts/milk-type", ""))
	if labels, _ := chart["labels"].([]any); len(labels) != 4 {
		t.Fatalf("unexpected chart %v", chart)
	}
	if w := do(r, http.MethodGet, "/milk-sales/charts/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown chart, got %d", w.Code)
	}
}

func TestFormFlow(t *testing.T) {
	r, c := newSalesEngine(t)

	w := do(r, http.MethodPatch, "/milk-sales/form", `{"name":"ravi7","village":"kothur","milkType":"Cow","quantity":"3","rate":"20"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("SetFields failed: %d %s", w.Code, w.Body.String())
	}
	draft := decode(t, w)["draft"].(map[string]any)
	if draft["name"] != "Ravi" || draft["village"] != "Kothur" {
		t.Fatalf("expected normalized draft, got %v", draft)
	}

	if w := do(r, http.MethodPatch, "/milk-sales/form", `{"colour":"red"}`); w.Code != http.StatusBadRequest || decode(t, w)["error"] != CodeUnknownField {
		t.Fatalf("expected unknown field error, got %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/milk-sales/form/submit", "")
	if w.Code != http.StatusOK || c.Sales.Len() != 1 {
		t.Fatalf("submit failed: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/milk-sales/form/edit/0", "")
	if w.Code != http.StatusOK || decode(t, w)["editIndex"] != float64(0) {
		t.Fatalf("start edit failed: %d %s", w.Code, w.Body.String())
	}
	do(r, http.MethodPatch, "/milk-sales/form", `{"quantity":""}`)
	if w := do(r, http.MethodPost, "/milk-sales/form/submit", ""); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on invalid edit, got %d", w.Code)
	}
	form := decode(t, do(r, http.MethodGet, "/milk-sales/form", ""))
	if form["editIndex"] != float64(0) || form["errors"] == nil {
		t.Fatalf("form lost edit state: %v", form)
	}

	form = decode(t, do(r, http.MethodPost, "/milk-sales/form/cancel", ""))
	if form["editIndex"] != nil {
		t.Fatalf("cancel kept edit state: %v", form)
	}
	if w := do(r, http.MethodPost, "/milk-sales/form/edit/7", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for out of range edit, got %d", w.Code)
	}
}

func TestExport(t *testing.T) {
	r, _ := newSalesEngine(t)
	do(r, http.MethodPost, "/milk-sales", validSale)

	w := do(r, http.MethodGet, "/milk-sales/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export failed: %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != export.XLSXContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "milk_sale.xlsx") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
}

func TestVerifyPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	profiles := dairy.NewSettings(bcrypt.MinCost, nil)
	_, err := profiles.Create(map[string]string{
		"username": "Admin1", "email": "admin@dairy.in", "password": "Secret123",
		"phone": "9876543210", "address": "Main Road", "organization": "Kothur Dairy",
		"language": "English", "theme": "Dark", "notifications": "Enabled",
	})
	if err != nil {
		t.Fatalf("Create profile unexpected error: %v", err)
	}

	r := gin.New()
	r.POST("/settings/:id/verify", NewSettingsHandler(profiles, nil).Verify)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantValid  any
	}{
		{name: "match", path: "/settings/1/verify", body: `{"password":"Secret123"}`, wantStatus: http.StatusOK, wantValid: true},
		{name: "mismatch", path: "/settings/1/verify", body: `{"password":"Other123"}`, wantStatus: http.StatusOK, wantValid: false},
		{name: "missing password", path: "/settings/1/verify", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown profile", path: "/settings/5/verify", body: `{"password":"Secret123"}`, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantValid != nil && decode(t, w)["valid"] != tt.wantValid {
				t.Fatalf("expected valid=%v, got %s", tt.wantValid, w.Body.String())
			}
		})
	}
}
