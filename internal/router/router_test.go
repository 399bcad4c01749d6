package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinos/internal/auth"
	"cinos/internal/order"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authHandler := auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository()))
	orderHandler := order.NewHandler(order.NewService(order.NewInMemoryRepository()), nil)

	return New(authHandler, orderHandler, nil)
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestOrderMutationRequiresAuth(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestReceiptIsPubliclyReadable(t *testing.T) {
	r := setupTestRouter()

	// Unknown order rather than unauthorized: the read side is open.
	req := httptest.NewRequest(http.MethodGet, "/orders/no-such-order/receipt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestArchiveRequiresAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	token, err := auth.GenerateToken("test-user-id", "barista@example.com", auth.RoleBarista)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders/some-order/archive", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

// TestFullOrderFlow walks the whole counter flow: register, login,
// ring up two drinks, read back totals and receipt.
func TestFullOrderFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	register := map[string]string{
		"name":     "Test Barista",
		"email":    "barista@example.com",
		"password": "Password@123",
	}
	body, _ := json.Marshal(register)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d", w.Code)
	}

	login := map[string]string{"email": register["email"], "password": register["password"]}
	body, _ = json.Marshal(login)
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d", w.Code)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: expected status 201, got %d", w.Code)
	}

	var created struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}

	drinks := []map[string]any{
		{"base": "latte", "flavors": []string{"vanilla"}, "size": "large"},
		{"base": "espresso", "size": "small"},
	}
	for _, d := range drinks {
		body, _ = json.Marshal(d)
		req = httptest.NewRequest(http.MethodPost, "/orders/"+created.OrderID+"/drinks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+loginResp.Token)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("add drink: expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/orders/"+created.OrderID+"/receipt", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("receipt: expected status 200, got %d", w.Code)
	}

	var receipt order.Receipt
	if err := json.Unmarshal(w.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("failed to decode receipt: %v", err)
	}
	if len(receipt.Drinks) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(receipt.Drinks))
	}
	if receipt.Subtotal != 3.70 || receipt.Tax != 0.27 || receipt.Total != 3.97 {
		t.Errorf("unexpected totals: %+v", receipt)
	}
}
