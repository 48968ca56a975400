package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/config"
	"github.com/mmynk/lunchledger/internal/router"
	"github.com/mmynk/lunchledger/internal/storage/sqlite"
)

// testAPI wraps a router over a temp-file SQLite store.
type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "lunchledger-api-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	return &testAPI{t: t, engine: router.SetupRouter(cfg, store)}
}

// do sends a request with an optional JSON body and returns the recorder.
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorder body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

// createUser creates a user through the API and returns its ID.
func (a *testAPI) createUser(name, email string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/users", gin.H{"name": name, "email": email})
	if w.Code != http.StatusCreated {
		a.t.Fatalf("create user %s: status %d body %s", name, w.Code, w.Body.String())
	}
	var user struct {
		ID string `json:"id"`
	}
	decode(a.t, w, &user)
	return user.ID
}

// createMenuItem creates a restaurant and a menu item, returning both IDs.
func (a *testAPI) createMenuItem(name string, price float64) (itemID, restaurantID string) {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/restaurants", gin.H{"name": name + " Place"})
	if w.Code != http.StatusCreated {
		a.t.Fatalf("create restaurant: status %d body %s", w.Code, w.Body.String())
	}
	var restaurant struct {
		ID string `json:"id"`
	}
	decode(a.t, w, &restaurant)

	w = a.do(http.MethodPost, "/api/menu-items", gin.H{
		"name": name, "price": price, "category": "food", "restaurantId": restaurant.ID,
	})
	if w.Code != http.StatusCreated {
		a.t.Fatalf("create menu item: status %d body %s", w.Code, w.Body.String())
	}
	var item struct {
		ID string `json:"id"`
	}
	decode(a.t, w, &item)
	return item.ID, restaurant.ID
}

func TestUserEndpoints(t *testing.T) {
	api := newTestAPI(t)

	t.Run("create and list sorted by name", func(t *testing.T) {
		api.createUser("Zed", "zed@example.com")
		api.createUser("Amy", "amy@example.com")

		w := api.do(http.MethodGet, "/api/users", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var users []struct {
			Name string `json:"name"`
		}
		decode(t, w, &users)
		if len(users) != 2 || users[0].Name != "Amy" || users[1].Name != "Zed" {
			t.Errorf("users = %+v, want Amy then Zed", users)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/users", gin.H{"name": "NoEmail"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		api.createUser("First", "dup@example.com")
		w := api.do(http.MethodPost, "/api/users", gin.H{"name": "Second", "email": "dup@example.com"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		if resp.Error != "Email already exists" {
			t.Errorf("error = %q", resp.Error)
		}
	})

	t.Run("update unknown user is 404", func(t *testing.T) {
		w := api.do(http.MethodPut, "/api/users", gin.H{
			"id": "nonexistent", "name": "X", "email": "x@example.com",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("delete requires id", func(t *testing.T) {
		w := api.do(http.MethodDelete, "/api/users", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("delete succeeds", func(t *testing.T) {
		id := api.createUser("Gone", "gone@example.com")
		w := api.do(http.MethodDelete, "/api/users?id="+id, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success bool `json:"success"`
		}
		decode(t, w, &resp)
		if !resp.Success {
			t.Error("expected success true")
		}
	})
}

func TestMenuItemEndpoints(t *testing.T) {
	api := newTestAPI(t)

	itemID, restaurantID := api.createMenuItem("Ramen", 12.50)

	t.Run("list returns items and restaurants", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/menu-items", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			MenuItems   []json.RawMessage `json:"menuItems"`
			Restaurants []json.RawMessage `json:"restaurants"`
		}
		decode(t, w, &resp)
		if len(resp.MenuItems) != 1 || len(resp.Restaurants) != 1 {
			t.Errorf("got %d items, %d restaurants; want 1 and 1", len(resp.MenuItems), len(resp.Restaurants))
		}
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/menu-items", gin.H{
			"name": "Mystery", "price": 1.0, "category": "dessert", "restaurantId": restaurantID,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("restaurant with items cannot be deleted", func(t *testing.T) {
		w := api.do(http.MethodDelete, "/api/restaurants?id="+restaurantID, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		if resp.Error != "Failed to delete restaurant. Make sure it has no menu items." {
			t.Errorf("error = %q", resp.Error)
		}
	})

	t.Run("item delete then restaurant delete succeeds", func(t *testing.T) {
		if w := api.do(http.MethodDelete, "/api/menu-items?id="+itemID, nil); w.Code != http.StatusOK {
			t.Fatalf("delete item: status = %d", w.Code)
		}
		if w := api.do(http.MethodDelete, "/api/restaurants?id="+restaurantID, nil); w.Code != http.StatusOK {
			t.Fatalf("delete restaurant: status = %d", w.Code)
		}
	})
}

func TestDebtEndpoints(t *testing.T) {
	api := newTestAPI(t)

	alice := api.createUser("Alice", "alice@example.com")
	bob := api.createUser("Bob", "bob@example.com")
	itemID, _ := api.createMenuItem("Curry", 9.00)

	createDebt := func(debtor, creditor string, price float64) {
		t.Helper()
		w := api.do(http.MethodPost, "/api/debts", gin.H{
			"debtorId": debtor, "creditorId": creditor, "menuItemId": itemID,
			"quantity": 1, "customPrice": price,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create debt: status %d body %s", w.Code, w.Body.String())
		}
	}

	t.Run("create resolves total price", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/debts", gin.H{
			"debtorId": alice, "creditorId": bob, "menuItemId": itemID, "quantity": 3,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		var debt struct {
			TotalPrice float64 `json:"totalPrice"`
			Debtor     *struct {
				Name string `json:"name"`
			} `json:"debtor"`
		}
		decode(t, w, &debt)
		if debt.TotalPrice != 27.00 {
			t.Errorf("totalPrice = %v, want 27.00", debt.TotalPrice)
		}
		if debt.Debtor == nil || debt.Debtor.Name != "Alice" {
			t.Errorf("debtor not inlined: %+v", debt.Debtor)
		}
	})

	t.Run("unknown menu item is 404", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/debts", gin.H{
			"debtorId": alice, "creditorId": bob, "menuItemId": "nonexistent", "quantity": 1,
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("self-debt is rejected", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/debts", gin.H{
			"debtorId": alice, "creditorId": alice, "menuItemId": itemID, "quantity": 1,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("PUT and GET summary agree and pairs are not netted", func(t *testing.T) {
		createDebt(alice, bob, 100)
		createDebt(alice, bob, 50)
		createDebt(bob, alice, 30)

		type summary struct {
			Debtor struct {
				ID string `json:"id"`
			} `json:"debtor"`
			TotalDebt float64 `json:"totalDebt"`
		}

		put := api.do(http.MethodPut, "/api/debts", nil)
		if put.Code != http.StatusOK {
			t.Fatalf("PUT status = %d", put.Code)
		}
		get := api.do(http.MethodGet, "/api/debts/summary", nil)
		if get.Code != http.StatusOK {
			t.Fatalf("GET status = %d", get.Code)
		}
		if put.Body.String() != get.Body.String() {
			t.Error("PUT /api/debts and GET /api/debts/summary returned different payloads")
		}

		var rows []summary
		decode(t, put, &rows)
		if len(rows) != 2 {
			t.Fatalf("got %d summary rows, want 2", len(rows))
		}
		totals := map[string]float64{}
		for _, r := range rows {
			totals[r.Debtor.ID] = r.TotalDebt
		}
		if totals[alice] != 177.00 { // 100 + 50 + the 3x9 debt from the first subtest
			t.Errorf("Alice->Bob total = %v, want 177.00", totals[alice])
		}
		if totals[bob] != 30.00 {
			t.Errorf("Bob->Alice total = %v, want 30.00", totals[bob])
		}
	})

	t.Run("GET debts is idempotent", func(t *testing.T) {
		first := api.do(http.MethodGet, "/api/debts", nil)
		second := api.do(http.MethodGet, "/api/debts", nil)
		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Fatalf("statuses = %d, %d", first.Code, second.Code)
		}
		if first.Body.String() != second.Body.String() {
			t.Error("two GETs with no writes returned different bodies")
		}
	})

	t.Run("stats endpoint reports totals", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/stats", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var stats struct {
			UserStats []struct {
				UserID     string  `json:"userId"`
				TotalOwed  float64 `json:"totalOwed"`
				TotalOwing float64 `json:"totalOwing"`
			} `json:"userStats"`
			MonthlyTotal float64 `json:"monthlyTotal"`
			TopDebtor    *struct {
				UserID string `json:"userId"`
			} `json:"topDebtor"`
		}
		decode(t, w, &stats)
		if len(stats.UserStats) != 2 {
			t.Fatalf("got %d user stats, want 2", len(stats.UserStats))
		}
		if stats.MonthlyTotal != 207.00 { // all debts created just now
			t.Errorf("monthlyTotal = %v, want 207.00", stats.MonthlyTotal)
		}
		if stats.TopDebtor == nil || stats.TopDebtor.UserID != alice {
			t.Errorf("topDebtor = %+v, want Alice", stats.TopDebtor)
		}
	})

	t.Run("delete debt", func(t *testing.T) {
		var debts []struct {
			ID string `json:"id"`
		}
		w := api.do(http.MethodGet, "/api/debts", nil)
		decode(t, w, &debts)
		if len(debts) == 0 {
			t.Fatal("expected debts to delete")
		}

		w = api.do(http.MethodDelete, fmt.Sprintf("/api/debts?id=%s", debts[0].ID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			Message string `json:"message"`
		}
		decode(t, w, &resp)
		if resp.Message != "Debt deleted successfully" {
			t.Errorf("message = %q", resp.Message)
		}
	})

	t.Run("export returns a spreadsheet", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/export/xlsx", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			t.Errorf("content type = %q", ct)
		}
		if w.Body.Len() == 0 {
			t.Error("empty export body")
		}
	})
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
