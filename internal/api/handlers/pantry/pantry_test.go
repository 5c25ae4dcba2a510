package pantry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beli-at-home/internal/core/ingredient"
	corepantry "beli-at-home/internal/core/pantry"
	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func newRouter(t *testing.T) (*gin.Engine, *corepantry.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := corepantry.NewStore(persistence.NewMemoryStore(), ingredient.SubstringMatcher{})
	h := NewHandler(store)

	r := gin.New()
	g := r.Group("/api/v1/pantry")
	g.GET("", h.List)
	g.POST("/items", h.AddItem)
	g.DELETE("/items/:name", h.RemoveItem)
	g.PATCH("/items/:name", h.UpdateItem)
	g.DELETE("", h.Clear)
	g.GET("/suggestions", h.Suggestions)
	g.GET("/essentials", h.ListEssentials)
	g.POST("/essentials", h.AddEssential)
	g.DELETE("/essentials/:name", h.RemoveEssential)

	return r, store
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemNormalizes(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/pantry/items", `{"name":"bhindi"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var item common.PantryItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.DisplayName != "Okra (Bhindi)" || item.EnglishName != "Okra" {
		t.Errorf("item = %+v", item)
	}
	if item.Quantity != 1 || item.Unit != "units" {
		t.Errorf("defaults = (%g, %q)", item.Quantity, item.Unit)
	}
}

func TestUpdateItemQuantityFloor(t *testing.T) {
	r, store := newRouter(t)
	item, _ := store.Add(context.Background(), "garlic", 1, "units")

	w := do(t, r, http.MethodPatch, "/api/v1/pantry/items/"+item.Name, `{"quantity":0.1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPatch, "/api/v1/pantry/items/"+item.Name, `{"quantity":0.5,"unit":"heads"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := store.Items()[0]
	if got.Quantity != 0.5 || got.Unit != "heads" {
		t.Errorf("item = %+v", got)
	}
}

func TestRemoveItemNotFound(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodDelete, "/api/v1/pantry/items/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), common.ErrCodeNotFound) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSuggestions(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/pantry/suggestions?q=bhi&limit=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Suggestions) == 0 || resp.Suggestions[0] != "okra (bhindi)" {
		t.Errorf("suggestions = %v", resp.Suggestions)
	}

	w = do(t, r, http.MethodGet, "/api/v1/pantry/suggestions?q=x&limit=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", w.Code)
	}
}

func TestEssentialsLifecycle(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/pantry/essentials", "")
	var resp struct {
		Essentials []string `json:"essentials"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Essentials) != 13 {
		t.Fatalf("default essentials = %d, want 13", len(resp.Essentials))
	}

	w = do(t, r, http.MethodPost, "/api/v1/pantry/essentials", `{"name":"ghee"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add essential status = %d", w.Code)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/pantry/essentials/Salt", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("remove essential status = %d", w.Code)
	}
}
