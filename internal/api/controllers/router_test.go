package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/middleware"
	"yatra/pkg/utils"
)

const testSecret = "test-secret"

// buildTestRouter wires the full stack against a throwaway sqlite file,
// mirroring the route layout of cmd/app.
func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := infra.SeedAttractions(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	attractionRepo := repositories.NewAttractionRepository(db)
	tripRepo := repositories.NewTripRepository(db)
	packingRepo := repositories.NewPackingRepository(db)

	accountService := services.NewAccountService(accountRepo, []byte(testSecret))
	catalogService := services.NewCatalogService(attractionRepo)
	tripService := services.NewTripService(tripRepo, attractionRepo, packingRepo)
	packingService := services.NewPackingService(packingRepo, tripRepo)
	exportService := services.NewExportService(tripService)

	accountController := NewAccountController(accountService)
	catalogController := NewCatalogController(catalogService)
	tripController := NewTripController(tripService)
	packingController := NewPackingController(packingService)
	exportController := NewExportController(exportService)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	r.POST("/accounts/register", accountController.Register)
	r.POST("/accounts/login", accountController.Login)
	r.GET("/catalog/cities", catalogController.ListCities)
	r.GET("/catalog/attractions/:city", catalogController.ListAttractions)

	auth := middleware.JWTAuthMiddleware([]byte(testSecret))
	trips := r.Group("/trips", auth)
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.GET("/:tripId/export", exportController.DownloadItinerary)
	trips.POST("/:tripId/packing", packingController.AddItem)

	packing := r.Group("/packing", auth)
	packing.POST("/:itemId/toggle", packingController.ToggleItem)
	packing.DELETE("/:itemId", packingController.DeleteItem)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope utils.APIResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, _ := envelope.Data.(map[string]interface{})
	return data
}

func registerAndToken(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	resp := doJSON(t, r, http.MethodPost, "/accounts/register", "", map[string]string{
		"username": username,
		"password": "hunter22",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	token, _ := decodeData(t, resp)["token"].(string)
	if token == "" {
		t.Fatal("register returned no token")
	}
	return token
}

func TestTripLifecycleOverHTTP(t *testing.T) {
	r := buildTestRouter(t)
	token := registerAndToken(t, r, "asha")

	// Unauthenticated trip access is rejected outright.
	if resp := doJSON(t, r, http.MethodGet, "/trips", "", nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.Code)
	}

	createResp := doJSON(t, r, http.MethodPost, "/trips", token, map[string]interface{}{
		"name":       "Weekend in Mumbai",
		"city":       "Mumbai",
		"start_date": "2026-09-01",
		"days":       2,
		"interests":  []string{"temple"},
		"budget":     10000,
	})
	if createResp.Code != http.StatusOK {
		t.Fatalf("create trip: expected 200, got %d: %s", createResp.Code, createResp.Body.String())
	}
	data := decodeData(t, createResp)
	trip, _ := data["trip"].(map[string]interface{})
	tripID, _ := trip["id"].(string)
	if tripID == "" {
		t.Fatal("create trip returned no id")
	}
	if groups, _ := data["day_groups"].([]interface{}); len(groups) == 0 {
		t.Fatal("create trip returned no itinerary")
	}

	if resp := doJSON(t, r, http.MethodGet, "/trips/"+tripID, token, nil); resp.Code != http.StatusOK {
		t.Fatalf("get trip: expected 200, got %d", resp.Code)
	}

	exportResp := doJSON(t, r, http.MethodGet, "/trips/"+tripID+"/export", token, nil)
	if exportResp.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", exportResp.Code)
	}
	if ct := exportResp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("export content type: %s", ct)
	}
	if !strings.HasPrefix(exportResp.Body.String(), "%PDF") {
		t.Error("export body is not a PDF document")
	}

	deleteResp := doJSON(t, r, http.MethodDelete, "/trips/"+tripID, token, nil)
	if deleteResp.Code != http.StatusOK {
		t.Fatalf("delete trip: expected 200, got %d", deleteResp.Code)
	}
	if resp := doJSON(t, r, http.MethodGet, "/trips/"+tripID, token, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestTripValidationOverHTTP(t *testing.T) {
	r := buildTestRouter(t)
	token := registerAndToken(t, r, "asha")

	tests := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{
			name: "missing day count",
			body: map[string]interface{}{"name": "T", "city": "Mumbai", "start_date": "2026-09-01", "budget": 100},
			code: http.StatusBadRequest,
		},
		{
			name: "zero days",
			body: map[string]interface{}{"name": "T", "city": "Mumbai", "start_date": "2026-09-01", "days": 0},
			code: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			body: map[string]interface{}{"name": "T", "city": "Mumbai", "start_date": "01-09-2026", "days": 2},
			code: http.StatusBadRequest,
		},
		{
			name: "negative budget",
			body: map[string]interface{}{"name": "T", "city": "Mumbai", "start_date": "2026-09-01", "days": 2, "budget": -5},
			code: http.StatusBadRequest,
		},
		{
			name: "city without catalog entries",
			body: map[string]interface{}{"name": "T", "city": "Atlantis", "start_date": "2026-09-01", "days": 2},
			code: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, r, http.MethodPost, "/trips", token, tt.body)
			if resp.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestCrossUserAccessOverHTTP(t *testing.T) {
	r := buildTestRouter(t)
	ownerToken := registerAndToken(t, r, "asha")
	intruderToken := registerAndToken(t, r, "ravi")

	createResp := doJSON(t, r, http.MethodPost, "/trips", ownerToken, map[string]interface{}{
		"name":       "Pune getaway",
		"city":       "Pune",
		"start_date": "2026-10-01",
		"days":       3,
	})
	if createResp.Code != http.StatusOK {
		t.Fatalf("create trip: %d", createResp.Code)
	}
	trip, _ := decodeData(t, createResp)["trip"].(map[string]interface{})
	tripID, _ := trip["id"].(string)

	if resp := doJSON(t, r, http.MethodGet, "/trips/"+tripID, intruderToken, nil); resp.Code != http.StatusNotFound {
		t.Errorf("foreign trip read: expected 404, got %d", resp.Code)
	}
	if resp := doJSON(t, r, http.MethodDelete, "/trips/"+tripID, intruderToken, nil); resp.Code != http.StatusNotFound {
		t.Errorf("foreign trip delete: expected 404, got %d", resp.Code)
	}
}

func TestPackingOverHTTP(t *testing.T) {
	r := buildTestRouter(t)
	token := registerAndToken(t, r, "asha")

	createResp := doJSON(t, r, http.MethodPost, "/trips", token, map[string]interface{}{
		"name":       "Nashik darshan",
		"city":       "Nashik",
		"start_date": "2026-11-01",
		"days":       1,
	})
	trip, _ := decodeData(t, createResp)["trip"].(map[string]interface{})
	tripID, _ := trip["id"].(string)

	addResp := doJSON(t, r, http.MethodPost, "/trips/"+tripID+"/packing", token, map[string]string{"item_name": "Sunscreen"})
	if addResp.Code != http.StatusOK {
		t.Fatalf("add packing item: %d", addResp.Code)
	}
	itemID, _ := decodeData(t, addResp)["id"].(string)
	if itemID == "" {
		t.Fatal("packing item id missing")
	}

	toggleResp := doJSON(t, r, http.MethodPost, "/packing/"+itemID+"/toggle", token, nil)
	if toggleResp.Code != http.StatusOK {
		t.Fatalf("toggle: %d", toggleResp.Code)
	}
	if packed, _ := decodeData(t, toggleResp)["is_packed"].(bool); !packed {
		t.Error("first toggle should pack the item")
	}

	if resp := doJSON(t, r, http.MethodDelete, "/packing/"+itemID, token, nil); resp.Code != http.StatusOK {
		t.Fatalf("delete packing item: %d", resp.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := buildTestRouter(t)

	citiesResp := doJSON(t, r, http.MethodGet, "/catalog/cities", "", nil)
	if citiesResp.Code != http.StatusOK {
		t.Fatalf("cities: %d", citiesResp.Code)
	}
	var envelope utils.APIResponse
	if err := json.Unmarshal(citiesResp.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	cities, _ := envelope.Data.([]interface{})
	if len(cities) != 3 {
		t.Errorf("expected the 3 seeded cities, got %v", envelope.Data)
	}

	attractionsResp := doJSON(t, r, http.MethodGet, "/catalog/attractions/Mumbai?category=temple", "", nil)
	if attractionsResp.Code != http.StatusOK {
		t.Fatalf("attractions: %d", attractionsResp.Code)
	}
	if err := json.Unmarshal(attractionsResp.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	attractions, _ := envelope.Data.([]interface{})
	if len(attractions) != 1 {
		t.Errorf("expected exactly one Mumbai temple, got %d", len(attractions))
	}
}
