package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/recipe-service/internal/adapters/idgen"
	"github.com/jsamuelsen/recipe-service/internal/adapters/seeds"
	"github.com/jsamuelsen/recipe-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/recipe-service/internal/app"
	"github.com/jsamuelsen/recipe-service/internal/mocks"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRecipeRouter serves the recipe routes over a catalog seeded with the sample recipes.
func newRecipeRouter(t *testing.T) (*gin.Engine, *app.CatalogService) {
	t.Helper()

	service := app.NewCatalogService(app.CatalogServiceConfig{
		Store:  memory.NewCatalog(),
		IDs:    idgen.NewSequence("recipe-"),
		Logger: discardLogger(),
	})
	require.NoError(t, service.BootstrapFrom(context.Background(), seeds.Sample{}))

	return routerFor(service, 50), service
}

func routerFor(service *app.CatalogService, maxPageSize int) *gin.Engine {
	router := gin.New()
	NewRecipeHandler(service, maxPageSize).RegisterRecipeRoutes(router.Group("/api/v1"))

	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) dto.RecipePageResponse {
	t.Helper()

	var page dto.RecipePageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	return page
}

func ids(items []dto.RecipeResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}

	return out
}

func TestNewRecipeHandler_MaxPageSizeNotBelowDefault(t *testing.T) {
	_, service := newRecipeRouter(t)

	handler := NewRecipeHandler(service, 1)

	assert.Equal(t, service.PageSize(), handler.maxPageSize)
}

func TestRecipeHandler_ListRecipes(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantIDs    []string
		wantPage   int
		wantTotal  int
		wantPages  int
		wantParams dto.QueryParamsResponse
	}{
		{
			name:       "defaults to trending",
			query:      "",
			wantIDs:    []string{"3", "1", "4", "2", "5"},
			wantPage:   1,
			wantTotal:  5,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "All", Sort: "trending"},
		},
		{
			name:       "quick sorted by time",
			query:      "?category=Quick&sort=time",
			wantIDs:    []string{"2", "5"},
			wantPage:   1,
			wantTotal:  2,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "Quick", Sort: "time"},
		},
		{
			name:       "vegan",
			query:      "?category=vegan",
			wantIDs:    []string{"4"},
			wantPage:   1,
			wantTotal:  1,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "Vegan", Sort: "trending"},
		},
		{
			name:       "category and search",
			query:      "?category=Dessert&search=CHEESE",
			wantIDs:    []string{"5"},
			wantPage:   1,
			wantTotal:  1,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "Dessert", Search: "CHEESE", Sort: "trending"},
		},
		{
			name:       "no match returns one empty page",
			query:      "?search=zzzz",
			wantIDs:    []string{},
			wantPage:   1,
			wantTotal:  0,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "All", Search: "zzzz", Sort: "trending"},
		},
		{
			name:       "second page by calories",
			query:      "?sort=calories&page=2&page_size=2",
			wantIDs:    []string{"4", "5"},
			wantPage:   2,
			wantTotal:  5,
			wantPages:  3,
			wantParams: dto.QueryParamsResponse{Category: "All", Sort: "calories"},
		},
		{
			name:       "page past the end is empty",
			query:      "?page=9",
			wantIDs:    []string{},
			wantPage:   9,
			wantTotal:  5,
			wantPages:  1,
			wantParams: dto.QueryParamsResponse{Category: "All", Sort: "trending"},
		},
	}

	router, _ := newRecipeRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/v1/recipes"+tt.query, "")

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			page := decodePage(t, w)
			assert.Equal(t, tt.wantIDs, ids(page.Items))
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantTotal, page.TotalItems)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantParams, page.Params)
		})
	}
}

func TestRecipeHandler_ListRecipes_EmptyItemsEncodeAsArray(t *testing.T) {
	router, _ := newRecipeRouter(t)

	w := serve(router, http.MethodGet, "/api/v1/recipes?category=Drinks", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
	assert.Contains(t, w.Body.String(), `"totalPages":1`)
}

func TestRecipeHandler_ListRecipes_InvalidQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"unknown sort", "?sort=newest", "sort"},
		{"negative page", "?page=-1", "page"},
		{"negative page size", "?page_size=-3", "page_size"},
		{"page size above maximum", "?page_size=51", "page_size"},
		{"non-numeric page", "?page=two", ""},
	}

	router, _ := newRecipeRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/v1/recipes"+tt.query, "")

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)

			if tt.wantField != "" {
				assert.Contains(t, resp.Error.Details, tt.wantField)
			}
		})
	}
}

func TestRecipeHandler_ListRecipes_StoreFailure(t *testing.T) {
	store := mocks.NewMockCatalogStore(t)
	store.EXPECT().Snapshot(mock.Anything).Return(nil, errors.New("disk on fire"))

	service := app.NewCatalogService(app.CatalogServiceConfig{
		Store:  store,
		IDs:    idgen.NewSequence("recipe-"),
		Logger: discardLogger(),
	})

	w := serve(routerFor(service, 50), http.MethodGet, "/api/v1/recipes", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeInternal)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}

func TestRecipeHandler_GetRecipe(t *testing.T) {
	router, _ := newRecipeRouter(t)

	w := serve(router, http.MethodGet, "/api/v1/recipes/3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var recipe dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Smoky Shakshuka", recipe.Title)
	assert.Equal(t, "Breakfast", recipe.Category)
	assert.NotEmpty(t, recipe.Steps)

	w = serve(router, http.MethodGet, "/api/v1/recipes/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeNotFound)
}

func TestRecipeHandler_CreateRecipe(t *testing.T) {
	router, _ := newRecipeRouter(t)

	body := `{
		"title": "  Chili Lime Corn ",
		"category": "Street Food",
		"time": 12,
		"difficulty": "Easy",
		"calories": "abc",
		"rating": "4.4",
		"tags": "Vegan, , Quick",
		"ingredients": "2 ears corn\n\n1 lime",
		"steps": "Grill\r\nSqueeze"
	}`

	w := serve(router, http.MethodPost, "/api/v1/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "recipe-1", created.ID)
	assert.Equal(t, "Chili Lime Corn", created.Title)
	assert.Equal(t, 12, created.Time)
	assert.Equal(t, 0, created.Calories)
	assert.InDelta(t, 4.4, created.Rating, 1e-9)
	assert.Equal(t, []string{"Vegan", "Quick"}, created.Tags)
	assert.Equal(t, []string{"2 ears corn", "1 lime"}, created.Ingredients)
	assert.Equal(t, []string{"Grill", "Squeeze"}, created.Steps)
	assert.Equal(t, "/api/v1/recipes/recipe-1", w.Header().Get("Location"))

	// The new recipe is first in catalog order and visible to the next query.
	w = serve(router, http.MethodGet, "/api/v1/recipes?category=Vegan&sort=calories", "")
	page := decodePage(t, w)
	assert.Equal(t, []string{"recipe-1", "4"}, ids(page.Items))
}

func TestRecipeHandler_CreateRecipe_EmptyObjectUsesDefaults(t *testing.T) {
	router, _ := newRecipeRouter(t)

	w := serve(router, http.MethodPost, "/api/v1/recipes", `{}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Untitled Recipe", created.Title)
	assert.Equal(t, "Dinner", created.Category)
	assert.Equal(t, "Easy", created.Difficulty)
	assert.Equal(t, []string{}, created.Tags)
}

func TestRecipeHandler_CreateRecipe_OutOfRangeNumbersBecomeZero(t *testing.T) {
	router, _ := newRecipeRouter(t)

	w := serve(router, http.MethodPost, "/api/v1/recipes", `{"time": 1e400, "calories": -1e400, "rating": 1e999}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Zero(t, created.Time)
	assert.Zero(t, created.Calories)
	assert.Zero(t, created.Rating)
}

func TestRecipeHandler_PastDeadlineIsTimeout(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
	}{
		{"list", http.MethodGet, ""},
		{"create", http.MethodPost, `{"title": "Late Soup"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRecipeRouter(t)
			before := service.Len(context.Background())

			ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
			defer cancel()

			req := httptest.NewRequestWithContext(ctx, tt.method, "/api/v1/recipes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusGatewayTimeout, w.Code)
			assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
			assert.Equal(t, before, service.Len(context.Background()))
		})
	}
}

func TestRecipeHandler_CreateRecipe_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `title=soup`},
		{"truncated", `{"title": "Soup"`},
		{"array field", `{"tags": ["a", "b"]}`},
		{"object field", `{"time": {"minutes": 5}}`},
	}

	router, _ := newRecipeRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodPost, "/api/v1/recipes", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), dto.ErrorCodeBadRequest)
		})
	}
}

func TestRecipeHandler_ListCategories(t *testing.T) {
	router, _ := newRecipeRouter(t)

	w := serve(router, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CatalogOptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"All", "Breakfast", "Lunch", "Dinner", "Dessert", "Street Food", "Drinks", "Vegan", "Quick"}, resp.Selectors)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Street Food", "Drinks"}, resp.Categories)
	assert.Equal(t, []string{"Easy", "Medium", "Hard"}, resp.Difficulties)
	require.Len(t, resp.SortModes, 3)
	assert.Equal(t, dto.SortModeResponse{Value: "time", Label: "Time (asc)"}, resp.SortModes[1])
	assert.Equal(t, "Dinner", resp.FormDefaults.Category)
	assert.Equal(t, 6, resp.PageSize)
}

func TestRecipeHandler_ReadinessFollowsBootstrap(t *testing.T) {
	store := memory.NewCatalog()
	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	router := gin.New()
	NewHealthHandler(registry, BuildInfo{}).RegisterHealthRoutesOnEngine(router)

	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodGet, "/-/ready", "").Code)

	service := app.NewCatalogService(app.CatalogServiceConfig{Store: store, IDs: idgen.UUID{}, Logger: discardLogger()})
	require.NoError(t, service.BootstrapFrom(context.Background(), seeds.Sample{}))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/-/ready", "").Code)
}
