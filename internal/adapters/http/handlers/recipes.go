package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/recipe-service/internal/app"
)

// RecipeHandler handles recipe catalog endpoints.
type RecipeHandler struct {
	service     *app.CatalogService
	maxPageSize int
}

// NewRecipeHandler creates a recipe handler.
// A maxPageSize below the service page size is raised to it.
func NewRecipeHandler(service *app.CatalogService, maxPageSize int) *RecipeHandler {
	return &RecipeHandler{
		service:     service,
		maxPageSize: max(maxPageSize, service.PageSize()),
	}
}

// ListRecipes handles GET /api/v1/recipes
// Returns one page of the filtered, sorted catalog.
//
// @Summary List recipes
// @Description Filters by category selector and title search, sorts, and paginates the catalog
// @Tags recipes
// @Produce json
// @Param category query string false "All, Vegan, Quick or a category name"
// @Param search query string false "Case-insensitive title search"
// @Param sort query string false "trending, time or calories"
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Recipes per page"
// @Success 200 {object} dto.RecipePageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var req dto.ListRecipesRequest

	if err := dto.BindQuery(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if req.PageSize > h.maxPageSize {
		dto.HandleError(c, dto.FieldErrors{"page_size": "must be at most " + strconv.Itoa(h.maxPageSize)})
		return
	}

	params := req.Params()

	page, err := h.service.GetPage(c.Request.Context(), params, req.GetPageSize(h.service.PageSize()))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecipePageResponse(page, params))
}

// GetRecipe handles GET /api/v1/recipes/:id
//
// @Summary Get a recipe by ID
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "recipe ID is required")
		return
	}

	recipe, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRecipe(recipe))
}

// CreateRecipe handles POST /api/v1/recipes
// Every field is optional and sanitized rather than rejected. The new recipe
// is placed first in the catalog.
//
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body dto.CreateRecipeRequest true "Submission form values"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	req := dto.NewCreateRecipeRequest()

	if err := c.ShouldBindJSON(req); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed request body: "+err.Error())
		return
	}

	recipe, err := h.service.Submit(c.Request.Context(), req.ToRawFields())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+recipe.ID)
	c.JSON(http.StatusCreated, dto.FromRecipe(recipe))
}

// ListCategories handles GET /api/v1/categories
// Returns the browse selectors, creatable categories, difficulties and sort modes.
//
// @Summary List catalog options
// @Tags recipes
// @Produce json
// @Success 200 {object} dto.CatalogOptionsResponse
// @Router /api/v1/categories [get]
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromCatalogOptions(h.service.Options()))
}

// RegisterRecipeRoutes registers recipe routes on the given router group.
func (h *RecipeHandler) RegisterRecipeRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.GET("", h.ListRecipes)
	recipes.POST("", h.CreateRecipe)
	recipes.GET("/:id", h.GetRecipe)

	rg.GET("/categories", h.ListCategories)
}
