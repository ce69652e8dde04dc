package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen/recipe-service/internal/app"
	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// RecipeResponse is the JSON shape of a recipe.
type RecipeResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Time        int      `json:"time"`
	Difficulty  string   `json:"difficulty"`
	Calories    int      `json:"calories"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// FromRecipe converts a domain recipe. Nil slices become empty arrays.
func FromRecipe(r domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Category:    string(r.Category),
		Time:        r.Time,
		Difficulty:  string(r.Difficulty),
		Calories:    r.Calories,
		Rating:      r.Rating,
		Image:       r.Image,
		Tags:        nonNil(r.Tags),
		Ingredients: nonNil(r.Ingredients),
		Steps:       nonNil(r.Steps),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// ListRecipesRequest holds the query string of GET /recipes.
type ListRecipesRequest struct {
	PaginationRequest

	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort" validate:"omitempty,sortmode"`
}

// Params converts the request into domain query parameters.
// Call it only after validation: an unknown sort falls back to trending.
func (r *ListRecipesRequest) Params() domain.QueryParams {
	params := domain.DefaultQueryParams().
		WithCategory(domain.ParseSelector(r.Category)).
		WithSearch(r.Search)

	if mode, ok := domain.ParseSortMode(r.Sort); ok {
		params = params.WithSort(mode)
	}

	return params.WithPage(r.GetPage())
}

// QueryParamsResponse echoes the effective query back to the client.
type QueryParamsResponse struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	Sort     string `json:"sort"`
}

// RecipePageResponse is one page of query results plus the query that produced it.
type RecipePageResponse struct {
	*PaginatedResponse[RecipeResponse]

	Params QueryParamsResponse `json:"params"`
}

// NewRecipePageResponse converts a page of recipes and the params that selected it.
func NewRecipePageResponse(page domain.Page[domain.Recipe], params domain.QueryParams) *RecipePageResponse {
	return &RecipePageResponse{
		PaginatedResponse: NewPaginatedResponse(page, FromRecipe),
		Params: QueryParamsResponse{
			Category: params.Selector.String(),
			Search:   params.Search,
			Sort:     string(params.Sort),
		},
	}
}

// Text is a submitted form value. It accepts a JSON string, number or null,
// so clients may send "time": 20 as well as "time": "20".
type Text string

// UnmarshalJSON implements json.Unmarshaler. Numbers keep their literal text,
// including ones float64 cannot hold.
func (t *Text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case json.Number:
		*t = Text(x)
	default:
		return fmt.Errorf("expected a string or number, got %s", b)
	}

	return nil
}

// CreateRecipeRequest is the body of POST /recipes: the submission form as typed.
// Tags are comma separated; ingredients and steps are one per line.
type CreateRecipeRequest struct {
	Title       Text `json:"title"`
	Category    Text `json:"category"`
	Time        Text `json:"time"`
	Difficulty  Text `json:"difficulty"`
	Calories    Text `json:"calories"`
	Rating      Text `json:"rating"`
	Image       Text `json:"image"`
	Tags        Text `json:"tags"`
	Ingredients Text `json:"ingredients"`
	Steps       Text `json:"steps"`
}

// NewCreateRecipeRequest returns a request whose category and difficulty hold
// the form defaults, so omitted fields keep them after binding.
func NewCreateRecipeRequest() *CreateRecipeRequest {
	defaults := domain.DefaultRawFields()

	return &CreateRecipeRequest{
		Category:   Text(defaults.Category),
		Difficulty: Text(defaults.Difficulty),
	}
}

// ToRawFields converts the request for domain.Normalize.
func (r *CreateRecipeRequest) ToRawFields() domain.RawFields {
	return domain.RawFields{
		Title:       string(r.Title),
		Category:    string(r.Category),
		Time:        string(r.Time),
		Difficulty:  string(r.Difficulty),
		Calories:    string(r.Calories),
		Rating:      string(r.Rating),
		Image:       string(r.Image),
		Tags:        string(r.Tags),
		Ingredients: string(r.Ingredients),
		Steps:       string(r.Steps),
	}
}

// SortModeResponse describes one sort option.
type SortModeResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormDefaultsResponse holds the values a blank submission form starts with.
type FormDefaultsResponse struct {
	Category    string `json:"category"`
	Time        string `json:"time"`
	Difficulty  string `json:"difficulty"`
	Calories    string `json:"calories"`
	Rating      string `json:"rating"`
	Image       string `json:"image"`
	Tags        string `json:"tags"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
}

// CatalogOptionsResponse is the body of GET /categories.
type CatalogOptionsResponse struct {
	Selectors    []string             `json:"selectors"`
	Categories   []string             `json:"categories"`
	Difficulties []string             `json:"difficulties"`
	SortModes    []SortModeResponse   `json:"sortModes"`
	FormDefaults FormDefaultsResponse `json:"formDefaults"`
	PageSize     int                  `json:"pageSize"`
}

// FromCatalogOptions converts the catalog options.
func FromCatalogOptions(o app.CatalogOptions) CatalogOptionsResponse {
	resp := CatalogOptionsResponse{
		Selectors:    make([]string, 0, len(o.Selectors)),
		Categories:   make([]string, 0, len(o.Categories)),
		Difficulties: make([]string, 0, len(o.Difficulties)),
		SortModes:    make([]SortModeResponse, 0, len(o.SortModes)),
		FormDefaults: FormDefaultsResponse{
			Category:    o.FormDefaults.Category,
			Time:        o.FormDefaults.Time,
			Difficulty:  o.FormDefaults.Difficulty,
			Calories:    o.FormDefaults.Calories,
			Rating:      o.FormDefaults.Rating,
			Image:       o.FormDefaults.Image,
			Tags:        o.FormDefaults.Tags,
			Ingredients: o.FormDefaults.Ingredients,
			Steps:       o.FormDefaults.Steps,
		},
		PageSize: o.PageSize,
	}

	for _, s := range o.Selectors {
		resp.Selectors = append(resp.Selectors, s.String())
	}

	for _, c := range o.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}

	for _, d := range o.Difficulties {
		resp.Difficulties = append(resp.Difficulties, string(d))
	}

	for _, m := range o.SortModes {
		resp.SortModes = append(resp.SortModes, SortModeResponse{Value: string(m), Label: m.Label()})
	}

	return resp
}
