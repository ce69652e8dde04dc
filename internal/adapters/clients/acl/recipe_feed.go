package acl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen/recipe-service/internal/adapters/clients"
	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/platform/logging"
)

// DefaultFeedMaxPages bounds how many cursor pages FetchAll follows.
const DefaultFeedMaxPages = 20

// RecipeFeedConfig contains configuration for the recipe feed adapter.
type RecipeFeedConfig struct {
	// Client must have its BaseURL set to the feed host.
	Client *clients.Client

	// Path is the collection path, e.g. "/recipes".
	Path string

	// MaxPages defaults to DefaultFeedMaxPages.
	MaxPages int

	Logger *slog.Logger
}

// RecipeFeed reads recipes from an external JSON feed and translates them into
// domain recipes. It is also a health checker for the feed.
type RecipeFeed struct {
	remote remote

	path     string
	maxPages int
	logger   *slog.Logger
}

// NewRecipeFeed creates a feed adapter. It panics if Client is nil.
func NewRecipeFeed(cfg RecipeFeedConfig) *RecipeFeed {
	if cfg.Client == nil {
		panic("acl: recipe feed requires a client")
	}

	path := cfg.Path
	if path == "" {
		path = "/recipes"
	}

	maxPages := cfg.MaxPages
	if maxPages < 1 {
		maxPages = DefaultFeedMaxPages
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RecipeFeed{
		remote:   remote{client: cfg.Client, service: cfg.Client.Name()},
		path:     path,
		maxPages: maxPages,
		logger:   logger.With(slog.String("component", "acl.RecipeFeed")),
	}
}

// feedPage is one page of the external feed.
type feedPage struct {
	Recipes []feedRecipe `json:"recipes"`
	Next    string       `json:"next"`
}

// feedRecipe is the external recipe shape. Never exposed outside the ACL.
type feedRecipe struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Difficulty   string            `json:"difficulty"`
	PrepMinutes  float64           `json:"prepMinutes"`
	CookMinutes  float64           `json:"cookMinutes"`
	Kcal         float64           `json:"kcal"`
	Rating       float64           `json:"rating"`
	ImageURL     string            `json:"imageUrl"`
	Tags         []string          `json:"tags"`
	Ingredients  []feedIngredient  `json:"ingredients"`
	Instructions []feedInstruction `json:"instructions"`
}

type feedIngredient struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Name     string `json:"name"`
}

type feedInstruction struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// FetchAll reads every page of the feed and returns the valid recipes in feed order.
// Invalid records are skipped and logged; a failed request fails the whole fetch.
func (f *RecipeFeed) FetchAll(ctx context.Context) ([]domain.Recipe, error) {
	logger := logging.FromContextOr(ctx, f.logger)

	var (
		out    []domain.Recipe
		cursor string
	)

	for page := range f.maxPages {
		ext, err := getJSON[feedPage](ctx, f.remote, f.pagePath(cursor), "list recipes")
		if err != nil {
			return nil, err
		}

		recipes, err := translateEach(ext.Recipes, translateRecipe)
		if err != nil {
			logger.WarnContext(ctx, "skipped invalid feed recipes",
				slog.Int("page", page+1),
				slog.Any("error", err),
			)
		}

		logger.Log(ctx, logging.LevelTrace, "translated feed page",
			slog.Int("page", page+1),
			slog.Int("received", len(ext.Recipes)),
			slog.Int("kept", len(recipes)),
		)

		out = append(out, recipes...)

		if ext.Next == "" {
			return out, nil
		}

		cursor = ext.Next
	}

	logger.WarnContext(ctx, "feed page limit reached", slog.Int("max_pages", f.maxPages))

	return out, nil
}

func (f *RecipeFeed) pagePath(cursor string) string {
	if cursor == "" {
		return f.path
	}

	return f.path + "?cursor=" + url.QueryEscape(cursor)
}

// translateRecipe converts a feed record into a domain recipe.
// The feed's split prep/cook times are summed and structured ingredients flattened to lines.
func translateRecipe(ext *feedRecipe) (domain.Recipe, error) {
	if err := requireText("name", strings.TrimSpace(ext.Name)); err != nil {
		return domain.Recipe{}, err
	}

	for field, v := range map[string]float64{
		"prepMinutes": ext.PrepMinutes,
		"cookMinutes": ext.CookMinutes,
		"kcal":        ext.Kcal,
		"rating":      ext.Rating,
	} {
		if err := nonNegative(field, v); err != nil {
			return domain.Recipe{}, fmt.Errorf("recipe %q: %w", ext.Name, err)
		}
	}

	r := domain.Recipe{
		ID:          ext.ID,
		Title:       ext.Name,
		Category:    translateCategory(ext.Category),
		Difficulty:  translateDifficulty(ext.Difficulty),
		Time:        int(ext.PrepMinutes + ext.CookMinutes),
		Calories:    int(ext.Kcal),
		Rating:      ext.Rating,
		Image:       strings.TrimSpace(ext.ImageURL),
		Tags:        slices.Clone(ext.Tags),
		Ingredients: translateIngredients(ext.Ingredients),
		Steps:       translateInstructions(ext.Instructions),
	}

	return domain.SanitizeSeed(r), nil
}

// translateCategory maps feed categories onto domain categories.
// Unknown categories pass through; a selector name like "all" falls back to the form default.
func translateCategory(s string) domain.Category {
	sel := domain.ParseSelector(s)
	if sel.Kind() == domain.SelectorKindCategory && sel.Category() != "" {
		return sel.Category()
	}

	return domain.Category(domain.DefaultRawFields().Category)
}

func translateDifficulty(s string) domain.Difficulty {
	for _, d := range domain.Difficulties() {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d
		}
	}

	return domain.Difficulty(domain.DefaultRawFields().Difficulty)
}

func translateIngredients(items []feedIngredient) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		line := strings.Join(strings.Fields(strings.Join([]string{it.Quantity, it.Unit, it.Name}, " ")), " ")
		lines = append(lines, line)
	}

	return lines
}

func translateInstructions(items []feedInstruction) []string {
	ordered := slices.Clone(items)
	slices.SortStableFunc(ordered, func(a, b feedInstruction) int {
		return cmp.Compare(a.Step, b.Step)
	})

	steps := make([]string, 0, len(ordered))
	for _, it := range ordered {
		steps = append(steps, it.Text)
	}

	return steps
}

// Name returns the health check name for this feed.
func (f *RecipeFeed) Name() string {
	return f.remote.service
}

// Check verifies the feed answers its collection path and the circuit is not open.
func (f *RecipeFeed) Check(ctx context.Context) error {
	if f.remote.client.CircuitState() == clients.StateOpen {
		return domain.Unavailable(f.remote.service, "circuit breaker open")
	}

	body, err := f.remote.get(ctx, f.path, "health check")
	if err != nil {
		return err
	}

	return body.Close()
}

// Optional reports that the service stays ready while the feed is down.
func (f *RecipeFeed) Optional() bool {
	return true
}
