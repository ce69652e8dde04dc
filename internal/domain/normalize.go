package domain

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTitle replaces a blank title.
const DefaultTitle = "Untitled Recipe"

// RawFields holds a recipe submission exactly as typed.
// Tags are comma separated; ingredients and steps are one per line.
type RawFields struct {
	Title       string
	Category    string
	Time        string
	Difficulty  string
	Calories    string
	Rating      string
	Image       string
	Tags        string
	Ingredients string
	Steps       string
}

// DefaultRawFields returns the values a blank submission form starts with.
func DefaultRawFields() RawFields {
	return RawFields{
		Category:    string(CategoryDinner),
		Time:        "20",
		Difficulty:  string(DifficultyEasy),
		Calories:    "400",
		Rating:      "4.5",
		Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=1600&auto=format&fit=crop",
		Tags:        "Quick, Home, Tasty",
		Ingredients: "1 cup something\n2 tsp something else",
		Steps:       "Step 1...\nStep 2...",
	}
}

// Normalize turns a submission into a Recipe with the given id.
// It never fails: malformed input is coerced to a safe default.
func Normalize(raw RawFields, id string) Recipe {
	return Recipe{
		ID:          id,
		Title:       normalizeTitle(raw.Title),
		Category:    Category(raw.Category),
		Difficulty:  Difficulty(raw.Difficulty),
		Time:        wholeNonNegative(ParseNumber(raw.Time)),
		Calories:    wholeNonNegative(ParseNumber(raw.Calories)),
		Rating:      ParseNumber(raw.Rating),
		Image:       raw.Image,
		Tags:        SplitTags(raw.Tags),
		Ingredients: SplitLines(raw.Ingredients),
		Steps:       SplitLines(raw.Steps),
	}
}

// SanitizeSeed applies the normalization invariants to a recipe that arrived already structured.
// The id is kept as is.
func SanitizeSeed(r Recipe) Recipe {
	r.Title = normalizeTitle(r.Title)
	r.Time = max(r.Time, 0)
	r.Calories = max(r.Calories, 0)

	if math.IsNaN(r.Rating) || math.IsInf(r.Rating, 0) {
		r.Rating = 0
	}

	r.Tags = compact(r.Tags)
	r.Ingredients = compact(r.Ingredients)
	r.Steps = compact(r.Steps)

	return r
}

// ParseNumber parses s as a decimal number, ignoring surrounding whitespace.
// Blank, malformed, NaN and infinite input yields 0.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// SplitTags splits a comma separated list, trimming each tag and dropping empty ones.
// Order and duplicates are preserved.
func SplitTags(s string) []string {
	return compact(strings.Split(s, ","))
}

// SplitLines splits text on runs of line breaks, trimming each line and dropping blank ones.
func SplitLines(s string) []string {
	return compact(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	}))
}

func normalizeTitle(s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}

	return DefaultTitle
}

// wholeNonNegative truncates f to an int in [0, math.MaxInt].
func wholeNonNegative(f float64) int {
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	default:
		return int(f)
	}
}

func compact(parts []string) []string {
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
