// Package domain contains core business entities and rules.
package domain

import "slices"

// Category is the dish category a recipe is filed under.
type Category string

// Categories a recipe can be created with.
const (
	CategoryBreakfast  Category = "Breakfast"
	CategoryLunch      Category = "Lunch"
	CategoryDinner     Category = "Dinner"
	CategoryDessert    Category = "Dessert"
	CategoryStreetFood Category = "Street Food"
	CategoryDrinks     Category = "Drinks"
)

// Difficulty is how demanding a recipe is to cook.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Categories returns the stored categories in display order.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryDessert,
		CategoryStreetFood,
		CategoryDrinks,
	}
}

// Difficulties returns the difficulty levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Recipe is a normalized record describing one dish.
// This is a domain entity - it has no knowledge of external systems.
// Recipes are values: use Clone before handing one to code that may mutate its slices.
type Recipe struct {
	// ID is the unique identifier, assigned at creation and never reused.
	ID string

	// Title is the display name. Never empty after normalization.
	Title string

	Category   Category
	Difficulty Difficulty

	// Time is the preparation time in whole minutes.
	Time int

	// Calories per serving.
	Calories int

	// Rating is conventionally in the range 0-5.
	Rating float64

	// Image is a URI. It is not validated.
	Image string

	// Tags keep insertion order and may repeat.
	Tags []string

	Ingredients []string
	Steps       []string
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	r.Tags = slices.Clone(r.Tags)
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Steps = slices.Clone(r.Steps)

	return r
}

// HasTag reports whether the recipe carries the tag, compared exactly.
func (r Recipe) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}
