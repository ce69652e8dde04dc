// Package seeds provides the sources the recipe catalog is bootstrapped from:
// the built-in sample recipes, a YAML or JSON file, and a remote recipe feed.
package seeds

import (
	"context"

	"github.com/jsamuelsen/recipe-service/internal/domain"
	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Sample serves the five built-in recipes.
type Sample struct{}

var _ ports.SeedSource = Sample{}

// Name implements ports.SeedSource.
func (Sample) Name() string {
	return "sample"
}

// Load returns fresh copies of the sample recipes.
func (Sample) Load(ctx context.Context) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return sampleRecipes(), nil
}

const unsplash = "https://images.unsplash.com/"

func sampleRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:         "1",
			Title:      "One-Pan Garlic Butter Chicken & Rice",
			Category:   domain.CategoryDinner,
			Time:       35,
			Difficulty: domain.DifficultyEasy,
			Calories:   520,
			Rating:     4.8,
			Image:      unsplash + "photo-1604908554007-4b7c7f3b4d1c?q=80&w=1600&auto=format&fit=crop",
			Tags:       []string{"Chicken", "Comfort", "One-Pot"},
			Ingredients: []string{
				"2 chicken breasts",
				"1 cup basmati rice",
				"3 tbsp butter",
				"4 cloves garlic, minced",
				"2 cups chicken stock",
				"Salt & pepper",
				"Parsley for garnish",
			},
			Steps: []string{
				"Season chicken and sear in butter until golden.",
				"Add garlic, rice, and stock; bring to a simmer.",
				"Cover and cook 15 minutes; rest 5 minutes.",
				"Fluff, garnish, and serve.",
			},
		},
		{
			ID:         "2",
			Title:      "15-Min Creamy Pesto Pasta",
			Category:   domain.CategoryLunch,
			Time:       15,
			Difficulty: domain.DifficultyEasy,
			Calories:   430,
			Rating:     4.6,
			Image:      unsplash + "photo-1521389508051-d7ffb5dc8bbf?q=80&w=1600&auto=format&fit=crop",
			Tags:       []string{"Vegetarian", "Quick", "Pasta"},
			Ingredients: []string{
				"250g pasta",
				"3 tbsp pesto",
				"1/2 cup cream",
				"Parmesan, grated",
				"Salt to taste",
			},
			Steps: []string{
				"Cook pasta until al dente.",
				"Stir pesto and cream in a pan.",
				"Add pasta and toss with parmesan.",
			},
		},
		{
			ID:         "3",
			Title:      "Smoky Shakshuka",
			Category:   domain.CategoryBreakfast,
			Time:       25,
			Difficulty: domain.DifficultyMedium,
			Calories:   380,
			Rating:     4.9,
			Image:      unsplash + "photo-1544025162-d76694265947?q=80&w=1600&auto=format&fit=crop",
			Tags:       []string{"Eggs", "Spicy", "Skillet"},
			Ingredients: []string{
				"1 onion, sliced",
				"2 bell peppers",
				"2 cups crushed tomatoes",
				"4 eggs",
				"1 tsp smoked paprika",
				"Chili flakes, salt, pepper",
			},
			Steps: []string{
				"Soften onions & peppers.",
				"Add tomatoes & spices; simmer.",
				"Make wells and crack in eggs; cover until set.",
			},
		},
		{
			ID:         "4",
			Title:      "Crispy Falafel Wraps",
			Category:   domain.CategoryStreetFood,
			Time:       40,
			Difficulty: domain.DifficultyMedium,
			Calories:   450,
			Rating:     4.7,
			Image:      unsplash + "photo-1616177608274-17a49b82a2e4?q=80&w=1600&auto=format&fit=crop",
			Tags:       []string{"Vegan", "Crispy", "Legumes"},
			Ingredients: []string{
				"2 cups soaked chickpeas",
				"Garlic & herbs",
				"Spices",
				"Wraps, tahini sauce, veggies",
			},
			Steps: []string{
				"Blend chickpeas with herbs & spices.",
				"Form balls; fry/air-fry until crisp.",
				"Assemble wraps with tahini & veggies.",
			},
		},
		{
			ID:         "5",
			Title:      "No-Bake Lotus Cheesecake",
			Category:   domain.CategoryDessert,
			Time:       20,
			Difficulty: domain.DifficultyEasy,
			Calories:   510,
			Rating:     4.5,
			Image:      unsplash + "photo-1563729784474-d77dbb933a9e?q=80&w=1600&auto=format&fit=crop",
			Tags:       []string{"Sweet", "No-Bake", "Creamy"},
			Ingredients: []string{
				"Lotus biscuits, crushed",
				"Butter",
				"Cream cheese",
				"Condensed milk",
				"Lotus spread",
			},
			Steps: []string{
				"Mix biscuit crumbs with butter; press into tin.",
				"Beat cheese with condensed milk & spread.",
				"Pour, chill 4h; top with more Lotus.",
			},
		},
	}
}
