package metrics

import (
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func oatmeal() models.FoodItem {
	return models.FoodItem{Name: "Oatmeal", Calories: 389, ProteinG: 16.9, CarbsG: 66.3, FatG: 6.9}
}

func banana() models.FoodItem {
	return models.FoodItem{Name: "Banana", Calories: 89, ProteinG: 1.1, CarbsG: 22.8, FatG: 0.3}
}

func TestSumMealMacrosScalesByServings(t *testing.T) {
	meal := models.Meal{
		Foods: []models.MealFood{
			{FoodItem: oatmeal(), Servings: 0.5},
			{FoodItem: banana(), Servings: 2},
		},
	}

	totals := SumMealMacros(meal)
	assert.Equal(t, 372.5, totals.Calories)
	assert.Equal(t, 10.65, totals.ProteinG)
	assert.Equal(t, 78.75, totals.CarbsG)
	assert.Equal(t, 4.05, totals.FatG)
}

func TestSumMealMacrosEmptyMeal(t *testing.T) {
	assert.Equal(t, MacroTotals{}, SumMealMacros(models.Meal{}))
}

func TestDailyNutritionGroupsByDate(t *testing.T) {
	meals := []models.Meal{
		{MealDate: date(2024, 1, 2), Foods: []models.MealFood{{FoodItem: banana(), Servings: 1}}},
		{MealDate: date(2024, 1, 1), Foods: []models.MealFood{{FoodItem: oatmeal(), Servings: 1}}},
		{MealDate: date(2024, 1, 1), Foods: []models.MealFood{{FoodItem: banana(), Servings: 1}}},
	}

	days := DailyNutrition(meals)
	assert.Len(t, days, 2)

	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, 2, days[0].Meals)
	assert.Equal(t, 478.0, days[0].Totals.Calories)

	assert.Equal(t, "2024-01-02", days[1].Date)
	assert.Equal(t, 1, days[1].Meals)
	assert.Equal(t, 89.0, days[1].Totals.Calories)
}
