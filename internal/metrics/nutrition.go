package metrics

import (
	"sort"
	"time"

	"fittrack/internal/models"
)

// MacroTotals accumulates calories and macros, each rounded to two decimals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func (t MacroTotals) add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: t.Calories + o.Calories,
		ProteinG: t.ProteinG + o.ProteinG,
		CarbsG:   t.CarbsG + o.CarbsG,
		FatG:     t.FatG + o.FatG,
	}
}

func (t MacroTotals) rounded() MacroTotals {
	return MacroTotals{
		Calories: Round2(t.Calories),
		ProteinG: Round2(t.ProteinG),
		CarbsG:   Round2(t.CarbsG),
		FatG:     Round2(t.FatG),
	}
}

// SumMealMacros totals a meal's foods, scaling each food item's per-serving
// profile by the logged servings.
func SumMealMacros(meal models.Meal) MacroTotals {
	var total MacroTotals
	for _, mf := range meal.Foods {
		total = total.add(MacroTotals{
			Calories: mf.FoodItem.Calories * mf.Servings,
			ProteinG: mf.FoodItem.ProteinG * mf.Servings,
			CarbsG:   mf.FoodItem.CarbsG * mf.Servings,
			FatG:     mf.FoodItem.FatG * mf.Servings,
		})
	}
	return total.rounded()
}

// DailyMacros is the macro total for one calendar day.
type DailyMacros struct {
	Date   string      `json:"date"`
	Meals  int         `json:"meals"`
	Totals MacroTotals `json:"totals"`
}

// DailyNutrition groups meals by calendar date and totals each day's intake,
// returned in ascending date order.
func DailyNutrition(meals []models.Meal) []DailyMacros {
	type day struct {
		totals MacroTotals
		meals  int
	}
	days := make(map[time.Time]*day)
	for _, m := range meals {
		d := time.Date(m.MealDate.Year(), m.MealDate.Month(), m.MealDate.Day(), 0, 0, 0, 0, time.UTC)
		if days[d] == nil {
			days[d] = &day{}
		}
		days[d].totals = days[d].totals.add(SumMealMacros(m))
		days[d].meals++
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]DailyMacros, 0, len(dates))
	for _, d := range dates {
		out = append(out, DailyMacros{
			Date:   d.Format("2006-01-02"),
			Meals:  days[d].meals,
			Totals: days[d].totals.rounded(),
		})
	}
	return out
}
