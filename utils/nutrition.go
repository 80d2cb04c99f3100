package utils

import (
	"errors"
	"math"
)

// NutritionTargets is the computed daily intake norm.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Proteins int `json:"proteins"`
	Fats     int `json:"fats"`
	Carbs    int `json:"carbs"`
}

// activityFactors is the fixed set of accepted TDEE multipliers — also the
// source of truth for input validation.
var activityFactors = map[float64]bool{
	1.2:   true, // sedentary
	1.375: true, // light, 1-3x/week
	1.55:  true, // moderate, 3-5x/week
	1.725: true, // active, 6-7x/week
	1.9:   true, // very active
}

// CalculateNutrition computes the daily norm from body metrics using the
// Mifflin-St Jeor BMR formula scaled by the activity factor. Macros split the
// calories 30% protein / 30% fat / 40% carbs (4, 9 and 4 kcal per gram).
// Deterministic, no side effects.
func CalculateNutrition(weightKg, heightCm float64, age int, sex string, activity float64) (NutritionTargets, error) {
	if !isFinitePositive(weightKg) || !isFinitePositive(heightCm) || age <= 0 {
		return NutritionTargets{}, errors.New("weight, height and age must be positive")
	}
	if weightKg > 400 || heightCm > 250 || age > 130 {
		return NutritionTargets{}, errors.New("weight/height/age out of plausible range")
	}
	if sex != "male" && sex != "female" {
		return NutritionTargets{}, errors.New("sex must be \"male\" or \"female\"")
	}
	if !activityFactors[activity] {
		return NutritionTargets{}, errors.New("unknown activity factor")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	calories := bmr * activity
	return NutritionTargets{
		Calories: int(math.Round(calories)),
		Proteins: int(math.Round(calories * 0.30 / 4)),
		Fats:     int(math.Round(calories * 0.30 / 9)),
		Carbs:    int(math.Round(calories * 0.40 / 4)),
	}, nil
}

func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
