package models

import "gorm.io/gorm"

// FoodAnalysis is one saved AI nutrient estimate: the free-text description
// the user submitted, the raw report that came back and the numbers extracted
// from it. Kept as history so past analyses can be re-used.
type FoodAnalysis struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Description string `gorm:"type:text"`
	MealSlot    string `gorm:"size:16"`
	Result      string `gorm:"type:text"`

	Calories int
	Proteins int
	Fats     int
	Carbs    int

	Fallback bool // true when the report is the synthetic stand-in, not a real estimate
}
