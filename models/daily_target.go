package models

import "gorm.io/gorm"

// DailyTarget holds each user's computed daily macro targets.
type DailyTarget struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	Calories int  // e.g. 2200 kcal
	Proteins int  // e.g. 150 g
	Fats     int  // e.g. 70 g
	Carbs    int  // e.g. 200 g
}
