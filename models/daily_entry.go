package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a day is divided into. A day is complete once all three exist.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ValidSlot reports whether s is one of the three known meal slots.
func ValidSlot(s string) bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}

// DailyEntry is one logged meal. At most one entry may exist per
// (user, date, slot); entries are never overwritten, only deleted.
type DailyEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null;uniqueIndex:idx_user_date_slot"`
	Date     time.Time `gorm:"index;not null;uniqueIndex:idx_user_date_slot"` // truncated to YYYY-MM-DD
	MealSlot string    `gorm:"size:16;not null;uniqueIndex:idx_user_date_slot"`

	Calories int
	Proteins int
	Fats     int
	Carbs    int
	Water    int

	LimitExceeded bool
}
