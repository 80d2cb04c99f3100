package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string

	// Optional body metrics, used to prefill the calculator and derive BMI.
	Height float64 // cm
	Weight float64 // kg

	// Streak bookkeeping, mutated only by the streak service.
	Streak   int        `gorm:"not null;default:0"`
	LastDate *time.Time // date-only; nil until the first closing entry

	// TrackedDate is the "today" the tracking flow operates on. It normally
	// matches the wall clock but can be moved forward via the dev endpoint.
	TrackedDate time.Time

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
