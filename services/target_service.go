package services

import (
	"errors"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/models"
	"github.com/Alexeya-png/fitness-tracker/utils"

	"gorm.io/gorm"
)

// UpsertTarget stores the computed daily norm for the user, replacing any
// previous one.
func UpsertTarget(userID uint, t utils.NutritionTargets) error {
	var target models.DailyTarget
	err := config.DB.Where("user_id = ?", userID).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		target = models.DailyTarget{
			UserID:   userID,
			Calories: t.Calories,
			Proteins: t.Proteins,
			Fats:     t.Fats,
			Carbs:    t.Carbs,
		}
		return config.DB.Create(&target).Error
	}
	if err != nil {
		return err
	}

	target.Calories = t.Calories
	target.Proteins = t.Proteins
	target.Fats = t.Fats
	target.Carbs = t.Carbs

	return config.DB.Save(&target).Error
}

// GetTarget returns the stored daily norm, or ErrNotFound when the user has
// not calculated one yet.
func GetTarget(userID uint) (*models.DailyTarget, error) {
	var target models.DailyTarget
	err := config.DB.Where("user_id = ?", userID).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}
