package services

import (
	"errors"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/models"
	"github.com/Alexeya-png/fitness-tracker/utils"
)

type ProfileInput struct {
	Name   string  `json:"name"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// GetUserProfile returns the profile view: identity, streak state, tracked
// date and derived BMI when body metrics are present.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	lastDate := ""
	if user.LastDate != nil {
		lastDate = user.LastDate.Format("2006-01-02")
	}

	out := map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"streak":       user.Streak,
		"last_date":    lastDate,
		"tracked_date": DayOf(user.TrackedDate).Format("2006-01-02"),
		"height":       user.Height,
		"weight":       user.Weight,
		"mfa_enabled":  user.MFAEnabled,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}

	return out, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}

	return config.DB.Save(&user).Error
}
