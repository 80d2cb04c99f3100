package services

import (
	"errors"
	"time"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/models"
	"github.com/Alexeya-png/fitness-tracker/utils"
)

// RegisterUser creates an account with a zeroed streak; the tracked date
// starts at the current calendar day.
func RegisterUser(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:       email,
		Password:    hashedPassword,
		Name:        name,
		Streak:      0,
		TrackedDate: DayOf(time.Now()),
	}

	result := config.DB.Create(&user)
	return result.Error
}

// AuthenticateUser checks the credentials and returns the matching account.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}

	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
