package controllers

import (
	"errors"
	"net/http"

	"github.com/Alexeya-png/fitness-tracker/services"
	"github.com/Alexeya-png/fitness-tracker/utils"

	"github.com/gin-gonic/gin"
)

type CalculateInput struct {
	Weight   float64 `json:"weight" binding:"required"`
	Height   float64 `json:"height" binding:"required"`
	Age      int     `json:"age" binding:"required"`
	Sex      string  `json:"sex" binding:"required"`
	Activity float64 `json:"activity" binding:"required"`
}

// Calculate computes the daily norm from body metrics and stores it as the
// user's target so the statistics view can compare intake against it.
func Calculate(c *gin.Context) {
	var input CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := utils.CalculateNutrition(input.Weight, input.Height, input.Age, input.Sex, input.Activity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	if err := services.UpsertTarget(uid, targets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, targets)
}

func GetTarget(c *gin.Context) {
	uid := c.GetUint("userID")
	target, err := services.GetTarget(uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no target calculated yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}
