package controllers

import (
	"net/http"
	"strconv"

	"github.com/Alexeya-png/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Svc: svc}
}

type analyzeRequest struct {
	Description string `json:"description" binding:"required"`
	MealSlot    string `json:"meal_slot"`
}

// Analyze relays the description to the AI estimator, extracts the macros
// and saves the analysis. The numbers come back ready to prefill the
// tracking form.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	uid := c.GetUint("userID")

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fa, err := ac.Svc.Analyze(uid, req.Description, req.MealSlot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   fa.Result,
		"fallback": fa.Fallback,
		"nutrition": gin.H{
			"calories": fa.Calories,
			"proteins": fa.Proteins,
			"fats":     fa.Fats,
			"carbs":    fa.Carbs,
		},
		"meal_slot": fa.MealSlot,
	})
}

func (ac *AnalysisController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := ac.Svc.ListAnalyses(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
