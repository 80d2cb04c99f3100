package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/models"
	"github.com/Alexeya-png/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Streak *services.StreakService
	Stats  *services.StatsService
}

func NewEntryController(streak *services.StreakService, stats *services.StatsService) *EntryController {
	return &EntryController{Streak: streak, Stats: stats}
}

type entryRequest struct {
	Date          string `json:"date"` // YYYY-MM-DD; defaults to the tracked date
	MealSlot      string `json:"meal_slot" binding:"required"`
	Calories      int    `json:"calories"`
	Proteins      int    `json:"proteins"`
	Fats          int    `json:"fats"`
	Carbs         int    `json:"carbs"`
	Water         int    `json:"water"`
	LimitExceeded bool   `json:"limit_exceeded"`
}

// Create logs one meal entry; the closing entry of a day also moves the
// streak.
func (ec *EntryController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := ec.resolveDate(uid, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, prof, err := ec.Streak.RecordEntry(uid, services.EntryInput{
		Date:          date,
		MealSlot:      req.MealSlot,
		Calories:      req.Calories,
		Proteins:      req.Proteins,
		Fats:          req.Fats,
		Carbs:         req.Carbs,
		Water:         req.Water,
		LimitExceeded: req.LimitExceeded,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry, "streak": prof.Streak})
}

func (ec *EntryController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	entries, err := ec.Stats.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DayStatus reports which slots are filled for a date and whether the day is
// complete.
func (ec *EntryController) DayStatus(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := ec.resolveDate(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := ec.Streak.DaySlots(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"slots":    slots,
		"complete": slots[models.SlotMorning] && slots[models.SlotAfternoon] && slots[models.SlotEvening],
	})
}

func (ec *EntryController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := ec.Streak.DeleteEntry(uid, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// resolveDate parses an explicit YYYY-MM-DD or falls back to the user's
// tracked date.
func (ec *EntryController) resolveDate(userID uint, raw string) (time.Time, error) {
	if raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, errors.New("date must be formatted YYYY-MM-DD")
		}
		return d, nil
	}

	var u models.User
	if err := config.DB.First(&u, userID).Error; err != nil {
		return time.Time{}, errors.New("user not found")
	}
	if u.TrackedDate.IsZero() {
		return time.Now(), nil
	}
	return u.TrackedDate, nil
}
