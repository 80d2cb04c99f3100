package controllers

import (
	"net/http"

	"github.com/Alexeya-png/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

// DevController exposes the simulation affordances used in testing the
// tracking flow.
type DevController struct {
	Streak *services.StreakService
}

func NewDevController(streak *services.StreakService) *DevController {
	return &DevController{Streak: streak}
}

// AdvanceDay moves the user's tracked date one day forward. A day with no
// entries at all zeroes the streak before the clock moves.
func (d *DevController) AdvanceDay(c *gin.Context) {
	uid := c.GetUint("userID")

	next, complete, err := d.Streak.AdvanceDay(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracked_date": next.Format("2006-01-02"),
		"day_complete": complete,
	})
}
