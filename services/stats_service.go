package services

import (
	"time"

	"github.com/Alexeya-png/fitness-tracker/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// DayTotals is one day of the history view: summed macros across the meal
// slots logged that day.
type DayTotals struct {
	Date          string   `json:"date"`
	Calories      int      `json:"calories"`
	Proteins      int      `json:"proteins"`
	Fats          int      `json:"fats"`
	Carbs         int      `json:"carbs"`
	Water         int      `json:"water"`
	Slots         []string `json:"slots"`
	Complete      bool     `json:"complete"`
	LimitExceeded bool     `json:"limit_exceeded"`
}

type MacroAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	Goal        float64 `json:"goal,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
}

type StatsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days   []DayTotals         `json:"days"`
	Macros map[string]MacroAvg `json:"macros"` // calories, proteins, fats, carbs

	Streak   int    `json:"streak"`
	LastDate string `json:"last_date,omitempty"`

	DaysCounted int `json:"days_counted"`
}

// Summary aggregates the user's entries over [from, to] into per-day totals
// and range averages against the stored daily target (percent capped at 1).
func (s *StatsService) Summary(userID uint, from, to time.Time) (*StatsSummary, error) {
	var entries []models.DailyEntry
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, DayOf(from), DayOf(to)).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	// Fold entries into days, preserving date order.
	idx := map[string]*DayTotals{}
	var order []string
	for _, e := range entries {
		key := DayOf(e.Date).Format("2006-01-02")
		d, ok := idx[key]
		if !ok {
			d = &DayTotals{Date: key}
			idx[key] = d
			order = append(order, key)
		}
		d.Calories += e.Calories
		d.Proteins += e.Proteins
		d.Fats += e.Fats
		d.Carbs += e.Carbs
		d.Water += e.Water
		d.Slots = append(d.Slots, e.MealSlot)
		d.LimitExceeded = d.LimitExceeded || e.LimitExceeded
	}

	out := &StatsSummary{
		Macros:      map[string]MacroAvg{},
		Streak:      user.Streak,
		DaysCounted: len(order),
	}
	out.Range.From = DayOf(from).Format("2006-01-02")
	out.Range.To = DayOf(to).Format("2006-01-02")
	if user.LastDate != nil {
		out.LastDate = user.LastDate.Format("2006-01-02")
	}

	var sumCal, sumProt, sumFat, sumCarb float64
	for _, key := range order {
		d := idx[key]
		d.Complete = len(d.Slots) == 3
		out.Days = append(out.Days, *d)
		sumCal += float64(d.Calories)
		sumProt += float64(d.Proteins)
		sumFat += float64(d.Fats)
		sumCarb += float64(d.Carbs)
	}

	var target *models.DailyTarget
	if t, err := GetTarget(userID); err == nil {
		target = t
	}

	avg := func(sum float64, goal int) MacroAvg {
		a := MacroAvg{}
		if out.DaysCounted > 0 {
			a.AvgConsumed = sum / float64(out.DaysCounted)
		}
		if goal > 0 {
			a.Goal = float64(goal)
			p := a.AvgConsumed / a.Goal
			if p > 1 {
				p = 1
			}
			a.AvgPercent = p
		}
		return a
	}

	var gc, gp, gf, gcb int
	if target != nil {
		gc, gp, gf, gcb = target.Calories, target.Proteins, target.Fats, target.Carbs
	}
	out.Macros["calories"] = avg(sumCal, gc)
	out.Macros["proteins"] = avg(sumProt, gp)
	out.Macros["fats"] = avg(sumFat, gf)
	out.Macros["carbs"] = avg(sumCarb, gcb)

	return out, nil
}

// History returns the raw entries, newest first, for the statistics table.
func (s *StatsService) History(userID uint) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}
