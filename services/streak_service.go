package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Alexeya-png/fitness-tracker/models"

	"go.uber.org/zap"
)

// EntryStore is the per-user daily-record store the streak engine runs
// against. The production implementation is gorm-backed (entry_store.go);
// tests substitute an in-memory fake.
type EntryStore interface {
	GetEntry(userID uint, date time.Time, slot string) (*models.DailyEntry, error)
	CreateEntry(e *models.DailyEntry) error
	EntriesByDate(userID uint, date time.Time) ([]models.DailyEntry, error)
	EntriesByDateDesc(userID uint) ([]models.DailyEntry, error)
	GetEntryByID(userID, entryID uint) (*models.DailyEntry, error)
	DeleteEntry(userID, entryID uint) error
}

// Profile is the streak-bearing slice of the user record.
type Profile struct {
	Streak      int
	LastDate    *time.Time
	TrackedDate time.Time
}

// ProfileStore reads and writes the streak slice of the user record.
// SaveStreak must persist streak and last_date together: a partially
// applied update is never observable.
type ProfileStore interface {
	GetProfile(userID uint) (Profile, error)
	SaveStreak(userID uint, streak int, lastDate *time.Time) error
	SetTrackedDate(userID uint, date time.Time) error
}

// StreakService decides when a day is complete, advances the
// consecutive-day streak on save and reconciles it after deletions.
type StreakService struct {
	entries  EntryStore
	profiles ProfileStore
	log      *zap.Logger
}

func NewStreakService(entries EntryStore, profiles ProfileStore, log *zap.Logger) *StreakService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StreakService{entries: entries, profiles: profiles, log: log}
}

// DayOf strips the time-of-day component, pinning the date to UTC midnight.
// All streak arithmetic runs on these values so DST shifts cannot skew the
// day difference.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns to − from in whole calendar days.
func daysBetween(from, to time.Time) int {
	return int(DayOf(to).Sub(DayOf(from)).Hours() / 24)
}

// EntryInput is one meal submission.
type EntryInput struct {
	Date          time.Time
	MealSlot      string
	Calories      int
	Proteins      int
	Fats          int
	Carbs         int
	Water         int
	LimitExceeded bool
}

func (in EntryInput) validate() error {
	if !models.ValidSlot(in.MealSlot) {
		return fmt.Errorf("%w: unknown meal slot %q", ErrValidation, in.MealSlot)
	}
	if in.Calories < 0 || in.Proteins < 0 || in.Fats < 0 || in.Carbs < 0 || in.Water < 0 {
		return fmt.Errorf("%w: nutrient values must be non-negative", ErrValidation)
	}
	return nil
}

// DaySlots returns which meal slots are filled for the given date.
func (s *StreakService) DaySlots(userID uint, date time.Time) (map[string]bool, error) {
	entries, err := s.entries.EntriesByDate(userID, DayOf(date))
	if err != nil {
		return nil, fmt.Errorf("query day entries: %w", err)
	}
	slots := map[string]bool{}
	for _, e := range entries {
		slots[e.MealSlot] = true
	}
	return slots, nil
}

// IsDayComplete reports whether all three meal slots are filled for the date.
func (s *StreakService) IsDayComplete(userID uint, date time.Time) (bool, error) {
	slots, err := s.DaySlots(userID, date)
	if err != nil {
		return false, err
	}
	return slots[models.SlotMorning] && slots[models.SlotAfternoon] && slots[models.SlotEvening], nil
}

// RecordEntry persists one meal entry and, when it closes the day, updates
// the streak. An entry for an already-filled (date, slot) is rejected with
// ErrDuplicateEntry and leaves both the original entry and the streak
// untouched.
func (s *StreakService) RecordEntry(userID uint, in EntryInput) (*models.DailyEntry, Profile, error) {
	if err := in.validate(); err != nil {
		return nil, Profile{}, err
	}
	date := DayOf(in.Date)

	if _, err := s.entries.GetEntry(userID, date, in.MealSlot); err == nil {
		return nil, Profile{}, ErrDuplicateEntry
	} else if !errors.Is(err, ErrNotFound) {
		return nil, Profile{}, fmt.Errorf("check existing entry: %w", err)
	}

	// The closing condition is decided on the state before this save: either
	// this is the evening entry, or the day held no morning/afternoon entry
	// yet and this one stands in as the day's sole entry.
	closing := in.MealSlot == models.SlotEvening
	if !closing {
		slots, err := s.DaySlots(userID, date)
		if err != nil {
			return nil, Profile{}, err
		}
		closing = !slots[models.SlotMorning] && !slots[models.SlotAfternoon]
	}

	entry := &models.DailyEntry{
		UserID:        userID,
		Date:          date,
		MealSlot:      in.MealSlot,
		Calories:      in.Calories,
		Proteins:      in.Proteins,
		Fats:          in.Fats,
		Carbs:         in.Carbs,
		Water:         in.Water,
		LimitExceeded: in.LimitExceeded,
	}
	if err := s.entries.CreateEntry(entry); err != nil {
		return nil, Profile{}, fmt.Errorf("save entry: %w", err)
	}

	prof, err := s.loadProfile(userID)
	if err != nil {
		return nil, Profile{}, err
	}
	if !closing {
		return entry, prof, nil
	}

	prof, err = s.applyClosingEntry(userID, prof, date, in.LimitExceeded)
	return entry, prof, err
}

// applyClosingEntry runs the save-time streak rules and persists
// {streak, last_date} as one write.
func (s *StreakService) applyClosingEntry(userID uint, prof Profile, date time.Time, limitExceeded bool) (Profile, error) {
	streak := prof.Streak

	switch {
	case limitExceeded:
		// An exceeded day breaks the chain no matter how it connects,
		// but still counts as the last recorded day.
		streak = 0
	case prof.LastDate == nil:
		streak = 1
	default:
		switch diff := daysBetween(*prof.LastDate, date); {
		case diff == 1:
			streak++
		case diff == 0:
			// Re-triggered closing condition on the same day: treat as a
			// continuation, never a double increment.
			if streak < 1 {
				streak = 1
			}
		case diff > 1:
			// A gap broke the chain; this day is a fresh start.
			streak = 1
		default:
			// Back-dated closing entry. last_date never regresses; leave the
			// profile alone and let recompute-on-delete reconcile if needed.
			return prof, nil
		}
	}

	if err := s.profiles.SaveStreak(userID, streak, &date); err != nil {
		return prof, fmt.Errorf("save streak: %w", err)
	}
	if limitExceeded {
		EmitAlert(userID, "warning", "Ліміт калорій перевищено, серію скинуто до 0")
	}
	s.log.Info("streak updated",
		zap.Uint("user_id", userID),
		zap.Int("streak", streak),
		zap.String("last_date", date.Format("2006-01-02")))

	prof.Streak = streak
	prof.LastDate = &date
	return prof, nil
}

// DeleteEntry removes one entry and recomputes the streak from the full
// remaining history. Deletion never patches the streak incrementally.
func (s *StreakService) DeleteEntry(userID, entryID uint) error {
	if _, err := s.entries.GetEntryByID(userID, entryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load entry: %w", err)
	}
	if err := s.entries.DeleteEntry(userID, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return s.RecomputeStreak(userID)
}

// RecomputeStreak rebuilds {streak, last_date} from the entries actually
// present: walk distinct dates from the most recent backwards, counting
// while each date is exactly one day before the previous one. A day holding
// a limit-exceeded entry terminates the walk and is itself not counted.
// The result is persisted unconditionally, zero/empty included.
func (s *StreakService) RecomputeStreak(userID uint) error {
	entries, err := s.entries.EntriesByDateDesc(userID)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	type day struct {
		date     time.Time
		exceeded bool
	}
	var days []day
	for _, e := range entries {
		d := DayOf(e.Date)
		if n := len(days); n > 0 && days[n-1].date.Equal(d) {
			days[n-1].exceeded = days[n-1].exceeded || e.LimitExceeded
			continue
		}
		days = append(days, day{date: d, exceeded: e.LimitExceeded})
	}

	streak := 0
	for i, d := range days {
		if d.exceeded {
			break
		}
		if i > 0 && !d.date.Equal(days[i-1].date.AddDate(0, 0, -1)) {
			break
		}
		streak++
	}

	var lastDate *time.Time
	if len(days) > 0 {
		lastDate = &days[0].date
	}
	if err := s.profiles.SaveStreak(userID, streak, lastDate); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	s.log.Info("streak recomputed", zap.Uint("user_id", userID), zap.Int("streak", streak))
	return nil
}

// AdvanceDay moves the user's tracked date one day forward (simulation
// affordance). A day left entirely without entries zeroes the streak first,
// with last_date pinned to the skipped day.
func (s *StreakService) AdvanceDay(userID uint) (next time.Time, complete bool, err error) {
	prof, err := s.loadProfile(userID)
	if err != nil {
		return time.Time{}, false, err
	}
	current := DayOf(prof.TrackedDate)
	if prof.TrackedDate.IsZero() {
		current = DayOf(time.Now())
	}

	entries, err := s.entries.EntriesByDate(userID, current)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query day entries: %w", err)
	}
	if len(entries) == 0 {
		if err := s.profiles.SaveStreak(userID, 0, &current); err != nil {
			return time.Time{}, false, fmt.Errorf("save streak: %w", err)
		}
		EmitAlert(userID, "warning", "Серію скинуто: за поточний день не було жодного запису")
		s.log.Info("streak reset on skipped day",
			zap.Uint("user_id", userID),
			zap.String("date", current.Format("2006-01-02")))
	}

	next = current.AddDate(0, 0, 1)
	if err := s.profiles.SetTrackedDate(userID, next); err != nil {
		return time.Time{}, false, fmt.Errorf("save tracked date: %w", err)
	}

	complete, err = s.IsDayComplete(userID, next)
	if err != nil {
		return time.Time{}, false, err
	}
	return next, complete, nil
}

// loadProfile treats a missing profile row as the empty default rather than
// an error.
func (s *StreakService) loadProfile(userID uint) (Profile, error) {
	prof, err := s.profiles.GetProfile(userID)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return prof, nil
}
