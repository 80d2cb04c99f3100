package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/Alexeya-png/fitness-tracker/models"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries []models.DailyEntry
	nextID  uint

	profile    Profile
	hasProfile bool

	saveStreakCalls int

	getErr    error
	createErr error
	listErr   error
	saveErr   error
}

var (
	_ EntryStore   = (*fakeStore)(nil)
	_ ProfileStore = (*fakeStore)(nil)
)

func (f *fakeStore) GetEntry(userID uint, date time.Time, slot string) (*models.DailyEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID == userID && e.Date.Equal(date) && e.MealSlot == slot {
			cpy := *e
			return &cpy, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) CreateEntry(e *models.DailyEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = f.nextID
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeStore) EntriesByDate(userID uint, date time.Time) ([]models.DailyEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.DailyEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) EntriesByDateDesc(userID uint) ([]models.DailyEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.DailyEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) GetEntryByID(userID, entryID uint) (*models.DailyEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == entryID && f.entries[i].UserID == userID {
			cpy := f.entries[i]
			return &cpy, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) DeleteEntry(userID, entryID uint) error {
	for i := range f.entries {
		if f.entries[i].ID == entryID && f.entries[i].UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) GetProfile(userID uint) (Profile, error) {
	if !f.hasProfile {
		return Profile{}, ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeStore) SaveStreak(userID uint, streak int, lastDate *time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveStreakCalls++
	f.profile.Streak = streak
	f.profile.LastDate = lastDate
	f.hasProfile = true
	return nil
}

func (f *fakeStore) SetTrackedDate(userID uint, date time.Time) error {
	f.profile.TrackedDate = date
	f.hasProfile = true
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(f *fakeStore) *StreakService {
	return NewStreakService(f, f, nil)
}

func seedEntry(f *fakeStore, userID uint, d time.Time, slot string, exceeded bool) {
	f.nextID++
	e := models.DailyEntry{UserID: userID, Date: d, MealSlot: slot, LimitExceeded: exceeded}
	e.ID = f.nextID
	f.entries = append(f.entries, e)
}

func TestIsDayComplete(t *testing.T) {
	f := &fakeStore{}
	s := newService(f)
	d := date(2024, 1, 5)

	complete, err := s.IsDayComplete(1, d)
	require.NoError(t, err)
	require.False(t, complete)

	seedEntry(f, 1, d, models.SlotMorning, false)
	seedEntry(f, 1, d, models.SlotAfternoon, false)

	complete, err = s.IsDayComplete(1, d)
	require.NoError(t, err)
	require.False(t, complete)

	seedEntry(f, 1, d, models.SlotEvening, false)

	// all three slots present; repeated calls agree
	for i := 0; i < 3; i++ {
		complete, err = s.IsDayComplete(1, d)
		require.NoError(t, err)
		require.True(t, complete)
	}
}

func TestRecordEntry_RejectsDuplicate(t *testing.T) {
	f := &fakeStore{profile: Profile{Streak: 2}, hasProfile: true}
	s := newService(f)
	d := date(2024, 1, 5)
	seedEntry(f, 1, d, models.SlotMorning, false)

	_, _, err := s.RecordEntry(1, EntryInput{Date: d, MealSlot: models.SlotMorning, Calories: 500})
	require.ErrorIs(t, err, ErrDuplicateEntry)

	// original entry and streak untouched
	require.Len(t, f.entries, 1)
	require.Equal(t, 2, f.profile.Streak)
	require.Zero(t, f.saveStreakCalls)
}

func TestRecordEntry_RejectsBadInput(t *testing.T) {
	s := newService(&fakeStore{})

	_, _, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: "brunch"})
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotMorning, Calories: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRecordEntry_ConsecutiveIncrement(t *testing.T) {
	last := date(2024, 1, 5)
	f := &fakeStore{profile: Profile{Streak: 3, LastDate: &last}, hasProfile: true}
	s := newService(f)

	_, prof, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 6), MealSlot: models.SlotEvening, Calories: 600})
	require.NoError(t, err)
	require.Equal(t, 4, prof.Streak)
	require.Equal(t, date(2024, 1, 6), *f.profile.LastDate)
}

func TestRecordEntry_GapResets(t *testing.T) {
	last := date(2024, 1, 5)
	f := &fakeStore{profile: Profile{Streak: 3, LastDate: &last}, hasProfile: true}
	s := newService(f)

	// two-day gap: the chain breaks and this day is a fresh start
	_, prof, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 8), MealSlot: models.SlotEvening, Calories: 600})
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)
	require.Equal(t, date(2024, 1, 8), *f.profile.LastDate)
}

func TestRecordEntry_LimitExceededZeroes(t *testing.T) {
	last := date(2024, 1, 5)
	f := &fakeStore{profile: Profile{Streak: 7, LastDate: &last}, hasProfile: true}
	s := newService(f)

	_, prof, err := s.RecordEntry(1, EntryInput{
		Date: date(2024, 1, 6), MealSlot: models.SlotEvening, Calories: 3500, LimitExceeded: true,
	})
	require.NoError(t, err)
	require.Equal(t, 0, prof.Streak)
	// last_date still advances
	require.Equal(t, date(2024, 1, 6), *f.profile.LastDate)
}

func TestRecordEntry_FirstEverEntry(t *testing.T) {
	f := &fakeStore{}
	s := newService(f)

	// no profile row at all: treated as the empty default, not an error
	_, prof, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotEvening, Calories: 500})
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)
}

func TestRecordEntry_SameDayRetrigger(t *testing.T) {
	last := date(2024, 1, 6)
	f := &fakeStore{profile: Profile{Streak: 4, LastDate: &last}, hasProfile: true}
	s := newService(f)
	seedEntry(f, 1, last, models.SlotMorning, false)

	// evening entry on the day already recorded as last_date: continuation,
	// never a double increment
	_, prof, err := s.RecordEntry(1, EntryInput{Date: last, MealSlot: models.SlotEvening, Calories: 600})
	require.NoError(t, err)
	require.Equal(t, 4, prof.Streak)
}

func TestRecordEntry_ClosingCondition(t *testing.T) {
	t.Run("sole morning entry closes the day", func(t *testing.T) {
		f := &fakeStore{}
		s := newService(f)

		_, prof, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotMorning, Calories: 400})
		require.NoError(t, err)
		require.Equal(t, 1, prof.Streak)
		require.Equal(t, 1, f.saveStreakCalls)
	})

	t.Run("afternoon after morning does not close", func(t *testing.T) {
		f := &fakeStore{}
		s := newService(f)
		seedEntry(f, 1, date(2024, 1, 5), models.SlotMorning, false)

		_, _, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotAfternoon, Calories: 700})
		require.NoError(t, err)
		require.Zero(t, f.saveStreakCalls)
	})

	t.Run("evening always closes", func(t *testing.T) {
		f := &fakeStore{}
		s := newService(f)
		seedEntry(f, 1, date(2024, 1, 5), models.SlotMorning, false)
		seedEntry(f, 1, date(2024, 1, 5), models.SlotAfternoon, false)

		_, prof, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotEvening, Calories: 600})
		require.NoError(t, err)
		require.Equal(t, 1, prof.Streak)
	})
}

func TestRecordEntry_StoreFaultPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	f := &fakeStore{createErr: boom}
	s := newService(f)

	_, _, err := s.RecordEntry(1, EntryInput{Date: date(2024, 1, 5), MealSlot: models.SlotEvening})
	require.ErrorIs(t, err, boom)
	require.Zero(t, f.saveStreakCalls)
}

func TestDeleteEntry_Reconciliation(t *testing.T) {
	f := &fakeStore{hasProfile: true, profile: Profile{Streak: 4}}
	s := newService(f)
	for day := 1; day <= 4; day++ {
		seedEntry(f, 1, date(2024, 1, day), models.SlotEvening, false)
	}

	// delete 2024-01-03: looking backward from 01-04 the chain now breaks
	// immediately, so only that day counts
	var id uint
	for _, e := range f.entries {
		if e.Date.Equal(date(2024, 1, 3)) {
			id = e.ID
		}
	}
	require.NoError(t, s.DeleteEntry(1, id))

	require.Equal(t, 1, f.profile.Streak)
	require.Equal(t, date(2024, 1, 4), *f.profile.LastDate)
}

func TestDeleteEntry_Missing(t *testing.T) {
	s := newService(&fakeStore{})
	require.ErrorIs(t, s.DeleteEntry(1, 99), ErrNotFound)
}

func TestRecomputeStreak_LimitExceededTerminates(t *testing.T) {
	f := &fakeStore{hasProfile: true}
	s := newService(f)
	seedEntry(f, 1, date(2024, 1, 1), models.SlotEvening, false)
	seedEntry(f, 1, date(2024, 1, 2), models.SlotEvening, true)
	seedEntry(f, 1, date(2024, 1, 3), models.SlotEvening, false)
	seedEntry(f, 1, date(2024, 1, 4), models.SlotEvening, false)

	require.NoError(t, s.RecomputeStreak(1))

	// 01-04 and 01-03 count; 01-02 is the excluded terminator
	require.Equal(t, 2, f.profile.Streak)
	require.Equal(t, date(2024, 1, 4), *f.profile.LastDate)
}

func TestRecomputeStreak_MostRecentDayExceeded(t *testing.T) {
	f := &fakeStore{hasProfile: true, profile: Profile{Streak: 5}}
	s := newService(f)
	seedEntry(f, 1, date(2024, 1, 3), models.SlotEvening, false)
	seedEntry(f, 1, date(2024, 1, 4), models.SlotEvening, true)

	require.NoError(t, s.RecomputeStreak(1))

	require.Equal(t, 0, f.profile.Streak)
	require.Equal(t, date(2024, 1, 4), *f.profile.LastDate)
}

func TestRecomputeStreak_EmptyHistory(t *testing.T) {
	f := &fakeStore{hasProfile: true, profile: Profile{Streak: 6}}
	s := newService(f)

	require.NoError(t, s.RecomputeStreak(1))

	// persisted unconditionally, zero/empty included
	require.Equal(t, 0, f.profile.Streak)
	require.Nil(t, f.profile.LastDate)
}

func TestRecomputeStreak_MultipleSlotsPerDay(t *testing.T) {
	f := &fakeStore{hasProfile: true}
	s := newService(f)
	for day := 3; day <= 4; day++ {
		seedEntry(f, 1, date(2024, 1, day), models.SlotMorning, false)
		seedEntry(f, 1, date(2024, 1, day), models.SlotAfternoon, false)
		seedEntry(f, 1, date(2024, 1, day), models.SlotEvening, false)
	}

	require.NoError(t, s.RecomputeStreak(1))

	// a day with several entries still counts once
	require.Equal(t, 2, f.profile.Streak)
}

func TestAdvanceDay_SkippedDayZeroes(t *testing.T) {
	tracked := date(2024, 1, 10)
	prior := date(2024, 1, 9)
	f := &fakeStore{hasProfile: true, profile: Profile{Streak: 5, LastDate: &prior, TrackedDate: tracked}}
	s := newService(f)

	next, complete, err := s.AdvanceDay(1)
	require.NoError(t, err)
	require.Equal(t, date(2024, 1, 11), next)
	require.False(t, complete)

	// no entries at all for the skipped day: streak zeroed with last_date
	// pinned to that day before the clock moved
	require.Equal(t, 0, f.profile.Streak)
	require.Equal(t, tracked, *f.profile.LastDate)
	require.Equal(t, date(2024, 1, 11), f.profile.TrackedDate)
}

func TestAdvanceDay_KeepsStreakWhenDayHasEntries(t *testing.T) {
	tracked := date(2024, 1, 10)
	f := &fakeStore{hasProfile: true, profile: Profile{Streak: 5, LastDate: &tracked, TrackedDate: tracked}}
	s := newService(f)
	seedEntry(f, 1, tracked, models.SlotMorning, false)

	next, _, err := s.AdvanceDay(1)
	require.NoError(t, err)
	require.Equal(t, date(2024, 1, 11), next)
	require.Equal(t, 5, f.profile.Streak)
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 1, 6, 0, 1, 0, 0, time.UTC)
	require.Equal(t, 1, daysBetween(late, early))
	require.Equal(t, 0, daysBetween(early, early))
}
