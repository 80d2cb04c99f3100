package services

import (
	"errors"
	"time"

	"github.com/Alexeya-png/fitness-tracker/models"

	"gorm.io/gorm"
)

// GormStore is the production EntryStore/ProfileStore, backed by Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var (
	_ EntryStore   = (*GormStore)(nil)
	_ ProfileStore = (*GormStore)(nil)
)

func (s *GormStore) GetEntry(userID uint, date time.Time, slot string) (*models.DailyEntry, error) {
	var e models.DailyEntry
	err := s.db.
		Where("user_id = ? AND date = ? AND meal_slot = ?", userID, date, slot).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormStore) CreateEntry(e *models.DailyEntry) error {
	return s.db.Create(e).Error
}

func (s *GormStore) EntriesByDate(userID uint, date time.Time) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) EntriesByDateDesc(userID uint) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) GetEntryByID(userID, entryID uint) (*models.DailyEntry, error) {
	var e models.DailyEntry
	err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormStore) DeleteEntry(userID, entryID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.DailyEntry{}).Error
}

func (s *GormStore) GetProfile(userID uint) (Profile, error) {
	var u models.User
	err := s.db.First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	return Profile{Streak: u.Streak, LastDate: u.LastDate, TrackedDate: u.TrackedDate}, nil
}

// SaveStreak writes streak and last_date in a single UPDATE so a partial
// profile update is never visible.
func (s *GormStore) SaveStreak(userID uint, streak int, lastDate *time.Time) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"streak": streak, "last_date": lastDate}).Error
}

func (s *GormStore) SetTrackedDate(userID uint, date time.Time) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("tracked_date", date).Error
}
