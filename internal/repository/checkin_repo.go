package repository

import (
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"gorm.io/gorm"
)

type CheckinRepository interface {
	Create(checkin *models.DailyCheckin) (*models.DailyCheckin, error)
	FindByDate(userID uint, date time.Time) (*models.DailyCheckin, error)
	FindHistory(userID uint, limit int) ([]*models.DailyCheckin, error)
}

type checkinRepo struct {
	db *gorm.DB
}

func NewCheckinRepo(db *gorm.DB) CheckinRepository {
	return &checkinRepo{db: db}
}

func (r *checkinRepo) Create(checkin *models.DailyCheckin) (*models.DailyCheckin, error) {
	err := r.db.Create(checkin).Error
	return checkin, err
}

// FindByDate ищет чек-ин строго по дате (без диапазонов)
func (r *checkinRepo) FindByDate(userID uint, date time.Time) (*models.DailyCheckin, error) {
	var checkin models.DailyCheckin
	err := r.db.Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&checkin).Error
	return &checkin, err
}

func (r *checkinRepo) FindHistory(userID uint, limit int) ([]*models.DailyCheckin, error) {
	var checkins []*models.DailyCheckin
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&checkins).Error
	return checkins, err
}
