package repository

import (
	"errors"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"gorm.io/gorm"
)

type CompletionRepository interface {
	Upsert(completion *models.WorkoutCompletion) (*models.WorkoutCompletion, error)
	FindRange(userID uint, from, to time.Time) ([]*models.WorkoutCompletion, error)
	DeleteByDate(userID uint, date time.Time) error
}

type completionRepo struct {
	db *gorm.DB
}

func NewCompletionRepo(db *gorm.DB) CompletionRepository {
	return &completionRepo{db: db}
}

// Upsert - одна отметка на (атлет, дата): существующая обновляется
func (r *completionRepo) Upsert(completion *models.WorkoutCompletion) (*models.WorkoutCompletion, error) {
	var existing models.WorkoutCompletion
	err := r.db.Where("user_id = ? AND date = ?",
		completion.UserID, completion.Date.Format("2006-01-02")).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.Create(completion).Error
		return completion, err
	}
	if err != nil {
		return nil, err
	}

	existing.WorkoutType = completion.WorkoutType
	existing.Completed = completion.Completed
	existing.Notes = completion.Notes
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *completionRepo) FindRange(userID uint, from, to time.Time) ([]*models.WorkoutCompletion, error) {
	var completions []*models.WorkoutCompletion
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?",
		userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date").
		Find(&completions).Error
	return completions, err
}

func (r *completionRepo) DeleteByDate(userID uint, date time.Time) error {
	res := r.db.Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Delete(&models.WorkoutCompletion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
