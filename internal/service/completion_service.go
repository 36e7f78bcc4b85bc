package service

import (
	"errors"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"gorm.io/gorm"
)

type CompletionService struct {
	repo repository.CompletionRepository
}

func NewCompletionService(repo repository.CompletionRepository) *CompletionService {
	return &CompletionService{repo: repo}
}

// CompleteWorkout - отметить тренировку выполненной (upsert по дате)
func (s *CompletionService) CompleteWorkout(userID uint, dto CompleteWorkoutDTO) (*models.WorkoutCompletion, error) {
	completion := &models.WorkoutCompletion{
		UserID:      userID,
		Date:        dto.Date,
		WorkoutType: dto.WorkoutType,
		Completed:   dto.Completed,
		Notes:       dto.Notes,
	}
	return s.repo.Upsert(completion)
}

// GetWeek - отметки за неделю, начиная с weekStart
func (s *CompletionService) GetWeek(userID uint, weekStart time.Time) ([]*models.WorkoutCompletion, error) {
	return s.repo.FindRange(userID, weekStart, weekStart.AddDate(0, 0, 6))
}

// DeleteCompletion - удалить отметку за дату
func (s *CompletionService) DeleteCompletion(userID uint, date time.Time) error {
	err := s.repo.DeleteByDate(userID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCompletionNotFound
	}
	return err
}
