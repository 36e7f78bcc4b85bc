package service

import (
	"errors"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CheckinService struct {
	repo repository.CheckinRepository
}

func NewCheckinService(repo repository.CheckinRepository) *CheckinService {
	return &CheckinService{repo: repo}
}

// CreateCheckin - записать утренний чек-ин.
// Дубликат на ту же дату отклоняется, оригинал не перезаписывается.
func (s *CheckinService) CreateCheckin(userID uint, dto CreateCheckinDTO) (*models.DailyCheckin, error) {
	if _, err := s.repo.FindByDate(userID, dto.Date); err == nil {
		return nil, ErrCheckinExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	checkin := &models.DailyCheckin{
		UserID:        userID,
		Date:          dto.Date,
		HRV:           dto.HRV,
		RHR:           dto.RHR,
		SleepHours:    dto.SleepHours,
		SleepQuality:  dto.SleepQuality,
		SorenessLevel: dto.SorenessLevel,
		SorenessAreas: datatypes.NewJSONSlice(dto.SorenessAreas),
		EnergyLevel:   dto.EnergyLevel,
		Notes:         dto.Notes,
	}
	return s.repo.Create(checkin)
}

// GetByDate - чек-ин на конкретную дату
func (s *CheckinService) GetByDate(userID uint, date time.Time) (*models.DailyCheckin, error) {
	checkin, err := s.repo.FindByDate(userID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCheckinNotFound
	}
	return checkin, err
}

// GetHistory - последние чек-ины, по дате вниз
func (s *CheckinService) GetHistory(userID uint, limit int) ([]*models.DailyCheckin, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.repo.FindHistory(userID, limit)
}
