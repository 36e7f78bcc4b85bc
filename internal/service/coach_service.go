package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"gorm.io/gorm"
)

// CoachService - ежедневная рекомендация по чек-ину.
// Единственный компонент, который глотает сбои апстрима:
// наружу всегда уходит текст, не ошибка.
type CoachService struct {
	checkinRepo repository.CheckinRepository
	planRepo    repository.PlanRepository
	userRepo    repository.UserRepository
	coach       *ai.Coach
}

func NewCoachService(
	checkinRepo repository.CheckinRepository,
	planRepo repository.PlanRepository,
	userRepo repository.UserRepository,
	coach *ai.Coach,
) *CoachService {
	return &CoachService{
		checkinRepo: checkinRepo,
		planRepo:    planRepo,
		userRepo:    userRepo,
		coach:       coach,
	}
}

// DailyRecommendation - рекомендация на сегодня.
// Требует сегодняшний чек-ин; плановая тренировка берётся из
// активного плана, без плана подставляется текст по умолчанию.
func (s *CoachService) DailyRecommendation(userID uint) (ai.Recommendation, error) {
	today := time.Now()

	checkin, err := s.checkinRepo.FindByDate(userID, today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ai.Recommendation{}, ErrCheckinNotFound
	}
	if err != nil {
		return ai.Recommendation{}, err
	}

	name := "the athlete"
	if user, err := s.userRepo.FindByID(userID); err == nil {
		name = user.Name
	}

	return s.coach.DailyRecommendation(name, checkin, s.plannedWorkoutText(userID, today)), nil
}

// plannedWorkoutText - человекочитаемое описание сегодняшней
// тренировки из активного плана, либо "" (Coach подставит дефолт)
func (s *CoachService) plannedWorkoutText(userID uint, today time.Time) string {
	plan, err := s.planRepo.FindActive(userID)
	if err != nil {
		return ""
	}
	entry, ok := plan.Week()[models.WeekdayOf(today)]
	if !ok {
		return ""
	}
	text := fmt.Sprintf("%s: %s (%d min)", entry.Type, entry.Workout, entry.DurationMinutes)
	if entry.Notes != "" {
		text += " - " + entry.Notes
	}
	return text
}
