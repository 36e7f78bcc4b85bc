package service

import (
	"errors"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"gorm.io/gorm"
)

// PlanService - оркестрация генерации и правок недельного плана.
// Все локальные проверки (профиль, план, чек-ин) идут до вызова
// генеративного сервиса, чтобы не жечь апстрим впустую.
type PlanService struct {
	planRepo    repository.PlanRepository
	profileRepo repository.ProfileRepository
	checkinRepo repository.CheckinRepository
	userRepo    repository.UserRepository
	coach       *ai.Coach
}

func NewPlanService(
	planRepo repository.PlanRepository,
	profileRepo repository.ProfileRepository,
	checkinRepo repository.CheckinRepository,
	userRepo repository.UserRepository,
	coach *ai.Coach,
) *PlanService {
	return &PlanService{
		planRepo:    planRepo,
		profileRepo: profileRepo,
		checkinRepo: checkinRepo,
		userRepo:    userRepo,
		coach:       coach,
	}
}

// GenerateWeek генерирует план на неделю и делает его активным,
// деактивируя прежние. При сбое генерации ничего не сохраняется.
func (s *PlanService) GenerateWeek(userID uint, startDate *time.Time) (*models.TrainingPlan, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	weekStart := NextMonday(time.Now())
	if startDate != nil {
		weekStart = *startDate
	}

	week, err := s.coach.GenerateWeek(s.userName(userID), profile, weekStart)
	if err != nil {
		return nil, err
	}

	plan := &models.TrainingPlan{
		UserID:        userID,
		WeekStartDate: weekStart,
	}
	plan.SetWeek(week)
	return s.planRepo.ReplaceActive(plan)
}

// GetCurrentPlan - активный план атлета
func (s *PlanService) GetCurrentPlan(userID uint) (*models.TrainingPlan, error) {
	plan, err := s.planRepo.FindActive(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	return plan, err
}

// GetPlanHistory - прошлые планы, новые сверху
func (s *PlanService) GetPlanHistory(userID uint, limit int) ([]*models.TrainingPlan, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.planRepo.FindHistory(userID, limit)
}

// RegenerateDay заменяет один день активного плана, не трогая
// остальные шесть. Запись в план только после успешного парсинга.
func (s *PlanService) RegenerateDay(userID uint, day models.Weekday) (*models.TrainingPlan, error) {
	plan, err := s.planRepo.FindActive(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	date := plan.WeekStartDate.AddDate(0, 0, day.Offset())
	entry, err := s.coach.RegenerateDay(s.userName(userID), profile, day, date, plan.Week())
	if err != nil {
		return nil, err
	}

	return s.planRepo.SpliceDay(userID, day, entry)
}

// AdjustToday корректирует сегодняшний день активного плана по
// утреннему чек-ину. Дата дня остаётся прежней.
func (s *PlanService) AdjustToday(userID uint, recommendation string) (*models.TrainingPlan, error) {
	today := time.Now()

	checkin, err := s.checkinRepo.FindByDate(userID, today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindActive(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	day := models.WeekdayOf(today)
	current, ok := plan.Week()[day]
	if !ok {
		return nil, ErrPlanNotFound
	}

	entry, err := s.coach.AdjustToday(current, checkin, recommendation)
	if err != nil {
		return nil, err
	}

	return s.planRepo.SpliceDay(userID, day, entry)
}

func (s *PlanService) userName(userID uint) string {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "the athlete"
	}
	return user.Name
}

// NextMonday - ближайший будущий понедельник.
// Если сегодня понедельник, неделя начнётся через семь дней.
func NextMonday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() == time.Monday {
			return d
		}
	}
}
