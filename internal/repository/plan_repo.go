package repository

import (
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanRepository interface {
	ReplaceActive(plan *models.TrainingPlan) (*models.TrainingPlan, error)
	FindActive(userID uint) (*models.TrainingPlan, error)
	FindHistory(userID uint, limit int) ([]*models.TrainingPlan, error)
	SpliceDay(userID uint, day models.Weekday, entry models.DayEntry) (*models.TrainingPlan, error)
}

type planRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

// ReplaceActive деактивирует все активные планы атлета и вставляет
// новый как активный. Advisory-lock на атлета сериализует
// одновременные генерации: при READ COMMITTED голая транзакция не
// видит чужой свежей вставки и оставила бы два активных плана.
func (r *planRepo) ReplaceActive(plan *models.TrainingPlan) (*models.TrainingPlan, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(plan.UserID)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TrainingPlan{}).
			Where("user_id = ? AND is_active = ?", plan.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		plan.IsActive = true
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *planRepo) FindActive(userID uint) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&plan).Error
	return &plan, err
}

func (r *planRepo) FindHistory(userID uint, limit int) ([]*models.TrainingPlan, error) {
	var plans []*models.TrainingPlan
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

// SpliceDay заменяет ровно один день в активном плане.
// План перечитывается под FOR UPDATE внутри транзакции, так что
// гонка regenerate/adjust сериализуется, а не теряет запись.
// Остальные шесть дней остаются байт-в-байт прежними.
func (r *planRepo) SpliceDay(userID uint, day models.Weekday, entry models.DayEntry) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Order("created_at DESC").
			First(&plan).Error; err != nil {
			return err
		}

		week := plan.Week()
		if week == nil {
			week = models.WeekPlan{}
		}
		week[day] = entry
		plan.SetWeek(week)

		return tx.Model(&plan).Update("plan_data", plan.PlanData).Error
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
