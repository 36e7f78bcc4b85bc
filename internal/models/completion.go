package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutCompletion - отметка о фактически выполненной тренировке.
// Независима от плана: план хранит намерение, отметка - факт.
// Одна на (атлет, дата), повторная запись перезаписывает старую.
type WorkoutCompletion struct {
	gorm.Model
	UserID uint      `gorm:"not null;index:idx_completion_user_date" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date   time.Time `gorm:"type:date;not null;index:idx_completion_user_date" json:"date"`

	WorkoutType string `gorm:"size:50;not null" json:"workout_type"`
	Completed   bool   `gorm:"default:true" json:"completed"`
	Notes       string `gorm:"type:text" json:"notes"`
}
