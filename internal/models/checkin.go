package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyCheckin - утренний чек-ин атлета, один на дату.
// Запись неизменяемая: эндпоинта обновления нет, дубликат на ту же
// дату отклоняет сервис до записи в базу.
type DailyCheckin struct {
	gorm.Model
	UserID uint      `gorm:"not null;index:idx_checkin_user_date" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date   time.Time `gorm:"type:date;not null;index:idx_checkin_user_date" json:"date"`

	// Метрики восстановления. Шкальные метрики опциональны:
	// NULL проходит check-констрейнт, 0 его бы нарушил.
	HRV          int     `json:"hrv"` // вариабельность пульса, мс
	RHR          int     `json:"rhr"` // пульс покоя
	SleepHours   float64 `json:"sleep_hours"`
	SleepQuality *int    `gorm:"check:sleep_quality >= 1 AND sleep_quality <= 5" json:"sleep_quality"`

	SorenessLevel *int                        `gorm:"check:soreness_level >= 1 AND soreness_level <= 5" json:"soreness_level"`
	SorenessAreas datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"soreness_areas"` // ["quads", "calves"]
	EnergyLevel   *int                        `gorm:"check:energy_level >= 1 AND energy_level <= 5" json:"energy_level"`

	Notes string `gorm:"type:text" json:"notes"`
}
