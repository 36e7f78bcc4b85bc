package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Weekday - день недели в плане (ключи plan_data)
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays - все дни недели по порядку, с понедельника.
// Порядок важен: смещение дня в неделе = индекс в этом массиве.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday проверяет имя дня недели
func ParseWeekday(s string) (Weekday, bool) {
	for _, wd := range Weekdays {
		if string(wd) == s {
			return wd, true
		}
	}
	return "", false
}

// Offset - смещение дня от начала недели (понедельник = 0)
func (w Weekday) Offset() int {
	for i, wd := range Weekdays {
		if wd == w {
			return i
		}
	}
	return 0
}

// WeekdayOf переводит time.Weekday в наш Weekday
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday считает с воскресенья
	switch t.Weekday() {
	case time.Sunday:
		return Sunday
	default:
		return Weekdays[int(t.Weekday())-1]
	}
}

// WorkoutType - тип тренировки в дне плана
type WorkoutType string

const (
	WorkoutRun           WorkoutType = "run"
	WorkoutBadminton     WorkoutType = "badminton"
	WorkoutRest          WorkoutType = "rest"
	WorkoutStrength      WorkoutType = "strength"
	WorkoutCrossTraining WorkoutType = "cross-training"
)

// Valid проверяет, что тип из фиксированного набора
func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutRun, WorkoutBadminton, WorkoutRest, WorkoutStrength, WorkoutCrossTraining:
		return true
	}
	return false
}

// DayEntry - один день недельного плана
type DayEntry struct {
	Type            WorkoutType `json:"type"`
	Workout         string      `json:"workout"`
	DurationMinutes int         `json:"duration_minutes"`
	Notes           string      `json:"notes"`
	Date            string      `json:"date"` // YYYY-MM-DD, проставляется сервером
}

// WeekPlan - недельный план: день недели -> тренировка.
// Всегда содержит все семь ключей после генерации.
type WeekPlan map[Weekday]DayEntry

// TrainingPlan - сохранённый недельный план.
// У атлета в любой момент не больше одного активного плана,
// это гарантирует PlanRepository.ReplaceActive.
type TrainingPlan struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	WeekStartDate time.Time                    `gorm:"type:date;not null" json:"week_start_date"`
	PlanData      datatypes.JSONType[WeekPlan] `gorm:"type:jsonb;not null" json:"plan_data"`
	IsActive      bool                         `gorm:"default:false;index" json:"is_active"`
}

// Week возвращает типизированный план
func (p *TrainingPlan) Week() WeekPlan {
	return p.PlanData.Data()
}

// SetWeek сохраняет план в jsonb-колонку
func (p *TrainingPlan) SetWeek(wp WeekPlan) {
	p.PlanData = datatypes.NewJSONType(wp)
}
