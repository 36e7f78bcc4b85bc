package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InjuryItem - текущая или прошлая травма
type InjuryItem struct {
	Area     string `json:"area"`
	Severity string `json:"severity"` // "minor", "moderate", "severe"
	Notes    string `json:"notes,omitempty"`
}

// BadmintonSession - фиксированная бадминтонная сессия в расписании
type BadmintonSession struct {
	Day             string `json:"day"` // "monday" ... "sunday"
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"` // "light", "moderate", "hard", "competition"
	Type            string `json:"type"`      // "training", "competition", "social"
	Notes           string `json:"notes,omitempty"`
}

// RunningExperience - беговой опыт атлета
type RunningExperience struct {
	YearsRunning        int               `json:"years_running,omitempty"`
	CurrentWeeklyVolume int               `json:"current_weekly_volume,omitempty"` // минут в неделю сейчас
	LongestRun          int               `json:"longest_run,omitempty"`           // минут
	RecentRaceTimes     map[string]string `json:"recent_race_times,omitempty"`     // {"5K": "23:45", "10K": "50:30"}
	TrainingPhase       string            `json:"training_phase,omitempty"`        // "base", "build", "peak", "recovery"
}

// UserProfile - профиль атлета, 1:1 с User.
// Создаётся при онбординге, дальше только обновляется.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Приоритет спорта: "running", "badminton", "both"
	PrimarySport string `gorm:"size:50" json:"primary_sport"`

	// Бадминтонное расписание со всеми деталями
	BadmintonSessions datatypes.JSONType[[]BadmintonSession] `gorm:"type:jsonb" json:"badminton_sessions"`

	// Беговые цели
	RunningGoal           string                                `gorm:"type:text" json:"running_goal"`           // "improve 800m to sub-2min"
	TargetRace            string                                `gorm:"size:200" json:"target_race"`             // "800m in 6 weeks"
	WeeklyRunVolumeTarget int                                   `json:"weekly_run_volume_target"`                // целевые минуты в неделю
	RunningExperience     datatypes.JSONType[RunningExperience] `gorm:"type:jsonb" json:"running_experience"`

	// Предпочтения по дням
	PreferredRunDays datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"preferred_run_days"`
	AvoidRunDays     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"avoid_run_days"`
	MorningPerson    *bool                       `json:"morning_person"`

	// Восстановление и ограничения
	CurrentInjuries  datatypes.JSONType[[]InjuryItem] `gorm:"type:jsonb" json:"current_injuries"`
	InjuryHistory    datatypes.JSONType[[]InjuryItem] `gorm:"type:jsonb" json:"injury_history"`
	SleepAverage     float64                          `json:"sleep_average"`
	OtherCommitments string                           `gorm:"type:text" json:"other_commitments"` // "Work travel Wednesdays"
}
