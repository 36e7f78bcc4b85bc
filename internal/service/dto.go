package service

import (
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
)

// Profile DTOs
type CreateProfileDTO struct {
	PrimarySport          string                    `json:"primary_sport" binding:"required"`
	BadmintonSessions     []models.BadmintonSession `json:"badminton_sessions"`
	RunningGoal           string                    `json:"running_goal"`
	TargetRace            string                    `json:"target_race"`
	WeeklyRunVolumeTarget int                       `json:"weekly_run_volume_target"`
	RunningExperience     *models.RunningExperience `json:"running_experience"`
	PreferredRunDays      []string                  `json:"preferred_run_days"`
	AvoidRunDays          []string                  `json:"avoid_run_days"`
	MorningPerson         *bool                     `json:"morning_person"`
	CurrentInjuries       []models.InjuryItem       `json:"current_injuries"`
	InjuryHistory         []models.InjuryItem       `json:"injury_history"`
	SleepAverage          float64                   `json:"sleep_average"`
	OtherCommitments      string                    `json:"other_commitments"`
}

// UpdateProfileDTO - частичное обновление: nil-поля не трогаются
type UpdateProfileDTO struct {
	PrimarySport          *string                    `json:"primary_sport"`
	BadmintonSessions     *[]models.BadmintonSession `json:"badminton_sessions"`
	RunningGoal           *string                    `json:"running_goal"`
	TargetRace            *string                    `json:"target_race"`
	WeeklyRunVolumeTarget *int                       `json:"weekly_run_volume_target"`
	RunningExperience     *models.RunningExperience  `json:"running_experience"`
	PreferredRunDays      *[]string                  `json:"preferred_run_days"`
	AvoidRunDays          *[]string                  `json:"avoid_run_days"`
	MorningPerson         *bool                      `json:"morning_person"`
	CurrentInjuries       *[]models.InjuryItem       `json:"current_injuries"`
	InjuryHistory         *[]models.InjuryItem       `json:"injury_history"`
	SleepAverage          *float64                   `json:"sleep_average"`
	OtherCommitments      *string                    `json:"other_commitments"`
}

// Check-in DTO. Шкальные метрики 1-5 опциональны, nil = не заполнено
type CreateCheckinDTO struct {
	Date          time.Time
	HRV           int
	RHR           int
	SleepHours    float64
	SleepQuality  *int
	SorenessLevel *int
	SorenessAreas []string
	EnergyLevel   *int
	Notes         string
}

// Completion DTO
type CompleteWorkoutDTO struct {
	Date        time.Time
	WorkoutType string
	Completed   bool
	Notes       string
}
