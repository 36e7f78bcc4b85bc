package ai

import (
	"errors"
	"testing"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDailyRecommendationText(t *testing.T) {
	llm := &fakeChatter{response: "Proceed with the planned workout, you are well recovered."}
	coach := NewCoach(llm)

	checkin := &models.DailyCheckin{
		SleepHours: 8, SleepQuality: intp(4), HRV: 65, RHR: 48, EnergyLevel: intp(4), SorenessLevel: intp(1),
	}
	rec := coach.DailyRecommendation("Chris", checkin, "Easy run 40 min")

	assert.False(t, rec.Failed)
	assert.Equal(t, "Proceed with the planned workout, you are well recovered.", rec.Text)
	assert.Contains(t, llm.lastUser, "Sleep: 8.0 hours, quality 4/5")
	assert.Contains(t, llm.lastUser, "Planned workout: Easy run 40 min")
}

// Сбой апстрима не пробрасывается: наружу уходит текст с описанием
func TestDailyRecommendationDegradesToText(t *testing.T) {
	llm := &fakeChatter{err: errors.New("connection refused")}
	coach := NewCoach(llm)

	rec := coach.DailyRecommendation("Chris", &models.DailyCheckin{}, "")

	assert.True(t, rec.Failed)
	assert.Contains(t, rec.Text, "Error getting recommendation")
	assert.Contains(t, rec.FailureReason, "connection refused")
}

func TestDailyRecommendationDefaultWorkout(t *testing.T) {
	llm := &fakeChatter{response: "ok"}
	coach := NewCoach(llm)

	coach.DailyRecommendation("Chris", &models.DailyCheckin{}, "")
	assert.Contains(t, llm.lastUser, DefaultPlannedWorkout)
}

// Чек-ин без шкальных метрик: в промпте N/A, не ноль
func TestDailyRecommendationOmittedMetrics(t *testing.T) {
	llm := &fakeChatter{response: "ok"}
	coach := NewCoach(llm)

	coach.DailyRecommendation("Chris", &models.DailyCheckin{SleepHours: 7}, "")
	assert.Contains(t, llm.lastUser, "quality N/A/5")
	assert.Contains(t, llm.lastUser, "Energy level: N/A/5")
	assert.Contains(t, llm.lastUser, "Soreness level: N/A/5")
}
