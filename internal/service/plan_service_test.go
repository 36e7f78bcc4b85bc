package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// fakeChatter - фейковый генеративный сервис
type fakeChatter struct {
	response string
	err      error
}

func (f *fakeChatter) Chat(messages []ai.Message, temperature float64, maxTokens int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func weekJSON() string {
	days := ""
	for i, wd := range models.Weekdays {
		if i > 0 {
			days += ","
		}
		days += fmt.Sprintf(`%q: {"type": "run", "workout": "easy run %d", "duration_minutes": 40, "notes": ""}`, wd, i)
	}
	return "{" + days + "}"
}

func newPlanService(llm ai.Chatter) (*PlanService, *fakePlanRepo, *fakeProfileRepo, *fakeCheckinRepo, *fakeUserRepo) {
	planRepo := newFakePlanRepo()
	profileRepo := newFakeProfileRepo()
	checkinRepo := newFakeCheckinRepo()
	userRepo := newFakeUserRepo()
	svc := NewPlanService(planRepo, profileRepo, checkinRepo, userRepo, ai.NewCoach(llm))
	return svc, planRepo, profileRepo, checkinRepo, userRepo
}

func seedProfile(profileRepo *fakeProfileRepo, userID uint) {
	profileRepo.Create(&models.UserProfile{
		UserID:                userID,
		PrimarySport:          "both",
		WeeklyRunVolumeTarget: 180,
		BadmintonSessions: datatypes.NewJSONType([]models.BadmintonSession{
			{Day: "monday", DurationMinutes: 120, Intensity: "hard", Type: "training"},
		}),
	})
}

func TestGenerateWeekDeactivatesPrevious(t *testing.T) {
	svc, planRepo, profileRepo, _, _ := newPlanService(&fakeChatter{response: weekJSON()})
	seedProfile(profileRepo, 1)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	first, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)

	second, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Активен ровно один план - самый новый
	active, err := svc.GetCurrentPlan(1)
	assert.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	activeCount := 0
	for _, p := range planRepo.plans {
		if p.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestGenerateWeekRequiresProfile(t *testing.T) {
	svc, _, _, _, _ := newPlanService(&fakeChatter{response: weekJSON()})

	_, err := svc.GenerateWeek(1, nil)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGenerateWeekUpstreamFailureKeepsOldPlan(t *testing.T) {
	good := &fakeChatter{response: weekJSON()}
	svc, planRepo, profileRepo, checkinRepo, userRepo := newPlanService(good)
	seedProfile(profileRepo, 1)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	first, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)

	// Второй запрос падает на апстриме: старый план остаётся активным
	failing := NewPlanService(planRepo, profileRepo, checkinRepo, userRepo,
		ai.NewCoach(&fakeChatter{err: errors.New("timeout")}))
	_, err = failing.GenerateWeek(1, &start)
	assert.ErrorIs(t, err, ai.ErrGeneration)

	active, err := svc.GetCurrentPlan(1)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
	assert.True(t, active.IsActive)
}

func TestRegenerateDayTouchesOnlyThatDay(t *testing.T) {
	svc, planRepo, profileRepo, checkinRepo, userRepo := newPlanService(&fakeChatter{response: weekJSON()})
	seedProfile(profileRepo, 1)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	plan, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)
	before := plan.Week()

	// Тот же стор, но модель теперь отдаёт один день
	daySvc := NewPlanService(planRepo, profileRepo, checkinRepo, userRepo,
		ai.NewCoach(&fakeChatter{response: `{"type": "cross-training", "workout": "bike 45min", "duration_minutes": 45, "notes": "fresh legs"}`}))

	updated, err := daySvc.RegenerateDay(1, models.Wednesday)
	assert.NoError(t, err)
	after := updated.Week()

	// Среда заменена, дата её осталась серверной
	assert.Equal(t, models.WorkoutCrossTraining, after[models.Wednesday].Type)
	assert.Equal(t, "2025-06-04", after[models.Wednesday].Date)

	// Остальные шесть дней байт-в-байт прежние
	for _, wd := range models.Weekdays {
		if wd == models.Wednesday {
			continue
		}
		assert.Equal(t, before[wd], after[wd], "day %s must be untouched", wd)
	}
}

func TestRegenerateDayWithoutPlan(t *testing.T) {
	svc, _, profileRepo, _, _ := newPlanService(&fakeChatter{response: weekJSON()})
	seedProfile(profileRepo, 1)

	_, err := svc.RegenerateDay(1, models.Friday)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestAdjustTodayRequiresCheckin(t *testing.T) {
	svc, _, profileRepo, _, _ := newPlanService(&fakeChatter{response: weekJSON()})
	seedProfile(profileRepo, 1)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)

	_, err = svc.AdjustToday(1, "")
	assert.ErrorIs(t, err, ErrCheckinNotFound)
}

func TestAdjustTodayPreservesDate(t *testing.T) {
	svc, planRepo, profileRepo, checkinRepo, userRepo := newPlanService(&fakeChatter{response: weekJSON()})
	seedProfile(profileRepo, 1)

	// План на текущую неделю, день "сегодня" присутствует
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	plan, err := svc.GenerateWeek(1, &start)
	assert.NoError(t, err)

	today := time.Now()
	todayDay := models.WeekdayOf(today)
	wantDate := plan.Week()[todayDay].Date

	checkinRepo.Create(&models.DailyCheckin{
		UserID: 1, Date: today, SleepHours: 5, SleepQuality: intp(2), EnergyLevel: intp(2), SorenessLevel: intp(4),
	})

	adjSvc := NewPlanService(planRepo, profileRepo, checkinRepo, userRepo,
		ai.NewCoach(&fakeChatter{response: `{"type": "rest", "workout": "full rest", "duration_minutes": 0, "notes": "", "date": "1999-01-01"}`}))

	updated, err := adjSvc.AdjustToday(1, "take it easy")
	assert.NoError(t, err)
	assert.Equal(t, models.WorkoutRest, updated.Week()[todayDay].Type)
	assert.Equal(t, wantDate, updated.Week()[todayDay].Date)
}

func TestNextMonday(t *testing.T) {
	// Среда -> ближайший понедельник
	wed := time.Date(2025, 6, 4, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), NextMonday(wed))

	// Понедельник -> понедельник через неделю
	mon := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), NextMonday(mon))

	// Воскресенье -> завтра
	sun := time.Date(2025, 6, 8, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), NextMonday(sun))
}
