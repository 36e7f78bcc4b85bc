package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers содержит зависимости от сервисов
type Handlers struct {
	profileService    *service.ProfileService
	checkinService    *service.CheckinService
	planService       *service.PlanService
	coachService      *service.CoachService
	completionService *service.CompletionService
}

func NewHandlers(
	profileService *service.ProfileService,
	checkinService *service.CheckinService,
	planService *service.PlanService,
	coachService *service.CoachService,
	completionService *service.CompletionService,
) *Handlers {
	return &Handlers{
		profileService:    profileService,
		checkinService:    checkinService,
		planService:       planService,
		coachService:      coachService,
		completionService: completionService,
	}
}

// respondError переводит ошибки сервисов в HTTP-статусы.
// Таксономия: not-found / conflict / validation / сбой генерации.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrCheckinNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrCompletionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrCheckinExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDayConflict),
		errors.Is(err, service.ErrBadWeekday):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ai.ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ---------- Профиль ----------

func (h *Handlers) CreateProfile(c *gin.Context) {
	var dto service.CreateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.CreateProfile(currentUserID(c), dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *Handlers) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handlers) UpdateProfile(c *gin.Context) {
	var dto service.UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(currentUserID(c), dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ---------- Чек-ины ----------

// Диапазоны шкал проверяются на границе, до какой-либо записи.
// Шкальные метрики опциональны: отсутствие - не ошибка.
type createCheckinRequest struct {
	Date          string   `json:"date" binding:"required"`
	HRV           int      `json:"hrv"`
	RHR           int      `json:"rhr"`
	SleepHours    float64  `json:"sleep_hours" binding:"gte=0,lte=24"`
	SleepQuality  *int     `json:"sleep_quality" binding:"omitnil,gte=1,lte=5"`
	SorenessLevel *int     `json:"soreness_level" binding:"omitnil,gte=1,lte=5"`
	SorenessAreas []string `json:"soreness_areas"`
	EnergyLevel   *int     `json:"energy_level" binding:"omitnil,gte=1,lte=5"`
	Notes         string   `json:"notes"`
}

func (h *Handlers) CreateCheckin(c *gin.Context) {
	var req createCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	checkin, err := h.checkinService.CreateCheckin(currentUserID(c), service.CreateCheckinDTO{
		Date:          date,
		HRV:           req.HRV,
		RHR:           req.RHR,
		SleepHours:    req.SleepHours,
		SleepQuality:  req.SleepQuality,
		SorenessLevel: req.SorenessLevel,
		SorenessAreas: req.SorenessAreas,
		EnergyLevel:   req.EnergyLevel,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkin)
}

func (h *Handlers) GetTodayCheckin(c *gin.Context) {
	checkin, err := h.checkinService.GetByDate(currentUserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkin)
}

func (h *Handlers) GetCheckinHistory(c *gin.Context) {
	limit := 30
	if raw := c.Query("limit"); raw != "" {
		n, err := parsePositive(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit, expected a positive integer"})
			return
		}
		limit = n
	}

	checkins, err := h.checkinService.GetHistory(currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkins)
}

// ---------- Ежедневная рекомендация ----------

func (h *Handlers) GetDailyRecommendation(c *gin.Context) {
	rec, err := h.coachService.DailyRecommendation(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	// Сбой апстрима уходит как текст, не как ошибка
	c.JSON(http.StatusOK, gin.H{"recommendation": rec.Text})
}

// ---------- Планы ----------

type generatePlanRequest struct {
	WeekStartDate string `json:"week_start_date"`
}

func (h *Handlers) GeneratePlan(c *gin.Context) {
	// Тело опционально: без него неделя начнётся со следующего понедельника
	var req generatePlanRequest
	_ = c.ShouldBindJSON(&req)

	var startDate *time.Time
	if req.WeekStartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.WeekStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start_date, expected YYYY-MM-DD"})
			return
		}
		startDate = &parsed
	}

	plan, err := h.planService.GenerateWeek(currentUserID(c), startDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *Handlers) GetCurrentPlan(c *gin.Context) {
	plan, err := h.planService.GetCurrentPlan(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handlers) GetPlanHistory(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := parsePositive(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit, expected a positive integer"})
			return
		}
		limit = n
	}

	plans, err := h.planService.GetPlanHistory(currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

type regenerateDayRequest struct {
	Day string `json:"day" binding:"required"`
}

func (h *Handlers) RegenerateDay(c *gin.Context) {
	var req regenerateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, ok := models.ParseWeekday(req.Day)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday: " + req.Day})
		return
	}

	plan, err := h.planService.RegenerateDay(currentUserID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type adjustTodayRequest struct {
	Recommendation string `json:"recommendation"`
}

func (h *Handlers) AdjustToday(c *gin.Context) {
	var req adjustTodayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = adjustTodayRequest{}
	}

	plan, err := h.planService.AdjustToday(currentUserID(c), req.Recommendation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ---------- Выполненные тренировки ----------

type completeWorkoutRequest struct {
	Date        string `json:"date" binding:"required"`
	WorkoutType string `json:"workout_type" binding:"required"`
	Completed   *bool  `json:"completed"`
	Notes       string `json:"notes"`
}

func (h *Handlers) CompleteWorkout(c *gin.Context) {
	var req completeWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	completion, err := h.completionService.CompleteWorkout(currentUserID(c), service.CompleteWorkoutDTO{
		Date:        date,
		WorkoutType: req.WorkoutType,
		Completed:   completed,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

func (h *Handlers) GetWeekCompletions(c *gin.Context) {
	weekStart, err := time.Parse("2006-01-02", c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start, expected YYYY-MM-DD"})
		return
	}

	completions, err := h.completionService.GetWeek(currentUserID(c), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, completions)
}

func (h *Handlers) DeleteCompletion(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.completionService.DeleteCompletion(currentUserID(c), date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "completion deleted"})
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}
