package api

import (
	"github.com/ChrisRobinT/forAthlete/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRoutes вешает все маршруты API на gin-роутер
func SetupRoutes(r *gin.Engine, h *Handlers, users *service.UserService, corsOrigins []string) {
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware(corsOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ForAthlete API is running", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(AuthMiddleware(users))

	// Профиль
	apiGroup.POST("/profile", h.CreateProfile)
	apiGroup.GET("/profile", h.GetProfile)
	apiGroup.PUT("/profile", h.UpdateProfile)

	// Чек-ины
	apiGroup.POST("/checkins", h.CreateCheckin)
	apiGroup.GET("/checkins/today", h.GetTodayCheckin)
	apiGroup.GET("/checkins/history", h.GetCheckinHistory)

	// Рекомендация тренера
	apiGroup.GET("/coach/daily-recommendation", h.GetDailyRecommendation)

	// Планы
	apiGroup.POST("/plans/generate", h.GeneratePlan)
	apiGroup.GET("/plans/current", h.GetCurrentPlan)
	apiGroup.GET("/plans/history", h.GetPlanHistory)
	apiGroup.POST("/plans/regenerate-day", h.RegenerateDay)
	apiGroup.POST("/plans/adjust-today", h.AdjustToday)

	// Выполненные тренировки
	apiGroup.POST("/workouts/complete", h.CompleteWorkout)
	apiGroup.GET("/workouts/week", h.GetWeekCompletions)
	apiGroup.DELETE("/workouts/:date", h.DeleteCompletion)
}
