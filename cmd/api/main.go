package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/api"
	"github.com/ChrisRobinT/forAthlete/internal/database"
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"github.com/ChrisRobinT/forAthlete/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	// Подключение к базе
	db, err := database.NewPostgres(dsn)
	if err != nil {
		log.Fatal(err)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.User{},
		&models.UserProfile{},
		&models.DailyCheckin{},
		&models.TrainingPlan{},
		&models.WorkoutCompletion{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Репозитории
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	checkinRepo := repository.NewCheckinRepo(db)
	planRepo := repository.NewPlanRepo(db)
	completionRepo := repository.NewCompletionRepo(db)

	// AI-тренер: клиент генеративного сервиса внедряется снаружи,
	// в тестах на его месте фейк
	llm := ai.NewClient(apiKey)
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		llm = ai.NewClientWithURL(ai.DefaultAPIURL, apiKey, model)
	}
	coach := ai.NewCoach(llm)

	// Сервисы
	profileService := service.NewProfileService(profileRepo)
	checkinService := service.NewCheckinService(checkinRepo)
	planService := service.NewPlanService(planRepo, profileRepo, checkinRepo, userRepo, coach)
	coachService := service.NewCoachService(checkinRepo, planRepo, userRepo, coach)
	completionService := service.NewCompletionService(completionRepo)
	userService := service.NewUserService(userRepo)

	// Gin router
	router := gin.Default()

	corsOrigins := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	if os.Getenv("CORS_ORIGINS") == "" {
		corsOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	handlers := api.NewHandlers(profileService, checkinService, planService, coachService, completionService)
	api.SetupRoutes(router, handlers, userService, corsOrigins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("ForAthlete API starting on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to run API server:", err)
	}
}
