package main

import (
	"os"

	"github.com/ChrisRobinT/forAthlete/internal/ai"
	"github.com/ChrisRobinT/forAthlete/internal/bot"
	"github.com/ChrisRobinT/forAthlete/internal/database"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"github.com/ChrisRobinT/forAthlete/internal/service"
	"github.com/ChrisRobinT/forAthlete/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		utils.Log.Error("TELEGRAM_TOKEN not set")
		os.Exit(1)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		utils.Log.Error("OPENAI_API_KEY not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE (миграции гоняет cmd/api, бот только читает)
	db, err := database.NewPostgres(dsn)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	// -----------------------
	// REPOSITORIES + SERVICES
	userRepo := repository.NewUserRepo(db)
	checkinRepo := repository.NewCheckinRepo(db)
	planRepo := repository.NewPlanRepo(db)

	llm := ai.NewClient(apiKey)
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		llm = ai.NewClientWithURL(ai.DefaultAPIURL, apiKey, model)
	}
	coach := ai.NewCoach(llm)

	userService := service.NewUserService(userRepo)
	coachService := service.NewCoachService(checkinRepo, planRepo, userRepo, coach)

	// -----------------------
	// BOT
	botApp, err := bot.NewBotApp(token, userService, coachService)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	// Утреннее напоминание по расписанию
	reminderSpec := os.Getenv("REMINDER_CRON")
	if reminderSpec == "" {
		reminderSpec = "0 0 7 * * *" // каждый день в 07:00
	}

	c := cron.New()
	if err := c.AddFunc(reminderSpec, botApp.SendMorningReminders); err != nil {
		utils.Log.Error("Failed to schedule reminders: " + err.Error())
		os.Exit(1)
	}
	c.Start()
	defer c.Stop()

	utils.Log.Info("Telegram bot starting...")
	botApp.Run()
}
