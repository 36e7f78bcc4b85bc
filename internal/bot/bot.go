package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChrisRobinT/forAthlete/internal/service"
	"github.com/ChrisRobinT/forAthlete/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotApp - telegram-бот напоминаний. Утром пинает атлетов сделать
// чек-ин, по команде /recommend присылает рекомендацию тренера.
type BotApp struct {
	API *tgbotapi.BotAPI

	userService  *service.UserService
	coachService *service.CoachService
}

// NewBotApp - конструктор бота
func NewBotApp(token string, userService *service.UserService, coachService *service.CoachService) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		API:          botAPI,
		userService:  userService,
		coachService: coachService,
	}, nil
}

// Run - цикл обработки сообщений
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	utils.Log.Info("🤖 Bot started")

	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *BotApp) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case strings.HasPrefix(msg.Text, "/start"):
		b.handleStart(chatID, msg.Text)
	case msg.Text == "/recommend":
		b.handleRecommend(chatID)
	default:
		b.send(chatID, "Команды: /start <ваш ID> - привязать аккаунт, /recommend - рекомендация на сегодня")
	}
}

// handleStart привязывает чат к аккаунту: /start <userID>
func (b *BotApp) handleStart(chatID int64, text string) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.send(chatID, "Привет! Пришлите /start <ваш ID>, чтобы привязать аккаунт.")
		return
	}

	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		b.send(chatID, "ID должен быть числом.")
		return
	}
	if _, err := b.userService.GetByID(uint(id)); err != nil {
		b.send(chatID, "Аккаунт не найден.")
		return
	}
	if err := b.userService.LinkTelegram(uint(id), chatID); err != nil {
		utils.Log.Error("Failed to link telegram: " + err.Error())
		b.send(chatID, "Не получилось привязать, попробуйте позже.")
		return
	}
	b.send(chatID, "✅ Аккаунт привязан. Утром пришлю напоминание о чек-ине.")
}

// handleRecommend - рекомендация тренера на сегодня
func (b *BotApp) handleRecommend(chatID int64) {
	user, err := b.userService.GetByTelegramChatID(chatID)
	if err != nil {
		b.send(chatID, "Сначала привяжите аккаунт: /start <ваш ID>")
		return
	}

	rec, err := b.coachService.DailyRecommendation(user.ID)
	if err != nil {
		// Нет чек-ина на сегодня
		b.send(chatID, "Сначала заполните утренний чек-ин в приложении.")
		return
	}
	b.send(chatID, rec.Text)
}

// SendMorningReminders шлёт утреннее напоминание всем привязанным атлетам
func (b *BotApp) SendMorningReminders() {
	users, err := b.userService.ListWithTelegram()
	if err != nil {
		utils.Log.Error("Failed to list users for reminders: " + err.Error())
		return
	}

	for _, user := range users {
		b.send(user.TelegramChatID,
			fmt.Sprintf("Доброе утро, %s! Не забудьте утренний чек-ин - после него будет рекомендация на день.", user.Name))
	}
	utils.Log.Infof("Morning reminders sent to %d athletes", len(users))
}

func (b *BotApp) send(chatID int64, text string) {
	if _, err := b.API.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		utils.Log.Errorf("Failed to send message to chat %d: %v", chatID, err)
	}
}
