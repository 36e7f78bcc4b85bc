package service

import (
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetByID - пользователь по ID
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.repo.FindByID(id)
}

// GetByTelegramChatID - пользователь по привязанному чату
func (s *UserService) GetByTelegramChatID(chatID int64) (*models.User, error) {
	return s.repo.FindByTelegramChatID(chatID)
}

// ListWithTelegram - все атлеты с привязанным telegram
func (s *UserService) ListWithTelegram() ([]*models.User, error) {
	return s.repo.FindAllWithTelegram()
}

// LinkTelegram привязывает telegram-чат к атлету
func (s *UserService) LinkTelegram(userID uint, chatID int64) error {
	return s.repo.LinkTelegram(userID, chatID)
}
