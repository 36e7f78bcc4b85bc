package repository

import (
	"github.com/ChrisRobinT/forAthlete/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	FindByTelegramChatID(chatID int64) (*models.User, error)
	FindAllWithTelegram() ([]*models.User, error)
	LinkTelegram(userID uint, chatID int64) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *models.User) (*models.User, error) {
	err := r.db.Create(user).Error
	return user, err
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepo) FindByTelegramChatID(chatID int64) (*models.User, error) {
	var user models.User
	err := r.db.Where("telegram_chat_id = ?", chatID).First(&user).Error
	return &user, err
}

// FindAllWithTelegram - все атлеты с привязанным telegram-чатом
func (r *userRepo) FindAllWithTelegram() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("telegram_chat_id <> 0").Find(&users).Error
	return users, err
}

func (r *userRepo) LinkTelegram(userID uint, chatID int64) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("telegram_chat_id", chatID).Error
}
