package models

import "gorm.io/gorm"

// User - аккаунт атлета. Аутентификация живёт снаружи,
// запросы приходят с уже проверенным ID в заголовке.
type User struct {
	gorm.Model
	Name           string `gorm:"size:100;not null"`
	Email          string `gorm:"size:255;uniqueIndex"`
	TelegramChatID int64  `gorm:"index"` // 0 = telegram не привязан
}
