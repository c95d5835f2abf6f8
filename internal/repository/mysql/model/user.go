package model

import "github.com/Guyuepp/devodyssey/domain"

type User struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Username  string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	AvatarURL *string `gorm:"column:avatar_url;type:varchar(512)"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.Author {
	return domain.Author{
		ID:        m.ID,
		Username:  m.Username,
		AvatarURL: m.AvatarURL,
	}
}
