package model

import (
	"time"

	"github.com/Guyuepp/devodyssey/domain"
)

type Blog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null;index"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    *int64    `gorm:"column:user_id"` // NULL when the author account is gone
	Views     int64     `gorm:"default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Blog) TableName() string {
	return "blog"
}

// ToDomain converts the row alone; tags, likes, comments and the author are
// attached by the repository.
func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Views:     m.Views,
		Tags:      []string{},
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: m.CreatedAt,
	}
}

type BlogTag struct {
	BlogID   int64  `gorm:"column:blog_id;not null;index"`
	Name     string `gorm:"type:varchar(64);not null"`
	Position int    `gorm:"default:0"`
}

func (BlogTag) TableName() string {
	return "blog_tag"
}

type BlogLike struct {
	BlogID    int64     `gorm:"column:blog_id;not null;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (BlogLike) TableName() string {
	return "blog_like"
}
