package model

import (
	"time"

	"github.com/Guyuepp/devodyssey/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	BlogID    int64     `gorm:"column:blog_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

// ToDomain fills CommentedBy with the bare user ID; the repository swaps in
// the full user when it is known.
func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:          m.ID,
		Text:        m.Content,
		CommentedBy: domain.Author{ID: m.UserID},
		CreatedAt:   m.CreatedAt,
	}
}
