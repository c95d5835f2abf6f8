package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

// NewUserRepository reads blog and comment authors
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

// GetByIDs returns the users found, keyed by ID. Unknown IDs are absent.
func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) (map[int64]domain.Author, error) {
	res := make(map[int64]domain.Author, len(uids))
	if len(uids) == 0 {
		return res, nil
	}

	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id IN ?", uids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		res[users[i].ID] = users[i].ToDomain()
	}
	return res, nil
}
