package mysql

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/repository/mysql/model"
)

type blogRepository struct {
	DB    *gorm.DB
	users *userRepository
}

// the mysql layer only reads rows; caching lives one level up
var _ domain.BlogDBRepository = (*blogRepository)(nil)

// NewBlogDBRepository creates the database layer
func NewBlogDBRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{
		DB:    db,
		users: NewUserRepository(db),
	}
}

func (m *blogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	var rows []model.Blog
	if err := m.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Blog{}, nil
	}

	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}

	var (
		tags     []model.BlogTag
		likes    []model.BlogLike
		comments []model.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.DB.WithContext(gctx).Where("blog_id IN ?", ids).Order("position").Find(&tags).Error
	})
	g.Go(func() error {
		return m.DB.WithContext(gctx).Where("blog_id IN ?", ids).Find(&likes).Error
	})
	g.Go(func() error {
		return m.DB.WithContext(gctx).Where("blog_id IN ?", ids).Order("created_at").Find(&comments).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	users, err := m.users.GetByIDs(ctx, collectUserIDs(rows, comments))
	if err != nil {
		return nil, err
	}

	res := make([]domain.Blog, len(rows))
	index := make(map[int64]int, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
		index[rows[i].ID] = i
		if rows[i].UserID == nil {
			continue
		}
		if u, ok := users[*rows[i].UserID]; ok {
			res[i].Author = &u
		} else {
			logrus.Warnf("author %d of blog %d not found", *rows[i].UserID, rows[i].ID)
		}
	}

	for _, t := range tags {
		if i, ok := index[t.BlogID]; ok {
			res[i].Tags = append(res[i].Tags, t.Name)
		}
	}
	for _, l := range likes {
		if i, ok := index[l.BlogID]; ok {
			res[i].Likes = append(res[i].Likes, domain.Like{UserID: l.UserID})
		}
	}
	for _, c := range comments {
		i, ok := index[c.BlogID]
		if !ok {
			continue
		}
		dc := c.ToDomain()
		if u, ok := users[c.UserID]; ok {
			dc.CommentedBy = u
		}
		res[i].Comments = append(res[i].Comments, dc)
	}

	return res, nil
}

func collectUserIDs(blogs []model.Blog, comments []model.Comment) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0, len(blogs)+len(comments))
	add := func(id int64) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, b := range blogs {
		if b.UserID != nil {
			add(*b.UserID)
		}
	}
	for _, c := range comments {
		add(c.UserID)
	}
	return ids
}
