package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/devodyssey/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// tags, likes and comments are loaded concurrently
	mock.MatchExpectationsInOrder(false)
	return gdb, mock
}

func TestFetch(t *testing.T) {
	gdb, mock := newMockDB(t)
	now := time.Now()
	avatar := faker.URL()
	title := faker.Sentence()

	blogRows := sqlmock.NewRows([]string{"id", "title", "content", "user_id", "views", "created_at"}).
		AddRow(1, title, "one two three", 1, 12, now).
		AddRow(2, "Orphan", "", nil, 0, now.Add(-time.Hour))
	mock.ExpectQuery("SELECT \\* FROM `blog` ORDER BY created_at DESC").WillReturnRows(blogRows)

	tagRows := sqlmock.NewRows([]string{"blog_id", "name", "position"}).
		AddRow(1, "javascript", 0).
		AddRow(1, "React", 1)
	mock.ExpectQuery("FROM `blog_tag` WHERE blog_id IN").WillReturnRows(tagRows)

	likeRows := sqlmock.NewRows([]string{"blog_id", "user_id", "created_at"}).
		AddRow(1, 5, now).
		AddRow(1, 6, now)
	mock.ExpectQuery("FROM `blog_like` WHERE blog_id IN").WillReturnRows(likeRows)

	commentRows := sqlmock.NewRows([]string{"id", "blog_id", "user_id", "content", "created_at"}).
		AddRow(10, 1, 2, "great post", now).
		AddRow(11, 1, 3, "ghost comment", now)
	mock.ExpectQuery("FROM `comment` WHERE blog_id IN").WillReturnRows(commentRows)

	userRows := sqlmock.NewRows([]string{"id", "username", "avatar_url"}).
		AddRow(1, "author", avatar).
		AddRow(2, "reader", nil)
	mock.ExpectQuery("FROM `user` WHERE id IN").WillReturnRows(userRows)

	repo := NewBlogDBRepository(gdb)
	blogs, err := repo.Fetch(context.TODO())
	require.NoError(t, err)
	require.Len(t, blogs, 2)

	first := blogs[0]
	assert.Equal(t, title, first.Title)
	assert.Equal(t, int64(12), first.Views)
	assert.Equal(t, []string{"javascript", "React"}, first.Tags)
	assert.Equal(t, []domain.Like{{UserID: 5}, {UserID: 6}}, first.Likes)
	require.NotNil(t, first.Author)
	assert.Equal(t, "author", first.Author.Username)
	require.NotNil(t, first.Author.AvatarURL)
	assert.Equal(t, avatar, *first.Author.AvatarURL)

	require.Len(t, first.Comments, 2)
	assert.Equal(t, "reader", first.Comments[0].CommentedBy.Username)
	assert.Nil(t, first.Comments[0].CommentedBy.AvatarURL)
	assert.Equal(t, int64(3), first.Comments[1].CommentedBy.ID)
	assert.Empty(t, first.Comments[1].CommentedBy.Username)

	second := blogs[1]
	assert.Nil(t, second.Author)
	assert.NotNil(t, second.Tags)
	assert.Empty(t, second.Tags)
	assert.NotNil(t, second.Comments)
	assert.Empty(t, second.Comments)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchEmpty(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `blog` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id", "views", "created_at"}))

	blogs, err := NewBlogDBRepository(gdb).Fetch(context.TODO())
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchError(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `blog` ORDER BY created_at DESC").
		WillReturnError(errors.New("Unexpected"))

	blogs, err := NewBlogDBRepository(gdb).Fetch(context.TODO())
	assert.Error(t, err)
	assert.Nil(t, blogs)
}

func TestGetUsersByIDs(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	res, err := repo.GetByIDs(context.TODO(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)

	mock.ExpectQuery("FROM `user` WHERE id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "avatar_url"}).AddRow(7, "grace", nil))
	res, err = repo.GetByIDs(context.TODO(), []int64{7, 8})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "grace", res[7].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
