package domain

import (
	"context"
	"time"
)

// UnknownUsername stands in for a missing author.
const UnknownUsername = "unknown"

// Blog is representing one article and its engagement data
type Blog struct {
	ID        int64     `json:"id"`         // Unique identifier
	Title     string    `json:"title"`      // Human readable title, used as the lookup key
	Content   string    `json:"content"`    // Plain text body
	Author    *Author   `json:"author"`     // Optional author, nil when unknown
	Tags      []string  `json:"tags"`       // Ordered tags, possibly empty
	Likes     []Like    `json:"likes"`      // Set of users who liked the blog
	Views     int64     `json:"views"`      // View counter
	Comments  []Comment `json:"comments"`   // nil means not loaded, empty means no comments yet
	CreatedAt time.Time `json:"created_at"` // Creation timestamp
}

// Author represents a user who wrote a blog or a comment.
type Author struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"` // nil when the user never uploaded one
}

// Like is one user's like on a blog
type Like struct {
	UserID int64 `json:"user_id"`
}

// Comment domain model
type Comment struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	CommentedBy Author    `json:"commented_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasTag reports whether the blog carries tag, compared exactly.
func (b *Blog) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BlogDBRepository defines the contract for reading blogs from the database
type BlogDBRepository interface {
	// Fetch retrieves every blog with its author, tags, likes and comments,
	// newest first.
	Fetch(ctx context.Context) ([]Blog, error)
}

// BlogCache holds the fetched blog list between requests.
type BlogCache interface {
	// GetBlogs returns the cached list and whether it is logically expired.
	// Returns ErrCacheMiss if nothing is cached.
	GetBlogs(ctx context.Context) (blogs []Blog, expired bool, err error)
	SetBlogs(ctx context.Context, blogs []Blog, ttl time.Duration) error
}

// BlogRepository is the data-fetching collaborator the usecase layer reads from.
type BlogRepository interface {
	Fetch(ctx context.Context) ([]Blog, error)
}

// BlogUsecase builds the values the rendering layer shows.
type BlogUsecase interface {
	// ListBlogs returns the blogs tagged with tag, or all blogs if tag is empty.
	ListBlogs(ctx context.Context, tag string) ([]Blog, error)

	// Detail resolves a URL encoded title to a view state.
	Detail(ctx context.Context, encodedTitle string) BlogViewState

	ComputeMetrics(blog *Blog) Metrics
	ResolveTagTarget(tag string) NavigationTarget
	ResolveAvatar(author *Author) string
}
