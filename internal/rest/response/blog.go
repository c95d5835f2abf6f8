package response

import (
	"strings"
	"unicode/utf8"

	"github.com/Guyuepp/devodyssey/domain"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	ExcerptRunes   = 160
)

// Presenter derives the display values a response needs.
type Presenter interface {
	ComputeMetrics(blog *domain.Blog) domain.Metrics
	ResolveTagTarget(tag string) domain.NavigationTarget
	ResolveAvatar(author *domain.Author) string
}

type Tag struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type BlogCard struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Author    User           `json:"author"`
	Tags      []Tag          `json:"tags"`
	Metrics   domain.Metrics `json:"metrics"`
	CreatedAt string         `json:"created_at"`
}

type BlogList struct {
	DisplayMode domain.DisplayMode `json:"display_mode"`
	Tag         string             `json:"tag,omitempty"`
	Blogs       []BlogCard         `json:"blogs"`
}

type BlogDetail struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    User           `json:"author"`
	Tags      []Tag          `json:"tags"`
	Metrics   domain.Metrics `json:"metrics"`
	Comments  []*Comment     `json:"comments"`
	CreatedAt string         `json:"created_at"`
}

func NewBlogCardFromDomain(b *domain.Blog, p Presenter) BlogCard {
	return BlogCard{
		ID:        b.ID,
		Title:     b.Title,
		Excerpt:   excerpt(b.Content, ExcerptRunes),
		Author:    NewAuthorFromDomain(b.Author, p),
		Tags:      newTags(b.Tags, p),
		Metrics:   p.ComputeMetrics(b),
		CreatedAt: b.CreatedAt.Format(DateTimeFormat),
	}
}

func NewBlogListFromDomain(blogs []domain.Blog, mode domain.DisplayMode, tag string, p Presenter) BlogList {
	res := BlogList{
		DisplayMode: mode,
		Tag:         tag,
		Blogs:       make([]BlogCard, len(blogs)),
	}
	for i := range blogs {
		res.Blogs[i] = NewBlogCardFromDomain(&blogs[i], p)
	}
	return res
}

// NewBlogDetailFromDomain: Domain -> Response
func NewBlogDetailFromDomain(b *domain.Blog, p Presenter) BlogDetail {
	comments := make([]*Comment, 0, len(b.Comments))
	for i := range b.Comments {
		comments = append(comments, NewCommentFromDomain(&b.Comments[i], p))
	}
	return BlogDetail{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    NewAuthorFromDomain(b.Author, p),
		Tags:      newTags(b.Tags, p),
		Metrics:   p.ComputeMetrics(b),
		Comments:  comments,
		CreatedAt: b.CreatedAt.Format(DateTimeFormat),
	}
}

func newTags(tags []string, p Presenter) []Tag {
	res := make([]Tag, len(tags))
	for i, t := range tags {
		res[i] = Tag{Name: t, Href: p.ResolveTagTarget(t).String()}
	}
	return res
}

func excerpt(content string, n int) string {
	content = strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	return string([]rune(content)[:n]) + "…"
}
