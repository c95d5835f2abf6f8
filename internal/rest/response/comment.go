package response

import "github.com/Guyuepp/devodyssey/domain"

type Comment struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	CommentedBy User   `json:"commented_by"`
	CreatedAt   string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment, p Presenter) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:          c.ID,
		Text:        c.Text,
		CommentedBy: NewAuthorFromDomain(&c.CommentedBy, p),
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
	}
}
