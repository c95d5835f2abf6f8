package domain

import (
	"net/url"
)

// CommentState tells apart a blog whose comments were never loaded from one
// that simply has none yet.
type CommentState string

const (
	CommentsNotLoaded CommentState = "not_loaded"
	CommentsEmpty     CommentState = "empty"
	CommentsPresent   CommentState = "present"
)

// Metrics are the engagement numbers shown next to a blog
type Metrics struct {
	ReadingTimeMinutes int          `json:"reading_time_minutes"` // always >= 1
	LikeCount          int          `json:"like_count"`
	ViewCount          int64        `json:"view_count"`
	CommentCount       int          `json:"comment_count"`
	CommentState       CommentState `json:"comment_state"`
}

// NavigationTarget describes a route plus query parameters, independent of
// whichever router performs the transition.
type NavigationTarget struct {
	Path  string     `json:"path"`
	Query url.Values `json:"query"`
}

// String renders the target as a relative URL, e.g. "/blogs?tag=javascript".
func (n NavigationTarget) String() string {
	u := url.URL{Path: n.Path, RawQuery: n.Query.Encode()}
	return u.String()
}

// ViewStatus is the presentation state of a blog detail page.
type ViewStatus string

const (
	ViewLoading  ViewStatus = "loading"
	ViewError    ViewStatus = "error"
	ViewNotFound ViewStatus = "not_found"
	ViewFound    ViewStatus = "found"
)

// BlogViewState carries exactly one of the four detail page states.
// Message is set only for ViewError, Blog only for ViewFound.
type BlogViewState struct {
	Status  ViewStatus
	Message string
	Blog    *Blog
}

// FetchResult is what the data-fetching collaborator hands over for a listing.
type FetchResult struct {
	Blogs   []Blog
	Loading bool
	Err     string // empty when the fetch succeeded
}
