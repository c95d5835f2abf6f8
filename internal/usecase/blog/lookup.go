package blog

import (
	"net/url"

	"github.com/Guyuepp/devodyssey/domain"
)

// FindBlogByEncodedTitle percent-decodes encodedTitle and returns the first
// blog whose title matches it exactly.
// Returns ErrNotFound on a miss or an undecodable title.
func FindBlogByEncodedTitle(blogs []domain.Blog, encodedTitle string) (domain.Blog, error) {
	title, err := url.PathUnescape(encodedTitle)
	if err != nil {
		return domain.Blog{}, domain.ErrNotFound
	}
	for i := range blogs {
		if blogs[i].Title == title {
			return blogs[i], nil
		}
	}
	return domain.Blog{}, domain.ErrNotFound
}

// ResolveBlogState maps a fetch result and a requested title to exactly one
// of loading, error, not found or found. Loading wins over error.
func ResolveBlogState(res domain.FetchResult, encodedTitle string) domain.BlogViewState {
	if res.Loading {
		return domain.BlogViewState{Status: domain.ViewLoading}
	}
	if res.Err != "" {
		return domain.BlogViewState{Status: domain.ViewError, Message: res.Err}
	}

	blog, err := FindBlogByEncodedTitle(res.Blogs, encodedTitle)
	if err != nil {
		return domain.BlogViewState{Status: domain.ViewNotFound}
	}
	return domain.BlogViewState{Status: domain.ViewFound, Blog: &blog}
}
