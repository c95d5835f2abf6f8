package blog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/devodyssey/domain"
)

const (
	DefaultWordsPerMinute = 200
	DefaultAvatarBaseURL  = "https://api.dicebear.com/7.x/initials/svg"
	DefaultListingPath    = "/blogs"
)

// Options tunes the derived values. Zero fields take the defaults above.
type Options struct {
	WordsPerMinute int
	AvatarBaseURL  string
	ListingPath    string
}

func (o Options) withDefaults() Options {
	if o.WordsPerMinute <= 0 {
		o.WordsPerMinute = DefaultWordsPerMinute
	}
	if o.AvatarBaseURL == "" {
		o.AvatarBaseURL = DefaultAvatarBaseURL
	}
	if o.ListingPath == "" {
		o.ListingPath = DefaultListingPath
	}
	return o
}

type Service struct {
	blogRepo domain.BlogRepository
	opts     Options
}

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(repo domain.BlogRepository, opts Options) *Service {
	return &Service{
		blogRepo: repo,
		opts:     opts.withDefaults(),
	}
}

func (s *Service) ListBlogs(ctx context.Context, tag string) ([]domain.Blog, error) {
	blogs, err := s.blogRepo.Fetch(ctx)
	if err != nil {
		logrus.Errorf("failed to Fetch blogs from repo: %v", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if tag == "" {
		return blogs, nil
	}
	return FilterByTag(blogs, tag), nil
}

func (s *Service) Detail(ctx context.Context, encodedTitle string) domain.BlogViewState {
	var res domain.FetchResult
	blogs, err := s.blogRepo.Fetch(ctx)
	if err != nil {
		logrus.Errorf("failed to Fetch blogs from repo: %v", err)
		res.Err = err.Error()
	} else {
		res.Blogs = blogs
	}
	return ResolveBlogState(res, encodedTitle)
}
