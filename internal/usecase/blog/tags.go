package blog

import (
	"net/url"

	"github.com/Guyuepp/devodyssey/domain"
)

// ResolveTagTarget points at the blog listing filtered by tag.
// The tag keeps its original casing.
func (s *Service) ResolveTagTarget(tag string) domain.NavigationTarget {
	q := url.Values{}
	q.Set("tag", tag)
	return domain.NavigationTarget{
		Path:  s.opts.ListingPath,
		Query: q,
	}
}

// FilterByTag keeps the blogs carrying tag, in input order.
func FilterByTag(blogs []domain.Blog, tag string) []domain.Blog {
	res := make([]domain.Blog, 0, len(blogs))
	for i := range blogs {
		if blogs[i].HasTag(tag) {
			res = append(res, blogs[i])
		}
	}
	return res
}
