package blog

import (
	"strings"

	"github.com/Guyuepp/devodyssey/domain"
)

// CountWords splits content on whitespace runs, ignoring empty tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime returns ceil(words/wpm), never less than one minute.
func ReadingTime(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return max(minutes, 1)
}

// ComputeMetrics derives reading time and engagement counts from a blog.
// A nil blog yields the one minute floor and zero counts.
func (s *Service) ComputeMetrics(b *domain.Blog) domain.Metrics {
	if b == nil {
		return domain.Metrics{
			ReadingTimeMinutes: 1,
			CommentState:       domain.CommentsNotLoaded,
		}
	}

	return domain.Metrics{
		ReadingTimeMinutes: ReadingTime(CountWords(b.Content), s.opts.WordsPerMinute),
		LikeCount:          countLikes(b.Likes),
		ViewCount:          max(b.Views, 0),
		CommentCount:       len(b.Comments),
		CommentState:       commentState(b.Comments),
	}
}

// likes is a set, so duplicate user IDs count once
func countLikes(likes []domain.Like) int {
	seen := make(map[int64]struct{}, len(likes))
	for _, l := range likes {
		seen[l.UserID] = struct{}{}
	}
	return len(seen)
}

func commentState(comments []domain.Comment) domain.CommentState {
	switch {
	case comments == nil:
		return domain.CommentsNotLoaded
	case len(comments) == 0:
		return domain.CommentsEmpty
	default:
		return domain.CommentsPresent
	}
}
