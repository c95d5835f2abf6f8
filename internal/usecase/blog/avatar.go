package blog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Guyuepp/devodyssey/domain"
)

// ResolveAvatar returns the user's own avatar, or a generated one seeded by
// a stable identifier so the same user always gets the same image.
func (s *Service) ResolveAvatar(a *domain.Author) string {
	if a == nil {
		a = &domain.Author{Username: domain.UnknownUsername}
	}
	if a.AvatarURL != nil && *a.AvatarURL != "" {
		return *a.AvatarURL
	}
	return generatedAvatarURL(s.opts.AvatarBaseURL, avatarSeed(a))
}

func avatarSeed(a *domain.Author) string {
	if strings.TrimSpace(a.Username) != "" {
		return a.Username
	}
	if a.ID != 0 {
		return strconv.FormatInt(a.ID, 10)
	}
	return domain.UnknownUsername
}

func generatedAvatarURL(base, seed string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?seed=" + url.QueryEscape(seed)
	}
	q := u.Query()
	q.Set("seed", seed)
	u.RawQuery = q.Encode()
	return u.String()
}
