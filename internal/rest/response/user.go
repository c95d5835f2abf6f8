package response

import "github.com/Guyuepp/devodyssey/domain"

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// NewAuthorFromDomain always yields a displayable user; a nil author becomes
// the "unknown" placeholder.
func NewAuthorFromDomain(a *domain.Author, p Presenter) User {
	if a == nil {
		return User{
			Username:  domain.UnknownUsername,
			AvatarURL: p.ResolveAvatar(nil),
		}
	}
	return User{
		ID:        a.ID,
		Username:  a.Username,
		AvatarURL: p.ResolveAvatar(a),
	}
}
