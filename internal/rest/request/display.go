package request

import "github.com/Guyuepp/devodyssey/domain"

type DisplayMode struct {
	Mode string `json:"mode" binding:"required,oneof=list grid"`
}

// ToDomain: Request -> Domain
func (r *DisplayMode) ToDomain() domain.DisplayMode {
	return domain.DisplayMode(r.Mode)
}
