package domain

import "context"

// DisplayMode is the persisted list/grid rendering choice
type DisplayMode string

const (
	DisplayList DisplayMode = "list"
	DisplayGrid DisplayMode = "grid"

	DefaultDisplayMode = DisplayList
)

// Valid reports whether m is a recognised display mode.
func (m DisplayMode) Valid() bool {
	return m == DisplayList || m == DisplayGrid
}

// ParseDisplayMode returns the mode named by s, falling back to the default
// for anything unrecognised.
func ParseDisplayMode(s string) DisplayMode {
	m := DisplayMode(s)
	if !m.Valid() {
		return DefaultDisplayMode
	}
	return m
}

// PreferenceStorage is the durable key-value port behind the display mode.
type PreferenceStorage interface {
	// Get returns the stored value and whether the key was ever written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// DisplayUsecase reads and writes the display preference.
// Storage failures never surface; reads fall back to DefaultDisplayMode.
type DisplayUsecase interface {
	GetDisplayMode(ctx context.Context) DisplayMode
	// SetDisplayMode returns ErrBadParamInput for an unknown mode.
	SetDisplayMode(ctx context.Context, mode DisplayMode) error
}
