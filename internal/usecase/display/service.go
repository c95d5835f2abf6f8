package display

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/devodyssey/domain"
)

// DefaultKey is the storage key the preference lives under.
const DefaultKey = "blogDisplayMode"

type Service struct {
	storage domain.PreferenceStorage
	key     string
}

var _ domain.DisplayUsecase = (*Service)(nil)

// NewService will create a display-mode store backed by storage.
// An empty key means DefaultKey.
func NewService(storage domain.PreferenceStorage, key string) *Service {
	if key == "" {
		key = DefaultKey
	}
	return &Service{
		storage: storage,
		key:     key,
	}
}

// GetDisplayMode never fails: unset, unknown or unreadable values all read as list.
func (s *Service) GetDisplayMode(ctx context.Context) domain.DisplayMode {
	val, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		logrus.Warnf("failed to read display mode, using %q: %v", domain.DefaultDisplayMode,
			fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err))
		return domain.DefaultDisplayMode
	}
	if !ok {
		return domain.DefaultDisplayMode
	}

	mode := domain.ParseDisplayMode(val)
	if string(mode) != val {
		logrus.Warnf("unrecognised display mode %q in storage", val)
	}
	return mode
}

// SetDisplayMode persists mode. A failing write is logged and dropped.
func (s *Service) SetDisplayMode(ctx context.Context, mode domain.DisplayMode) error {
	if !mode.Valid() {
		return domain.ErrBadParamInput
	}
	if err := s.storage.Set(ctx, s.key, string(mode)); err != nil {
		logrus.Errorf("failed to persist display mode %q: %v", mode,
			fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err))
	}
	return nil
}
