package display_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/usecase/display"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockStorage) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// mapStorage remembers writes so read-after-write can be checked end to end.
type mapStorage map[string]string

func (s mapStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s mapStorage) Set(_ context.Context, key, value string) error {
	s[key] = value
	return nil
}

func TestGetDisplayMode(t *testing.T) {
	tests := []struct {
		name   string
		val    string
		ok     bool
		err    error
		expect domain.DisplayMode
	}{
		{"never written", "", false, nil, domain.DisplayList},
		{"grid", "grid", true, nil, domain.DisplayGrid},
		{"list", "list", true, nil, domain.DisplayList},
		{"unrecognised", "masonry", true, nil, domain.DisplayList},
		{"storage unavailable", "", false, errors.New("dial tcp: connection refused"), domain.DisplayList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(mockStorage)
			storage.On("Get", mock.Anything, display.DefaultKey).Return(tt.val, tt.ok, tt.err).Once()

			svc := display.NewService(storage, "")
			assert.Equal(t, tt.expect, svc.GetDisplayMode(context.TODO()))
			storage.AssertExpectations(t)
		})
	}
}

func TestSetDisplayMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("Set", mock.Anything, "prefs:display", "grid").Return(nil).Once()

		svc := display.NewService(storage, "prefs:display")
		assert.NoError(t, svc.SetDisplayMode(context.TODO(), domain.DisplayGrid))
		storage.AssertExpectations(t)
	})

	t.Run("invalid mode", func(t *testing.T) {
		storage := new(mockStorage)

		svc := display.NewService(storage, "")
		err := svc.SetDisplayMode(context.TODO(), domain.DisplayMode("table"))
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("Set", mock.Anything, display.DefaultKey, "list").Return(errors.New("read-only replica")).Once()

		svc := display.NewService(storage, "")
		assert.NoError(t, svc.SetDisplayMode(context.TODO(), domain.DisplayList))
		storage.AssertExpectations(t)
	})
}

func TestDisplayModeRoundTrip(t *testing.T) {
	svc := display.NewService(mapStorage{}, "")

	assert.Equal(t, domain.DisplayList, svc.GetDisplayMode(context.TODO()))
	assert.NoError(t, svc.SetDisplayMode(context.TODO(), domain.DisplayGrid))
	assert.Equal(t, domain.DisplayGrid, svc.GetDisplayMode(context.TODO()))
}
