package throwback

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// Service loads the settings record and computes the groups for the current day.
type Service struct {
	settings SettingsRepository
	store    ContentStore
	location *time.Location
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLocation sets the time zone "today" is computed in.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock replaces time.Now, mainly for tests and previews.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service reading settings from settings and posts from store.
func NewService(settings SettingsRepository, store ContentStore, opts ...ServiceOption) *Service {
	s := &Service{
		settings: settings,
		store:    store,
		location: time.UTC,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Today returns the current date in the service location.
func (s *Service) Today() time.Time {
	return s.now().In(s.location)
}

// Load reads the settings and computes today's groups.
// A missing or malformed settings record is not an error, both yield (nil, nil, nil).
func (s *Service) Load(ctx context.Context) (*Settings, []Group, error) {
	return s.LoadAt(ctx, s.Today())
}

// LoadAt is Load for an explicit day.
func (s *Service) LoadAt(ctx context.Context, today time.Time) (*Settings, []Group, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrMalformedSettings) {
			log.Warn().Err(err).Msg("ignoring malformed throwback settings")
			return nil, nil, nil
		}

		return nil, nil, err
	}

	if settings == nil || !settings.Activate {
		return settings, nil, nil
	}

	groups, err := ComputeGroups(ctx, settings, today, s.store)
	if err != nil {
		return settings, nil, err
	}

	return settings, groups, nil
}
