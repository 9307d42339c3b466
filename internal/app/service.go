// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/adapters/source"
	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/internal/domain/timeline"
	"github.com/okian/matchline/pkg/logger"
	"github.com/okian/matchline/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultFixtureLimit = 8
	defaultFetchTimeout = 10 * time.Second
	defaultTimeOffset   = 8 * time.Hour
)

// Source abstracts the upstream scraping client so the service can be
// exercised without network access.
type Source interface {
	MatchDocuments(ctx context.Context, matchID string) (model.TeamsInfo, *goquery.Document, error)
	Fixtures(ctx context.Context) ([]model.Fixture, error)
}

// Service implements the API dependencies for the match data system.
type Service struct {
	mu sync.RWMutex

	// Core components
	source Source

	// Configuration
	baseURL      string
	userAgent    string
	fetchTimeout time.Duration
	timeOffset   time.Duration
	fixtureLimit int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithBaseURL sets the upstream site root.
func WithBaseURL(base string) Option {
	return func(s *Service) {
		if base != "" {
			s.baseURL = base
		}
	}
}

// WithUserAgent sets the upstream User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Service) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithFetchTimeout bounds each upstream request.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithTimeOffset sets the display offset applied to source-local times.
func WithTimeOffset(d time.Duration) Option {
	return func(s *Service) {
		s.timeOffset = d
	}
}

// WithFixtureLimit caps the default fixture listing.
func WithFixtureLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fixtureLimit = n
		}
	}
}

// WithSource sets a custom upstream client. Used by tests.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		fixtureLimit: defaultFixtureLimit,
		fetchTimeout: defaultFetchTimeout,
		timeOffset:   defaultTimeOffset,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.source == nil {
		s.source = source.New(
			source.WithBaseURL(s.baseURL),
			source.WithUserAgent(s.userAgent),
			source.WithTimeout(s.fetchTimeout),
			source.WithTimeOffset(s.timeOffset),
			source.WithLogger(s.logger.Named("source")),
		)
	}

	s.started = true
	s.logger.Info(ctx, "match service started",
		logger.Int("fixtureLimit", s.fixtureLimit),
	)
	return nil
}

// Stop shuts down the service. The service holds no background work, so
// this only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "match service stopped")
}

// Match fetches both raw documents for a match and assembles the full
// detail: header info, stats map and the reconstructed timeline.
func (s *Service) Match(ctx context.Context, matchID string) (model.MatchDetail, error) {
	teams, feed, err := s.source.MatchDocuments(ctx, matchID)
	if err != nil {
		return model.MatchDetail{}, err
	}

	start := time.Now()
	detail := timeline.Assemble(ctx, feed, teams)
	metrics.RecordAssembleDuration(float64(time.Since(start).Milliseconds()))

	s.logger.Debug(ctx, "assembled match detail",
		logger.String("matchID", matchID),
		logger.Int("entries", len(detail.Events)),
		logger.Bool("live", detail.Info.Live),
	)
	return detail, nil
}

// Fixtures returns the fixture listing: live matches first, then
// ascending by kickoff. The default listing is capped; all=true returns
// every row.
func (s *Service) Fixtures(ctx context.Context, all bool) ([]model.Fixture, error) {
	fixtures, err := s.source.Fixtures(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		li, lj := fixtures[i].Status == model.FixtureLive, fixtures[j].Status == model.FixtureLive
		if li != lj {
			return li
		}
		return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
	})

	if !all && len(fixtures) > s.fixtureLimit {
		fixtures = fixtures[:s.fixtureLimit]
	}

	metrics.RecordFixtureListing()
	return fixtures, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"fixtureLimit": s.fixtureLimit,
	}
}
