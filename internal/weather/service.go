package weather

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hko-district-weather/internal/geo"
	"hko-district-weather/internal/hko"
	"hko-district-weather/internal/observability"
)

// Service orchestrates feed fetches, place-key resolution, and merging into
// per-district snapshots. Each refresh owns its observation slice; only the
// registry and alias table are shared, and those are read-only.
type Service struct {
	feeds            FeedClient
	registry         *geo.Registry
	store            Store
	referenceStation string

	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// NewService creates a new Service. The clock is injectable so tests can
// freeze snapshot timestamps; pass nil for the real clock.
func NewService(
	feeds FeedClient,
	registry *geo.Registry,
	store Store,
	referenceStation string,
	logger *slog.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		feeds:            feeds,
		registry:         registry,
		store:            store,
		referenceStation: referenceStation,
		logger:           logger,
		metrics:          metrics,
		clock:            clock,
	}
}

// RefreshSnapshot fetches the realtime and general-situation feeds, merges
// the results into a fresh AggregateSnapshot, and stores it.
//
// The realtime fetch is required: its failure aborts the refresh and the
// last good snapshot, if any, is left untouched. The general-situation fetch
// is best-effort: on failure the snapshot carries the documented placeholder
// text and the refresh still succeeds.
func (s *Service) RefreshSnapshot(ctx context.Context) (AggregateSnapshot, error) {
	start := s.clock.Now()

	var (
		wg        sync.WaitGroup
		realtime  realtimeResult
		situation situationResult
	)

	// The two fetches have no ordering dependency; only the merge below needs
	// the realtime result.
	wg.Add(2)
	go func() {
		defer wg.Done()
		realtime.payload, realtime.err = s.feeds.FetchRealtime(ctx)
		s.countFeed("realtime", realtime.err)
	}()
	go func() {
		defer wg.Done()
		situation.payload, situation.err = s.feeds.FetchGeneralSituation(ctx)
		s.countFeed("situation", situation.err)
	}()
	wg.Wait()

	if realtime.err != nil {
		s.metrics.SnapshotBuildFailures.Inc()
		return AggregateSnapshot{}, fmt.Errorf("realtime feed: %w", realtime.err)
	}

	snapshot, unresolved := MergeRealtime(s.registry, realtime.payload, s.referenceStation)
	for _, place := range unresolved {
		s.logger.Debug("dropping entry for unknown place", "place", place)
	}
	if n := len(unresolved); n > 0 {
		s.metrics.UnresolvedPlaceKeys.Add(float64(n))
	}

	snapshot.GeneralSituation = SituationFallback
	if situation.err != nil {
		s.logger.Warn("general situation feed unavailable, using placeholder", "error", situation.err)
	} else if situation.payload.GeneralSituation != "" {
		snapshot.GeneralSituation = situation.payload.GeneralSituation
	}

	now := s.clock.Now().UTC()
	snapshot.ID = uuid.NewString()
	snapshot.Timestamp = now

	s.store.SaveSnapshot(snapshot)

	s.metrics.SnapshotBuilds.Inc()
	s.metrics.SnapshotBuildDuration.Observe(s.clock.Since(start).Seconds())
	s.metrics.LastRefreshUnixtime.Set(float64(now.Unix()))

	s.logger.Info("snapshot refreshed",
		"id", snapshot.ID,
		"unresolved_places", len(unresolved),
		"has_temp_range", snapshot.HasTempRange,
		"duration", s.clock.Since(start).Round(time.Millisecond),
	)

	return snapshot, nil
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest() (AggregateSnapshot, error) {
	return s.store.GetLatest()
}

// FetchForecastDays fetches and parses the seven-day forecast. The result is
// not cached: each call re-fetches for a fresh sequence.
func (s *Service) FetchForecastDays(ctx context.Context) ([]ForecastDay, error) {
	payload, err := s.feeds.FetchSevenDayForecast(ctx)
	s.countFeed("forecast", err)
	if err != nil {
		return nil, fmt.Errorf("forecast feed: %w", err)
	}
	return ParseForecast(payload), nil
}

// Districts returns the fixed district set in registry order.
func (s *Service) Districts() []geo.Region {
	return s.registry.Regions()
}

// FindNearest resolves a coordinate to the closest district.
func (s *Service) FindNearest(lat, lon float64) (geo.Region, float64, bool) {
	return s.registry.FindNearest(lat, lon)
}

func (s *Service) countFeed(feed string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.FeedRequests.WithLabelValues(feed, outcome).Inc()
}

type realtimeResult struct {
	payload hko.RealtimePayload
	err     error
}

type situationResult struct {
	payload hko.SituationPayload
	err     error
}
