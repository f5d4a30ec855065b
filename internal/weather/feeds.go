package weather

import (
	"context"

	"hko-district-weather/internal/hko"
)

// FeedClient abstracts the HKO open-data fetches the pipeline depends on.
// The realtime feed is required for a snapshot; the other two are optional
// collaborators with local fallbacks.
type FeedClient interface {
	FetchRealtime(ctx context.Context) (hko.RealtimePayload, error)
	FetchGeneralSituation(ctx context.Context) (hko.SituationPayload, error)
	FetchSevenDayForecast(ctx context.Context) (hko.ForecastPayload, error)
}

// Store is the contract the in-memory store (and any future persistent store)
// must satisfy. Only the latest snapshot is kept; historical readings are out
// of scope.
type Store interface {
	SaveSnapshot(snapshot AggregateSnapshot)
	GetLatest() (AggregateSnapshot, error)
}
