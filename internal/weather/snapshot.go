package weather

import (
	"hko-district-weather/internal/geo"
	"hko-district-weather/internal/hko"
)

// MergeRealtime resolves every realtime feed entry against the district
// registry and merges the matches into per-district observations plus the
// derived aggregates. It returns the place keys that matched neither a
// district nor a station alias; those entries are dropped, never an error.
//
// Entries are applied in feed-array order, so a later entry for the same
// district overwrites an earlier one (last-write-wins, deterministic for a
// fixed input order). Temperature and rainfall are independent: a district
// may have either, both, or neither.
func MergeRealtime(registry *geo.Registry, payload hko.RealtimePayload, referenceStation string) (AggregateSnapshot, []string) {
	observations := newObservations(registry)

	// Observations are addressed by district name; index holds positions in
	// registry order so the final slice order is stable.
	index := make(map[string]int, len(observations))
	for i, obs := range observations {
		index[obs.RegionName] = i
	}

	var unresolved []string

	for _, entry := range payload.Temperature.Data {
		region, ok := registry.Resolve(entry.Place)
		if !ok {
			unresolved = append(unresolved, entry.Place)
			continue
		}
		i := index[region.Name]
		observations[i].Temperature = entry.Value
		observations[i].HasTemperature = true
	}

	for _, entry := range payload.Rainfall.Data {
		region, ok := registry.Resolve(entry.Place)
		if !ok {
			unresolved = append(unresolved, entry.Place)
			continue
		}
		i := index[region.Name]
		observations[i].RainfallMax = entry.Max
		observations[i].HasRainfall = true
	}

	snapshot := AggregateSnapshot{
		Regions:     observations,
		WeatherIcon: DefaultIconCode,
	}

	if len(payload.Icon) > 0 {
		snapshot.WeatherIcon = payload.Icon[0]
	}

	// Humidity comes from the single reference station, not an average.
	for _, entry := range payload.Humidity.Data {
		if entry.Place == referenceStation {
			snapshot.Humidity = entry.Value
			snapshot.HasHumidity = true
			break
		}
	}

	snapshot.HighTemp, snapshot.LowTemp, snapshot.HasTempRange = tempRange(observations)

	return snapshot, unresolved
}

// tempRange returns the max/min temperature across districts that have one.
// ok is false when no district reported a temperature; the values are then
// meaningless and must not be read as zero degrees.
func tempRange(observations []RegionObservation) (high, low float64, ok bool) {
	for _, obs := range observations {
		if !obs.HasTemperature {
			continue
		}
		if !ok || obs.Temperature > high {
			high = obs.Temperature
		}
		if !ok || obs.Temperature < low {
			low = obs.Temperature
		}
		ok = true
	}
	return high, low, ok
}
