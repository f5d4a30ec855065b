package weather

import (
	"fmt"
	"time"

	"hko-district-weather/internal/geo"
)

// DefaultIconCode is the icon used when the realtime feed carries no icon list.
const DefaultIconCode = 50

// SituationFallback replaces the general-situation text when the flw feed is
// unavailable. The snapshot is still served; callers render the placeholder.
const SituationFallback = "Loading..."

// RegionObservation holds the merged realtime readings for one district.
// "No value received" is distinct from a zero reading, so each numeric field
// carries a Has flag.
type RegionObservation struct {
	RegionName string `json:"regionName"`

	Temperature    float64 `json:"temperatureC"`
	HasTemperature bool    `json:"hasTemperature"`

	RainfallMax float64 `json:"rainfallMaxMm"`
	HasRainfall bool    `json:"hasRainfall"`
}

// FormattedTemperature renders the temperature for display, "--°" when unset.
func (o RegionObservation) FormattedTemperature() string {
	if o.HasTemperature {
		return fmt.Sprintf("%.0f°", o.Temperature)
	}
	return "--°"
}

// FormattedRainfall renders the rainfall maximum for display, "-- mm" when unset.
func (o RegionObservation) FormattedRainfall() string {
	if o.HasRainfall {
		return fmt.Sprintf("%.0f mm", o.RainfallMax)
	}
	return "-- mm"
}

// AggregateSnapshot is one complete merged result of an aggregation run:
// every district's observation in registry order plus the derived aggregates.
type AggregateSnapshot struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"` // always UTC

	// Regions has one entry per district, in registry order.
	Regions []RegionObservation `json:"regions"`

	GeneralSituation string `json:"generalSituation"`

	// Humidity is the reading at the designated reference station, not an
	// average across districts.
	Humidity    float64 `json:"humidityPct"`
	HasHumidity bool    `json:"hasHumidity"`

	WeatherIcon int `json:"weatherIconCode"`

	// HighTemp/LowTemp are only meaningful when HasTempRange is true, i.e.
	// at least one district reported a temperature. They are never defaulted
	// to zero.
	HighTemp     float64 `json:"highTempC"`
	LowTemp      float64 `json:"lowTempC"`
	HasTempRange bool    `json:"hasTempRange"`
}

// ForecastDay is one parsed day of the seven-day forecast. Fields the source
// omits keep their zero value.
type ForecastDay struct {
	Date            string `json:"date"` // YYYYMMDD
	DayOfWeek       string `json:"dayOfWeek"`
	Weather         string `json:"weather"`
	MaxTemp         int    `json:"maxTempC"`
	MinTemp         int    `json:"minTempC"`
	Wind            string `json:"wind"`
	MaxHumidity     int    `json:"maxHumidityPct"`
	MinHumidity     int    `json:"minHumidityPct"`
	IconCode        int    `json:"iconCode"`
	RainProbability string `json:"rainProbability"`
}

// newObservations creates one unset observation per district, in registry order.
func newObservations(registry *geo.Registry) []RegionObservation {
	regions := registry.Regions()
	obs := make([]RegionObservation, len(regions))
	for i, region := range regions {
		obs[i] = RegionObservation{RegionName: region.Name}
	}
	return obs
}
