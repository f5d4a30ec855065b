package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hko-district-weather/internal/geo"
	"hko-district-weather/internal/hko"
)

const testReferenceStation = "Hong Kong Observatory"

func testRegistry(t *testing.T) *geo.Registry {
	t.Helper()
	registry, err := geo.NewRegistry()
	require.NoError(t, err)
	return registry
}

func findRegion(t *testing.T, snapshot AggregateSnapshot, name string) RegionObservation {
	t.Helper()
	for _, obs := range snapshot.Regions {
		if obs.RegionName == name {
			return obs
		}
	}
	t.Fatalf("no observation for %q", name)
	return RegionObservation{}
}

func TestMergeRealtime(t *testing.T) {
	registry := testRegistry(t)

	t.Run("station alias temperature lands on host district", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Happy Valley", Value: 25.3},
		}

		snapshot, unresolved := MergeRealtime(registry, payload, testReferenceStation)
		require.Empty(t, unresolved)
		require.Len(t, snapshot.Regions, 18)

		wanChai := findRegion(t, snapshot, "Wan Chai")
		assert.True(t, wanChai.HasTemperature)
		assert.Equal(t, 25.3, wanChai.Temperature)

		for _, obs := range snapshot.Regions {
			if obs.RegionName == "Wan Chai" {
				continue
			}
			assert.False(t, obs.HasTemperature, obs.RegionName)
			assert.False(t, obs.HasRainfall, obs.RegionName)
		}
	})

	t.Run("last write wins for duplicate district entries", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Happy Valley", Value: 24.0}, // alias of Wan Chai
			{Place: "Wan Chai", Value: 26.5},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		wanChai := findRegion(t, snapshot, "Wan Chai")
		assert.Equal(t, 26.5, wanChai.Temperature)
	})

	t.Run("rainfall is independent of temperature", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Sha Tin", Value: 27.0},
		}
		payload.Rainfall.Data = []hko.PlaceMax{
			{Place: "Tai Po", Max: 12.0},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)

		shaTin := findRegion(t, snapshot, "Sha Tin")
		assert.True(t, shaTin.HasTemperature)
		assert.False(t, shaTin.HasRainfall)

		taiPo := findRegion(t, snapshot, "Tai Po")
		assert.False(t, taiPo.HasTemperature)
		assert.True(t, taiPo.HasRainfall)
		assert.Equal(t, 12.0, taiPo.RainfallMax)
	})

	t.Run("zero rainfall is still a reading", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Rainfall.Data = []hko.PlaceMax{
			{Place: "Kwun Tong", Max: 0},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		kwunTong := findRegion(t, snapshot, "Kwun Tong")
		assert.True(t, kwunTong.HasRainfall)
		assert.Equal(t, 0.0, kwunTong.RainfallMax)
	})

	t.Run("unmatched place keys are dropped and reported", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Victoria Peak", Value: 20.0},
			{Place: "Sha Tin", Value: 27.0},
		}

		snapshot, unresolved := MergeRealtime(registry, payload, testReferenceStation)
		assert.Equal(t, []string{"Victoria Peak"}, unresolved)

		// Processing continued past the miss.
		assert.True(t, findRegion(t, snapshot, "Sha Tin").HasTemperature)
	})

	t.Run("no temperatures means no high low range", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Rainfall.Data = []hko.PlaceMax{
			{Place: "Tai Po", Max: 3.0},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		assert.False(t, snapshot.HasTempRange)
	})

	t.Run("high low over reporting districts", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Sha Tin", Value: 31.2},
			{Place: "Tai Po", Value: 24.8},
			{Place: "Tuen Mun", Value: 28.0},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		require.True(t, snapshot.HasTempRange)
		assert.Equal(t, 31.2, snapshot.HighTemp)
		assert.Equal(t, 24.8, snapshot.LowTemp)
	})

	t.Run("negative temperatures keep a valid range", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Ta Kwu Ling", Value: -1.5},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		require.True(t, snapshot.HasTempRange)
		assert.Equal(t, -1.5, snapshot.HighTemp)
		assert.Equal(t, -1.5, snapshot.LowTemp)
	})

	t.Run("humidity comes from the reference station only", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Humidity.Data = []hko.PlaceValue{
			{Place: "Happy Valley", Value: 60},
			{Place: "Hong Kong Observatory", Value: 78},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		require.True(t, snapshot.HasHumidity)
		assert.Equal(t, 78.0, snapshot.Humidity)
	})

	t.Run("missing reference humidity stays unset", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Humidity.Data = []hko.PlaceValue{
			{Place: "Happy Valley", Value: 60},
		}

		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		assert.False(t, snapshot.HasHumidity)
	})

	t.Run("first icon code wins, default when absent", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Icon = []int{63, 50}
		snapshot, _ := MergeRealtime(registry, payload, testReferenceStation)
		assert.Equal(t, 63, snapshot.WeatherIcon)

		snapshot, _ = MergeRealtime(registry, hko.RealtimePayload{}, testReferenceStation)
		assert.Equal(t, DefaultIconCode, snapshot.WeatherIcon)
	})

	t.Run("identical payload yields identical merge", func(t *testing.T) {
		var payload hko.RealtimePayload
		payload.Temperature.Data = []hko.PlaceValue{
			{Place: "Sha Tin", Value: 27.0},
			{Place: "Happy Valley", Value: 25.3},
		}
		payload.Rainfall.Data = []hko.PlaceMax{
			{Place: "Tai Po", Max: 1.0},
		}

		first, _ := MergeRealtime(registry, payload, testReferenceStation)
		second, _ := MergeRealtime(registry, payload, testReferenceStation)
		assert.Equal(t, first, second)
	})
}

func TestFormattedValues(t *testing.T) {
	unset := RegionObservation{RegionName: "Sha Tin"}
	assert.Equal(t, "--°", unset.FormattedTemperature())
	assert.Equal(t, "-- mm", unset.FormattedRainfall())

	set := RegionObservation{
		RegionName:     "Sha Tin",
		Temperature:    27.4,
		HasTemperature: true,
		RainfallMax:    12.6,
		HasRainfall:    true,
	}
	assert.Equal(t, "27°", set.FormattedTemperature())
	assert.Equal(t, "13 mm", set.FormattedRainfall())
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://www.weather.gov.hk/images/HKOWxIconOutline/pic63.png", IconURL(63))
	assert.Equal(t, fallbackIconURL, IconURL(0))
	assert.Equal(t, fallbackIconURL, IconURL(-4))
}
