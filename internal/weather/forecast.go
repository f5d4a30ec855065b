package weather

import "hko-district-weather/internal/hko"

// maxForecastDays bounds the parsed forecast; the fnd dataset carries nine
// days but only seven are exposed.
const maxForecastDays = 7

// ParseForecast converts the fnd payload into at most seven ForecastDay
// entries, preserving source order (index 0 is the nearest day). Extraction
// is tolerant: a field the source omits keeps its zero value rather than
// failing the whole parse.
func ParseForecast(payload hko.ForecastPayload) []ForecastDay {
	entries := payload.WeatherForecast
	if len(entries) > maxForecastDays {
		entries = entries[:maxForecastDays]
	}

	days := make([]ForecastDay, 0, len(entries))
	for _, entry := range entries {
		days = append(days, ForecastDay{
			Date:            entry.ForecastDate,
			DayOfWeek:       entry.Week,
			Weather:         entry.ForecastWeather,
			MaxTemp:         entry.ForecastMaxtemp.Value,
			MinTemp:         entry.ForecastMintemp.Value,
			Wind:            entry.ForecastWind,
			MaxHumidity:     entry.ForecastMaxrh.Value,
			MinHumidity:     entry.ForecastMinrh.Value,
			IconCode:        entry.ForecastIcon,
			RainProbability: entry.PSR,
		})
	}
	return days
}
