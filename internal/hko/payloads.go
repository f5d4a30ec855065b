package hko

// Wire types for the HKO open-data weather API
// (https://data.weather.gov.hk/weatherAPI/opendata/weather.php). Field names
// follow the upstream JSON exactly; every field is optional on the wire, so
// zero values mean "absent".

// RealtimePayload is the rhrread dataset: current temperature, rainfall and
// humidity readings keyed by place name, plus the current weather icon codes.
type RealtimePayload struct {
	Temperature struct {
		Data []PlaceValue `json:"data"`
	} `json:"temperature"`
	Rainfall struct {
		Data []PlaceMax `json:"data"`
	} `json:"rainfall"`
	Humidity struct {
		Data []PlaceValue `json:"data"`
	} `json:"humidity"`
	Icon []int `json:"icon"`
}

// PlaceValue is a single reading keyed by place name.
type PlaceValue struct {
	Place string  `json:"place"`
	Value float64 `json:"value"`
}

// PlaceMax is a single rainfall reading; the upstream reports the maximum
// over the reporting period under "max".
type PlaceMax struct {
	Place string  `json:"place"`
	Max   float64 `json:"max"`
}

// SituationPayload is the flw dataset. Only the general situation text is
// consumed here.
type SituationPayload struct {
	GeneralSituation string `json:"generalSituation"`
}

// ForecastPayload is the fnd dataset: the nine-day forecast, of which the
// first seven entries are used.
type ForecastPayload struct {
	WeatherForecast []ForecastEntry `json:"weatherForecast"`
}

// ForecastEntry is one forecast day. ForecastIcon and PSR use the upstream's
// inconsistent capitalization.
type ForecastEntry struct {
	ForecastDate    string        `json:"forecastDate"`
	Week            string        `json:"week"`
	ForecastWeather string        `json:"forecastWeather"`
	ForecastMaxtemp ForecastValue `json:"forecastMaxtemp"`
	ForecastMintemp ForecastValue `json:"forecastMintemp"`
	ForecastWind    string        `json:"forecastWind"`
	ForecastMaxrh   ForecastValue `json:"forecastMaxrh"`
	ForecastMinrh   ForecastValue `json:"forecastMinrh"`
	ForecastIcon    int           `json:"ForecastIcon"`
	PSR             string        `json:"PSR"`
}

// ForecastValue wraps the {value, unit} objects the forecast dataset uses for
// temperatures and relative humidity.
type ForecastValue struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}
