package hko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the HKO open-data weather endpoint. Datasets are selected
// with the dataType query parameter.
const DefaultBaseURL = "https://data.weather.gov.hk/weatherAPI/opendata/weather.php"

// Dataset identifiers understood by the upstream API.
const (
	datasetRealtime  = "rhrread" // realtime temperature, rainfall, humidity, icon
	datasetSituation = "flw"     // local weather forecast, incl. general situation
	datasetForecast  = "fnd"     // nine-day forecast
)

// Client fetches HKO open-data weather datasets with retries and a circuit
// breaker per client. It is safe for concurrent use.
type Client struct {
	baseURL string
	lang    string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a Client talking to baseURL (DefaultBaseURL when empty)
// using the given shared HTTP client.
func NewClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "hko",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: baseURL,
		lang:    "en",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

// FetchRealtime retrieves the rhrread dataset.
func (c *Client) FetchRealtime(ctx context.Context) (RealtimePayload, error) {
	var payload RealtimePayload
	if err := c.fetch(ctx, datasetRealtime, &payload); err != nil {
		return RealtimePayload{}, err
	}
	return payload, nil
}

// FetchGeneralSituation retrieves the flw dataset.
func (c *Client) FetchGeneralSituation(ctx context.Context) (SituationPayload, error) {
	var payload SituationPayload
	if err := c.fetch(ctx, datasetSituation, &payload); err != nil {
		return SituationPayload{}, err
	}
	return payload, nil
}

// FetchSevenDayForecast retrieves the fnd dataset.
func (c *Client) FetchSevenDayForecast(ctx context.Context) (ForecastPayload, error) {
	var payload ForecastPayload
	if err := c.fetch(ctx, datasetForecast, &payload); err != nil {
		return ForecastPayload{}, err
	}
	return payload, nil
}

func (c *Client) fetch(ctx context.Context, dataset string, out any) error {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("dataType", dataset)
		values.Set("lang", c.lang)

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", dataset, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", dataset, err)
	}
	return nil
}
