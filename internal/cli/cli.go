package cli

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"hko-district-weather/internal/geo"
	"hko-district-weather/internal/weather"
)

// New builds the CLI command tree. The CLI is a thin client over the running
// service's HTTP API.
func New() *cobra.Command {
	var addr string

	root := &cobra.Command{
		Use:   "district-weather-cli",
		Short: "CLI client for the Hong Kong district weather service",
	}
	root.PersistentFlags().StringVar(&addr, "addr", "http://localhost:8080", "base URL of the district-weather service")

	root.AddCommand(newCurrentCmd(&addr))
	root.AddCommand(newForecastCmd(&addr))
	root.AddCommand(newNearestCmd(&addr))

	return root
}

func newCurrentCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the latest per-district snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Snapshot weather.AggregateSnapshot `json:"snapshot"`
				IconURL  string                    `json:"iconUrl"`
			}
			if err := getJSON(cmd, *addr+"/api/v1/weather/current", &out); err != nil {
				return err
			}

			snap := out.Snapshot

			cmd.Printf("GENERAL\t%s\n", snap.GeneralSituation)
			if snap.HasTempRange {
				cmd.Printf("RANGE\tL:%.0f° H:%.0f°\n", snap.LowTemp, snap.HighTemp)
			} else {
				cmd.Printf("RANGE\t--\n")
			}
			if snap.HasHumidity {
				cmd.Printf("HUMIDITY\t%.0f%%\n", snap.Humidity)
			} else {
				cmd.Printf("HUMIDITY\t--%%\n")
			}
			cmd.Printf("ICON\t%s\n\n", out.IconURL)

			for _, obs := range snap.Regions {
				cmd.Printf("%-28s %6s  %s\n",
					obs.RegionName,
					obs.FormattedTemperature(),
					obs.FormattedRainfall(),
				)
			}
			return nil
		},
	}
}

func newForecastCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Show the seven-day forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Days []weather.ForecastDay `json:"days"`
			}
			if err := getJSON(cmd, *addr+"/api/v1/weather/forecast", &out); err != nil {
				return err
			}

			for _, day := range out.Days {
				cmd.Printf("%s (%s)\t%d°-%d°\tRH %d-%d%%\t%s\n",
					day.Date, day.DayOfWeek,
					day.MinTemp, day.MaxTemp,
					day.MinHumidity, day.MaxHumidity,
					day.Weather,
				)
			}
			return nil
		},
	}
}

func newNearestCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <lat> <lon>",
		Short: "Find the district closest to a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				District   geo.Region `json:"district"`
				DistanceKm float64    `json:"distanceKm"`
			}
			url := fmt.Sprintf("%s/api/v1/districts/nearest?lat=%s&lon=%s", *addr, args[0], args[1])
			if err := getJSON(cmd, url, &out); err != nil {
				return err
			}

			cmd.Printf("DISTRICT\t%s\n", out.District.Name)
			cmd.Printf("DISTANCE\t%.2f km\n", out.DistanceKm)
			return nil
		},
	}
}

func getJSON(cmd *cobra.Command, url string, out any) error {
	resp, err := resty.New().R().SetContext(cmd.Context()).Get(url)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("resource code: %d\n%s", resp.StatusCode(), resp.Body())
	}
	return json.Unmarshal(resp.Body(), out)
}
