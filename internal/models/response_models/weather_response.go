package response_models

import "time"

type CurrentConditions struct {
	TemperatureC float64 `json:"temperature_c"`
	Description  string  `json:"description"`
	HumidityPct  int     `json:"humidity_pct"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
}

type ForecastEntry struct {
	Time         time.Time `json:"time"`
	TemperatureC float64   `json:"temperature_c"`
	Description  string    `json:"description"`
}

// WeatherSummary is absent entirely (nil) when the weather service has no
// credential configured or current conditions could not be fetched. A missing
// forecast alone does not suppress the summary.
type WeatherSummary struct {
	Location string            `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastEntry   `json:"forecast,omitempty"`
}

// WeatherReport pairs the structured summary with its rendered text block.
type WeatherReport struct {
	Summary *WeatherSummary `json:"summary,omitempty"`
	Text    string          `json:"text"`
}
