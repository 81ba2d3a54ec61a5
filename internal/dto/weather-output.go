package dto

type WeatherOutput struct {
	Forecast string   `json:"forecast"`
	Temp     string   `json:"temp"`
	Alerts   []string `json:"alerts"`
}

type ErrorOutput struct {
	Message string `json:"message"`
}
