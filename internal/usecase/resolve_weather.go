package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/briannelson22/openweather/internal/dto"
	"github.com/briannelson22/openweather/internal/infra/logging"
	"github.com/briannelson22/openweather/internal/vo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/onecall"
	DefaultUnits   = "imperial"
)

var DefaultExclude = []string{"minutely", "hourly", "daily"}

// Getter issues a GET and hands back the raw status and body. A non-nil
// error means no response was received.
type Getter interface {
	Get(ctx context.Context, url string, query url.Values) (status int, body []byte, err error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Units   string
	Exclude []string
}

type ResolveWeatherUseCase struct {
	cfg    Config
	getter Getter
	logger *slog.Logger
	tracer trace.Tracer
}

func NewResolveWeatherUseCase(cfg Config, getter Getter, logger *slog.Logger, tracer trace.Tracer) *ResolveWeatherUseCase {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Units == "" {
		cfg.Units = DefaultUnits
	}
	if cfg.Exclude == nil {
		cfg.Exclude = DefaultExclude
	}
	return &ResolveWeatherUseCase{
		cfg:    cfg,
		getter: getter,
		logger: logger,
		tracer: tracer,
	}
}

// Execute validates the raw coordinate, fetches current conditions and alerts
// from the one-call endpoint and reduces them to a WeatherOutput.
func (uc *ResolveWeatherUseCase) Execute(ctx context.Context, rawLat, rawLon string) (dto.WeatherOutput, error) {
	coord, err := vo.NewCoordinate(rawLat, rawLon)
	if err != nil {
		return dto.WeatherOutput{}, err
	}
	uc.logger.Log(ctx, logging.LevelTrace, "enter resolve weather", "lat", rawLat, "lon", rawLon)

	ctx, span := uc.tracer.Start(ctx, "resolve-weather", trace.WithAttributes(
		attribute.Float64("weather.lat", coord.Lat),
		attribute.Float64("weather.lon", coord.Lon),
	))
	defer span.End()

	output, err := uc.fetch(ctx, coord)
	if err != nil {
		uc.logger.Log(ctx, logging.LevelTrace, "error retrieving openweather onecall", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return dto.WeatherOutput{}, err
	}
	span.SetAttributes(attribute.String("weather.temp", output.Temp))
	return output, nil
}

func (uc *ResolveWeatherUseCase) fetch(ctx context.Context, coord vo.Coordinate) (dto.WeatherOutput, error) {
	query := url.Values{}
	query.Set("lat", coord.LatString())
	query.Set("lon", coord.LonString())
	query.Set("appid", uc.cfg.APIKey)
	query.Set("exclude", strings.Join(uc.cfg.Exclude, ","))
	query.Set("units", uc.cfg.Units)

	status, body, err := uc.getter.Get(ctx, uc.cfg.BaseURL, query)
	if err != nil {
		return dto.WeatherOutput{}, &UpstreamError{Message: err.Error(), Err: err}
	}
	uc.logger.Log(ctx, logging.LevelTrace, "openweather response", "status", status, "body", string(body))
	if status < 200 || status > 299 {
		return dto.WeatherOutput{}, &UpstreamError{Status: status, Message: upstreamMessage(status, body)}
	}

	var payload dto.OneCallResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return dto.WeatherOutput{}, fmt.Errorf("%w: %v", ErrNoWeatherData, err)
	}
	return buildOutput(payload)
}

func buildOutput(payload dto.OneCallResponse) (dto.WeatherOutput, error) {
	if payload.Current == nil || len(payload.Current.Weather) == 0 || payload.Current.Weather[0] == nil {
		return dto.WeatherOutput{}, ErrNoWeatherData
	}
	forecast := payload.Current.Weather[0].Description
	if forecast == "" {
		return dto.WeatherOutput{}, ErrNoForecastDescription
	}
	if payload.Current.Temp == nil {
		return dto.WeatherOutput{}, ErrNoTemperatureData
	}
	category, err := vo.ClassifyTemperature(*payload.Current.Temp)
	if err != nil {
		return dto.WeatherOutput{}, err
	}

	alerts := make([]string, 0, len(payload.Alerts))
	for _, alert := range payload.Alerts {
		alerts = append(alerts, alert.Description)
	}
	return dto.WeatherOutput{
		Forecast: forecast,
		Temp:     string(category),
		Alerts:   alerts,
	}, nil
}

func upstreamMessage(status int, body []byte) string {
	var apiErr dto.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return http.StatusText(status)
}
