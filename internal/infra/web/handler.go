package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/briannelson22/openweather/internal/dto"
	"github.com/briannelson22/openweather/internal/usecase"
	"github.com/briannelson22/openweather/internal/vo"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type WeatherResolver interface {
	Execute(ctx context.Context, rawLat, rawLon string) (dto.WeatherOutput, error)
}

type Webserver struct {
	Resolver   WeatherResolver
	Docs       *APIDocs
	OTELTracer trace.Tracer
	Logger     *slog.Logger
}

func NewServer(resolver WeatherResolver, docs *APIDocs, otelTracer trace.Tracer, logger *slog.Logger) *Webserver {
	return &Webserver{
		Resolver:   resolver,
		Docs:       docs,
		OTELTracer: otelTracer,
		Logger:     logger,
	}
}

func (we *Webserver) CreateServer() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logger)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Get("/weather", we.getWeatherHandler)
	router.Get("/health", we.healthHandler)
	if we.Docs != nil {
		router.Mount("/api-docs", we.Docs.Routes())
	}
	return router
}

func (we *Webserver) getWeatherHandler(w http.ResponseWriter, r *http.Request) {
	carrier := propagation.HeaderCarrier(r.Header)
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), carrier)
	ctx, span := we.OTELTracer.Start(ctx, "GET-WEATHER")
	defer span.End()

	we.Logger.Log(ctx, slog.LevelDebug, "get /weather", "request_id", middleware.GetReqID(r.Context()))
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	output, err := we.Resolver.Execute(ctx, lat, lon)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			we.Logger.ErrorContext(ctx, "resolve weather failed", "lat", lat, "lon", lon, "error", err)
		}
		writeJSON(w, status, dto.ErrorOutput{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (we *Webserver) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	var upstream *usecase.UpstreamError
	switch {
	case vo.IsInvalidParameter(err):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
