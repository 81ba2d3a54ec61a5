package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briannelson22/openweather/configs"
	"github.com/briannelson22/openweather/internal/infra/logging"
	"github.com/briannelson22/openweather/internal/infra/openweather"
	"github.com/briannelson22/openweather/internal/infra/tracing"
	"github.com/briannelson22/openweather/internal/infra/web"
	"github.com/briannelson22/openweather/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	v := configs.New()
	var configPath string

	root := &cobra.Command{
		Use:           "weather",
		Short:         "Simplified current weather reports backed by the OpenWeather one-call api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config-path", ".", "directory holding an optional .env file")
	root.PersistentFlags().String("log-level", "", "trace, debug, info, warn or error")
	v.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCommand(v, &configPath), newReportCommand(v, &configPath))
	return root
}

func newServeCommand(v *viper.Viper, configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(v, *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().String("port", "", "port to listen on")
	v.BindPFlag("WEB_SERVER_PORT", cmd.Flags().Lookup("port"))
	return cmd
}

func newReportCommand(v *viper.Viper, configPath *string) *cobra.Command {
	var lat, lon string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weather report for one coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(v, *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			resolver := newResolver(cfg, logger)
			output, err := resolver.Execute(cmd.Context(), lat, lon)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		},
	}
	cmd.Flags().StringVar(&lat, "lat", "", "latitude")
	cmd.Flags().StringVar(&lon, "lon", "", "longitude")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")
	return cmd
}

func load(v *viper.Viper, configPath string, logOut io.Writer) (*configs.Cfg, *slog.Logger, error) {
	cfg, err := configs.LoadConfig(v, configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newResolver(cfg *configs.Cfg, logger *slog.Logger) *usecase.ResolveWeatherUseCase {
	return usecase.NewResolveWeatherUseCase(
		usecase.Config{
			APIKey:  cfg.OpenWeatherAPIKey,
			BaseURL: cfg.OpenWeatherBaseURL,
			Units:   cfg.OpenWeatherUnits,
		},
		openweather.NewClient(cfg.OpenWeatherTimeout, logger),
		logger,
		otel.Tracer(cfg.ServiceName),
	)
}

func serve(ctx context.Context, cfg *configs.Cfg, logger *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(cfg.ServiceName, cfg.ZipkinEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	docs := web.NewAPIDocs(fmt.Sprintf("http://localhost:%s", cfg.WebServerPort))
	webserver := web.NewServer(newResolver(cfg, logger), docs, otel.Tracer(cfg.ServiceName), logger)
	srv := &http.Server{
		Addr:              ":" + cfg.WebServerPort,
		Handler:           webserver.CreateServer(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.WebServerPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
