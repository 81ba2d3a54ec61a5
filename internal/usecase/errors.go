package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNoWeatherData         = errors.New("no weather information returned")
	ErrNoForecastDescription = errors.New("no forecast description returned")
	ErrNoTemperatureData     = errors.New("no temp returned")
)

// UpstreamError is returned when the weather provider answers with a non-2xx
// status or cannot be reached at all. Status is zero for transport failures.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return "openweather request failed: " + e.Message
	}
	if e.Message == "" {
		return fmt.Sprintf("request failed with status code %d", e.Status)
	}
	return fmt.Sprintf("request failed with status code %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsInterpretationError reports whether err means the provider answered but
// the payload could not be turned into a report.
func IsInterpretationError(err error) bool {
	return errors.Is(err, ErrNoWeatherData) ||
		errors.Is(err, ErrNoForecastDescription) ||
		errors.Is(err, ErrNoTemperatureData)
}
