package vo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// InvalidParameterError reports a named input that is not a usable number.
type InvalidParameterError struct {
	Name string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s parameter", e.Name)
}

// IsInvalidParameter reports whether err is an InvalidParameterError for any name.
func IsInvalidParameter(err error) bool {
	var target *InvalidParameterError
	return errors.As(err, &target)
}

var numeric = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate parses raw query values. No geographic range check is made.
func NewCoordinate(rawLat, rawLon string) (Coordinate, error) {
	lat, ok := parseNumber(rawLat)
	if !ok {
		return Coordinate{}, &InvalidParameterError{Name: "lat"}
	}
	lon, ok := parseNumber(rawLon)
	if !ok {
		return Coordinate{}, &InvalidParameterError{Name: "lon"}
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

func (c Coordinate) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

func (c Coordinate) LonString() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

func IsNumeric(raw string) bool {
	_, ok := parseNumber(raw)
	return ok
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if !numeric.MatchString(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
