package vo

import "math"

type TempCategory string

const (
	TempHot      TempCategory = "hot"
	TempModerate TempCategory = "moderate"
	TempCold     TempCategory = "cold"
)

const (
	hotThreshold      = 90.0
	moderateThreshold = 70.0
)

// ClassifyTemperature buckets a temperature in degrees Fahrenheit. Each band
// includes its lower bound.
func ClassifyTemperature(temp float64) (TempCategory, error) {
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return "", &InvalidParameterError{Name: "temp"}
	}
	switch {
	case temp >= hotThreshold:
		return TempHot, nil
	case temp >= moderateThreshold:
		return TempModerate, nil
	default:
		return TempCold, nil
	}
}
