package domain

import "strings"

// Weather selects the material-loss percentage applied to net area.
// It is a lookup key, not a physical measurement.
type Weather string

// Supported weather values
const (
	WeatherHot  Weather = "hot"
	WeatherCold Weather = "cold"
)

// Weathers lists every supported weather value in a stable order.
func Weathers() []Weather {
	return []Weather{WeatherHot, WeatherCold}
}

// IsValid reports whether w is one of the supported weather values.
func (w Weather) IsValid() bool {
	switch w {
	case WeatherHot, WeatherCold:
		return true
	default:
		return false
	}
}

// ParseWeather converts user input into a Weather. Matching ignores case and
// surrounding whitespace. Unknown values return ErrInvalidWeather.
func ParseWeather(s string) (Weather, error) {
	w := Weather(strings.ToLower(strings.TrimSpace(s)))
	if !w.IsValid() {
		return "", NewValidationError("weather", "must be one of hot, cold", ErrInvalidWeather)
	}
	return w, nil
}
