package area

import (
	"fmt"

	"github.com/xonadon/xonadon-api/internal/domain"
)

// Params defines the material-loss policy used by the calculator.
type Params struct {
	// LossPercent is the fraction of net area that does not become finished
	// surface, keyed by weather. Material area is net area * (1 - loss).
	LossPercent map[domain.Weather]float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	HotLossPercent  float64
	ColdLossPercent float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		LossPercent: map[domain.Weather]float64{
			domain.WeatherHot:  0.10,
			domain.WeatherCold: 0.07,
		},
	}
}

// NewParams creates a new Params instance with custom configuration.
// Only fractions strictly between 0 and 1 override a default.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if isFraction(config.HotLossPercent) {
		params.LossPercent[domain.WeatherHot] = config.HotLossPercent
	}
	if isFraction(config.ColdLossPercent) {
		params.LossPercent[domain.WeatherCold] = config.ColdLossPercent
	}

	return params
}

// WastePercent returns the loss fraction for the given weather.
// Unknown weather values fail with domain.ErrInvalidWeather.
func (p *Params) WastePercent(weather domain.Weather) (float64, error) {
	if !weather.IsValid() {
		return 0, invalidWeather(weather)
	}

	loss, ok := p.LossPercent[weather]
	if !ok {
		return 0, invalidWeather(weather)
	}

	return loss, nil
}

func invalidWeather(weather domain.Weather) error {
	return domain.NewValidationError(
		"weather",
		fmt.Sprintf("%q is not one of hot, cold", string(weather)),
		domain.ErrInvalidWeather,
	)
}

func isFraction(v float64) bool {
	return v > 0 && v < 1
}
