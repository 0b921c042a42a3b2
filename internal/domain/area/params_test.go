package area

import (
	"errors"
	"testing"

	"github.com/xonadon/xonadon-api/internal/domain"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	for _, w := range domain.Weathers() {
		if _, exists := params.LossPercent[w]; !exists {
			t.Errorf("LossPercent missing for weather %s", w)
		}
	}

	if params.LossPercent[domain.WeatherHot] != 0.10 {
		t.Errorf("Expected hot loss 0.10, got %f", params.LossPercent[domain.WeatherHot])
	}

	if params.LossPercent[domain.WeatherCold] != 0.07 {
		t.Errorf("Expected cold loss 0.07, got %f", params.LossPercent[domain.WeatherCold])
	}
}

func TestNewParams(t *testing.T) {
	customParams := NewParams(ParamsConfig{
		HotLossPercent:  0.12,
		ColdLossPercent: 0.05,
	})

	if customParams.LossPercent[domain.WeatherHot] != 0.12 {
		t.Errorf("Hot loss not set correctly, got %f, expected 0.12",
			customParams.LossPercent[domain.WeatherHot])
	}

	if customParams.LossPercent[domain.WeatherCold] != 0.05 {
		t.Errorf("Cold loss not set correctly, got %f, expected 0.05",
			customParams.LossPercent[domain.WeatherCold])
	}

	// Out-of-range values keep the defaults
	ignored := NewParams(ParamsConfig{HotLossPercent: 1.5, ColdLossPercent: -0.1})
	if ignored.LossPercent[domain.WeatherHot] != 0.10 {
		t.Errorf("Expected default hot loss to be kept, got %f", ignored.LossPercent[domain.WeatherHot])
	}
	if ignored.LossPercent[domain.WeatherCold] != 0.07 {
		t.Errorf("Expected default cold loss to be kept, got %f", ignored.LossPercent[domain.WeatherCold])
	}
}

func TestWastePercent(t *testing.T) {
	params := NewDefaultParams()

	loss, err := params.WastePercent(domain.WeatherCold)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loss != 0.07 {
		t.Errorf("Expected 0.07, got %f", loss)
	}

	_, err = params.WastePercent(domain.Weather("humid"))
	if !errors.Is(err, domain.ErrInvalidWeather) {
		t.Errorf("Expected ErrInvalidWeather, got %v", err)
	}

	// A key removed from the table is rejected rather than read as zero loss
	delete(params.LossPercent, domain.WeatherHot)
	if _, err := params.WastePercent(domain.WeatherHot); !errors.Is(err, domain.ErrInvalidWeather) {
		t.Errorf("Expected ErrInvalidWeather for missing entry, got %v", err)
	}
}
