package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/domain"
)

func TestRenderTextEnglish(t *testing.T) {
	t.Parallel()

	summary := sampleSummary(t, domain.WeatherHot,
		sampleRoom("r1", "Kitchen"),
		sampleRoom("r2", ""),
	)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, summary, LocaleEnglish))

	want := strings.Join([]string{
		"Apartment report: Home",
		"Weather: hot (loss 10%)",
		"Kitchen: gross 20.00 m², cutouts 2.00 m², net 18.00 m², material 16.20 m²",
		"r2: gross 20.00 m², cutouts 2.00 m², net 18.00 m², material 16.20 m²",
		"Total: room 36.00 m², material 32.40 m²",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTextLocalized(t *testing.T) {
	t.Parallel()

	summary := sampleSummary(t, domain.WeatherCold, sampleRoom("r1", "Oshxona"))

	tests := []struct {
		locale Locale
		want   []string
	}{
		{LocaleUzbek, []string{"Xonadon hisoboti: Home", "Ob-havo: sovuq (yo'qotish 7%)", "Oshxona: umumiy", "Jami: xona"}},
		{LocaleRussian, []string{"Отчёт по квартире: Home", "Погода: холодная (потери 7%)", "Oshxona: общая", "Итого: площадь"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderText(&buf, summary, tt.locale))
			for _, fragment := range tt.want {
				assert.Contains(t, buf.String(), fragment)
			}
		})
	}
}

func TestRenderTextEmptyApartment(t *testing.T) {
	t.Parallel()

	summary := sampleSummary(t, domain.WeatherHot)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, summary, LocaleEnglish))
	assert.Contains(t, buf.String(), "No rooms\n")
	assert.Contains(t, buf.String(), "Total: room 0.00 m², material 0.00 m²")
}

func TestRenderTextRejectsUnknownLocale(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderText(&buf, sampleSummary(t, domain.WeatherHot), Locale("de"))
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderTextWriteError(t *testing.T) {
	t.Parallel()

	err := RenderText(failingWriter{}, sampleSummary(t, domain.WeatherHot), LocaleEnglish)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
