package report

import (
	"fmt"
	"io"

	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
	"golang.org/x/text/message"
)

// RenderText writes a human readable report of summary to w in the given
// locale: a title, the weather with its loss percentage, one line per room
// in apartment order, and the totals.
func RenderText(w io.Writer, summary area.ApartmentSummary, locale Locale) error {
	if !locale.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	p := newPrinter(locale)
	lines := []string{
		p.Sprintf(msgTitle, displayName(summary.Name, summary.ApartmentID)),
		p.Sprintf(msgWeather, weatherName(p, summary.Weather), summary.LossPercent*100),
	}

	if len(summary.Rooms) == 0 {
		lines = append(lines, p.Sprintf(msgNoRooms))
	}
	for _, room := range summary.Rooms {
		lines = append(lines, p.Sprintf(msgRoom,
			displayName(room.Name, room.RoomID),
			room.Gross, room.Cutouts, room.Net, room.Material,
		))
	}
	lines = append(lines, p.Sprintf(msgTotal, summary.Totals.Room, summary.Totals.Material))

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func weatherName(p *message.Printer, weather domain.Weather) string {
	switch weather {
	case domain.WeatherHot:
		return p.Sprintf(msgHot)
	case domain.WeatherCold:
		return p.Sprintf(msgCold)
	default:
		return string(weather)
	}
}

// displayName falls back to the ID for unnamed records.
func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
