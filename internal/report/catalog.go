package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	msgTitle      = "Apartment report: %s"
	msgWeather    = "Weather: %s (loss %.0f%%)"
	msgRoom       = "%s: gross %.2f m², cutouts %.2f m², net %.2f m², material %.2f m²"
	msgNoRooms    = "No rooms"
	msgTotal      = "Total: room %.2f m², material %.2f m²"
	msgHot        = "hot"
	msgCold       = "cold"
	msgSheet      = "Summary"
	msgColRoom    = "Room"
	msgColGross   = "Gross, m²"
	msgColCutouts = "Cutouts, m²"
	msgColNet     = "Net, m²"
	msgColMat     = "Material, m²"
	msgTotalLabel = "Total"
	msgWeatherCol = "Weather"
	msgLossCol    = "Loss"
)

var translations = map[language.Tag]map[string]string{
	language.Uzbek: {
		msgTitle:      "Xonadon hisoboti: %s",
		msgWeather:    "Ob-havo: %s (yo'qotish %.0f%%)",
		msgRoom:       "%s: umumiy %.2f m², o'yiqlar %.2f m², sof %.2f m², material %.2f m²",
		msgNoRooms:    "Xonalar yo'q",
		msgTotal:      "Jami: xona %.2f m², material %.2f m²",
		msgHot:        "issiq",
		msgCold:       "sovuq",
		msgSheet:      "Hisobot",
		msgColRoom:    "Xona",
		msgColGross:   "Umumiy, m²",
		msgColCutouts: "O'yiqlar, m²",
		msgColNet:     "Sof, m²",
		msgColMat:     "Material, m²",
		msgTotalLabel: "Jami",
		msgWeatherCol: "Ob-havo",
		msgLossCol:    "Yo'qotish",
	},
	language.Russian: {
		msgTitle:      "Отчёт по квартире: %s",
		msgWeather:    "Погода: %s (потери %.0f%%)",
		msgRoom:       "%s: общая %.2f м², проёмы %.2f м², чистая %.2f м², материал %.2f м²",
		msgNoRooms:    "Комнат нет",
		msgTotal:      "Итого: площадь %.2f м², материал %.2f м²",
		msgHot:        "жаркая",
		msgCold:       "холодная",
		msgSheet:      "Итоги",
		msgColRoom:    "Комната",
		msgColGross:   "Общая, м²",
		msgColCutouts: "Проёмы, м²",
		msgColNet:     "Чистая, м²",
		msgColMat:     "Материал, м²",
		msgTotalLabel: "Итого",
		msgWeatherCol: "Погода",
		msgLossCol:    "Потери",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func newPrinter(l Locale) *message.Printer {
	tag := l.Tag()
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}
