package report

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported report language.
type Locale string

// Supported locales
const (
	LocaleUzbek   Locale = "uz"
	LocaleRussian Locale = "ru"
	LocaleEnglish Locale = "en"
)

// ErrUnsupportedLocale is returned for languages without a catalog.
var ErrUnsupportedLocale = errors.New("unsupported locale")

var localeTags = map[Locale]language.Tag{
	LocaleUzbek:   language.Uzbek,
	LocaleRussian: language.Russian,
	LocaleEnglish: language.English,
}

// Locales returns the supported locales.
func Locales() []Locale {
	return []Locale{LocaleUzbek, LocaleRussian, LocaleEnglish}
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if tag, ok := localeTags[l]; ok {
		return tag
	}
	return language.Und
}

// IsValid reports whether l is a supported locale.
func (l Locale) IsValid() bool {
	_, ok := localeTags[l]
	return ok
}

// ParseLocale accepts a BCP 47 tag such as "ru" or "uz-Latn-UZ" and
// returns the supported locale of its base language.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	base, _ := tag.Base()

	l := Locale(base.String())
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	return l, nil
}

// MatchLocale picks the best supported locale for an Accept-Language header
// value. It returns fallback when the header is empty, malformed or names
// no supported language.
func MatchLocale(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}

	requested, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(requested) == 0 {
		return fallback
	}

	supported := Locales()
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.Tag()
	}

	_, index, confidence := language.NewMatcher(tags).Match(requested...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}
