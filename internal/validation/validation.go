package validation

import (
	"errors"
	"strings"
	"unicode"

	"weatherreport/internal/catalog"
)

// ErrNameEmpty is returned when a city name is empty or whitespace-only after trim.
var ErrNameEmpty = errors.New("city name is required")

// ErrNameTooLong is returned when a city name exceeds the maximum length.
var ErrNameTooLong = errors.New("city name too long")

// ErrNameInvalidChars is returned when a city name contains disallowed characters.
var ErrNameInvalidChars = errors.New("city name contains invalid characters")

// ErrLatitudeOutOfRange is returned when latitude is outside [-90, 90].
var ErrLatitudeOutOfRange = errors.New("latitude out of range")

// ErrLongitudeOutOfRange is returned when longitude is outside [-180, 180].
var ErrLongitudeOutOfRange = errors.New("longitude out of range")

// maxNameLen bounds city names in runes; the longest real city names sit
// well under this.
const maxNameLen = 80

// ValidateCity checks one catalog entry: name non-empty, within length
// bounds, restricted to letters (Unicode), digits, space, comma, hyphen,
// apostrophe and period; coordinates within the valid geographic ranges.
// Called on every entry at startup before any request is issued.
func ValidateCity(c catalog.City) error {
	name := strings.TrimSpace(c.Name)
	r := []rune(name)
	if len(r) == 0 {
		return ErrNameEmpty
	}
	if len(r) > maxNameLen {
		return ErrNameTooLong
	}
	for _, ch := range r {
		if !isAllowedNameRune(ch) {
			return ErrNameInvalidChars
		}
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}
	return nil
}

// isAllowedNameRune returns true for letters (Unicode), digits, space,
// comma, hyphen, apostrophe and period.
func isAllowedNameRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case ' ', ',', '-', '\'', '.':
		return true
	}
	return false
}
