package words

import (
	"fmt"

	"golang.org/x/text/language"
)

// Supported lists the languages a word list ships for.
var Supported = []language.Tag{language.English}

var matcher = language.NewMatcher(Supported)

// Resolve parses a user supplied tag ("EN", "en-GB", ...) and maps it onto one
// of the Supported languages.
func Resolve(raw string) (language.Tag, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	return Supported[idx], nil
}

// baseOf returns the ISO 639 code of tag, e.g. "en".
func baseOf(tag language.Tag) string {
	b, _ := tag.Base()
	return b.String()
}
