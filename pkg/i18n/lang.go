package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps header size before parsing. RFC 9110 sets no
// limit; 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// Matcher negotiates a catalog language from Accept-Language headers.
type Matcher struct {
	matcher     language.Matcher
	supported   []string
	defaultLang string
}

// NewMatcher builds a matcher over the supported language codes. The first
// code that parses becomes the negotiation default; defaultLang is returned
// when nothing is usable.
func NewMatcher(supported []string, defaultLang string) *Matcher {
	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return &Matcher{defaultLang: defaultLang}
	}
	return &Matcher{
		matcher:     language.NewMatcher(tags),
		supported:   codes,
		defaultLang: defaultLang,
	}
}

// Match picks the best supported language for an Accept-Language header.
// Malformed or empty headers yield the default language.
func (m *Matcher) Match(acceptLanguage string) string {
	if m.matcher == nil {
		return m.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		// Cut at the last complete entry so truncation never leaves a
		// partial tag that would fail parsing.
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(acceptLanguage, ','); i >= 0 {
			acceptLanguage = acceptLanguage[:i]
		}
	}

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return m.defaultLang
	}

	_, index, confidence := m.matcher.Match(wanted...)
	if confidence == language.No {
		return m.defaultLang
	}
	return m.supported[index]
}
