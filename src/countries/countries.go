// Package countries maps free-text country names from deeds to ISO 3166-1
// alpha-2 codes. Resolution is total: anything unmatched falls back to Spain.
package countries

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/username/modelia/backend/src/logger"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCode is returned for empty or unresolvable country names.
const DefaultCode = "ES"

type alias struct {
	Name string
	Code string
}

// aliasTable maps normalized country names and common variants to alpha-2
// codes. It is deliberately a slice, not a map: the partial and word match
// fallbacks scan it in order, and the first hit wins, so the order here is
// part of the resolver's contract.
var aliasTable = []alias{
	{"ESPANA", "ES"},
	{"ALEMANIA", "DE"},
	{"FRANCIA", "FR"},
	{"ITALIA", "IT"},
	{"REINO UNIDO", "GB"},
	{"PORTUGAL", "PT"},
	{"PAISES BAJOS", "NL"},
	{"BELGICA", "BE"},
	{"ESTADOS UNIDOS", "US"},
	{"SUIZA", "CH"},
	{"REPUBLICA CHECA", "CZ"},

	{"SPAIN", "ES"},
	{"GERMANY", "DE"},
	{"DEUTSCHLAND", "DE"},
	{"FRANCE", "FR"},
	{"ITALY", "IT"},
	{"UK", "GB"},
	{"UNITED KINGDOM", "GB"},
	{"GREAT BRITAIN", "GB"},
	{"ENGLAND", "GB"},
	{"SCOTLAND", "GB"},
	{"WALES", "GB"},
	{"NORTHERN IRELAND", "GB"},
	{"HOLLAND", "NL"},
	{"NETHERLANDS", "NL"},
	{"HOLANDA", "NL"},
	{"BELGIUM", "BE"},
	{"BELGIQUE", "BE"},
	{"USA", "US"},
	{"UNITED STATES", "US"},
	{"ESTADOS UNIDOS DE AMERICA", "US"},
	{"SWITZERLAND", "CH"},
	{"SUISSE", "CH"},
	{"CZECH REPUBLIC", "CZ"},
	{"CZECHIA", "CZ"},
	{"CHECA", "CZ"},

	{"AUSTRIA", "AT"},
	{"OSTERREICH", "AT"},
	{"POLAND", "PL"},
	{"POLONIA", "PL"},
	{"SWEDEN", "SE"},
	{"SUECIA", "SE"},
	{"NORWAY", "NO"},
	{"NORUEGA", "NO"},
	{"DENMARK", "DK"},
	{"DINAMARCA", "DK"},
	{"FINLAND", "FI"},
	{"FINLANDIA", "FI"},
	{"IRELAND", "IE"},
	{"IRLANDA", "IE"},
	{"RUSSIA", "RU"},
	{"RUSIA", "RU"},
	{"CANADA", "CA"},
	{"AUSTRALIA", "AU"},
	{"JAPAN", "JP"},
	{"JAPON", "JP"},
	{"CHINA", "CN"},
	{"MOROCCO", "MA"},
	{"MARRUECOS", "MA"},
	{"MEXICO", "MX"},
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^A-Z0-9 ]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize uppercases a country name, strips diacritics, drops everything
// outside [A-Z0-9 ] and collapses whitespace runs to single spaces.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	stripped, _, err := transform.String(stripAccents, upper)
	if err != nil {
		// transform errors only on malformed input; fall back to the raw text
		stripped = upper
	}
	cleaned := nonAlnumRe.ReplaceAllString(stripped, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
}

// Resolve maps a free-text country name to its alpha-2 code. It never fails:
// empty or unmatched input resolves to DefaultCode. Matching tries, in order,
// an exact lookup, a mutual substring scan and a word-token scan over the
// alias table.
func Resolve(rawName string) string {
	if strings.TrimSpace(rawName) == "" {
		return DefaultCode
	}

	normalized := Normalize(rawName)

	for _, a := range aliasTable {
		if a.Name == normalized {
			return a.Code
		}
	}

	for _, a := range aliasTable {
		if strings.Contains(normalized, a.Name) || strings.Contains(a.Name, normalized) {
			logger.L.Info("Partial country match", "input", normalized, "alias", a.Name, "code", a.Code)
			return a.Code
		}
	}

	words := strings.Fields(normalized)
	if len(words) > 1 {
		for _, word := range words {
			if len(word) <= 3 {
				continue
			}
			for _, a := range aliasTable {
				for _, token := range strings.Fields(a.Name) {
					if token == word {
						logger.L.Info("Word country match", "word", word, "input", normalized, "alias", a.Name, "code", a.Code)
						return a.Code
					}
				}
			}
		}
	}

	logger.L.Warn("Could not resolve country name, defaulting", "input", rawName, "default", DefaultCode)
	return DefaultCode
}
