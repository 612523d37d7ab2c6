// Package format holds the pure field-level primitives of the Modelo 211
// positional format: fixed-width text, zero-filled numbers, canonical dates
// and NIF/NIE cleaning. Everything here is total; bad input degrades to a
// default value instead of an error.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/utils"
)

// Alignment selects the padding side for fixed-width text fields.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// OutputDateFormat is the DDMMYYYY rendering used throughout the file.
const OutputDateFormat = "02012006"

// dateLayouts are the accepted input formats, tried in order. Punctuation in
// the input is canonicalized to '/' before parsing.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"2006-01-02",
	"02/01/06",
	"02-01-06",
}

var (
	datePunctRe   = regexp.MustCompile(`[^\w\s]`)
	identityRe    = regexp.MustCompile(`[^A-Z0-9]`)
	numericKeepRe = regexp.MustCompile(`[^\d.,-]`)
)

// Text strips diacritics from value, then pads or truncates it to exactly
// width characters, left-aligned with spaces. Truncation drops trailing
// characters silently; the format has no way to report overlong input.
func Text(value string, width int) string {
	return TextAligned(value, width, AlignLeft, ' ')
}

// TextAligned is Text with explicit alignment and fill rune.
func TextAligned(value string, width int, align Alignment, fill rune) string {
	cleaned := []rune(utils.StripDiacritics(strings.TrimSpace(value)))
	if len(cleaned) >= width {
		return string(cleaned[:width])
	}

	pad := width - len(cleaned)
	switch align {
	case AlignRight:
		return strings.Repeat(string(fill), pad) + string(cleaned)
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(string(fill), left) + string(cleaned) + strings.Repeat(string(fill), pad-left)
	default:
		return string(cleaned) + strings.Repeat(string(fill), pad)
	}
}

// ParseNumber coerces value to a float64, tolerating currency symbols,
// thousands separators and comma decimals. The second return is true when the
// value could not be parsed and 0 was substituted, which callers may use for
// logging or to apply a field-specific default instead.
func ParseNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, true
		}
		return v, false
	case float32:
		return float64(v), false
	case int:
		return float64(v), false
	case int64:
		return float64(v), false
	case string:
		return parseNumericString(v)
	default:
		return 0, true
	}
}

func parseNumericString(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, true
	}
	neg := strings.HasPrefix(trimmed, "-")

	cleaned := numericKeepRe.ReplaceAllString(trimmed, "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// European style: dots group thousands, comma is the decimal mark.
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Count(cleaned, ".") > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, true
	}
	if neg {
		v = -v
	}
	return v, false
}

// Number renders value as a zero-padded numeric field of exactly width
// characters, with the given count of fractional digits (none renders the
// integer part only, truncated toward zero). A value too wide for the field
// saturates to all nines rather than dropping low-order digits.
func Number(value any, width, decimals int) string {
	v, usedDefault := ParseNumber(value)
	if usedDefault {
		logger.L.Warn("Unparseable numeric field value, substituting 0", "value", value)
	}

	var rendered string
	if decimals > 0 {
		rendered = strconv.FormatFloat(v, 'f', decimals, 64)
	} else {
		rendered = strconv.FormatInt(int64(v), 10)
	}

	neg := strings.HasPrefix(rendered, "-")
	body := rendered
	bodyWidth := width
	if neg {
		body = rendered[1:]
		bodyWidth = width - 1
	}

	if len(body) > bodyWidth || bodyWidth <= 0 {
		logger.L.Warn("Numeric field overflow, saturating", "value", rendered, "width", width)
		return strings.Repeat("9", width)
	}

	padded := strings.Repeat("0", bodyWidth-len(body)) + body
	if neg {
		return "-" + padded
	}
	return padded
}

// Date parses text against the accepted layouts and renders it DDMMYYYY.
// Empty or unparseable input falls back to the current system date.
func Date(text string) string {
	if strings.TrimSpace(text) == "" {
		return time.Now().Format(OutputDateFormat)
	}

	cleaned := datePunctRe.ReplaceAllString(text, "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(OutputDateFormat)
		}
	}

	logger.L.Warn("Could not parse date, using current date", "input", text)
	return time.Now().Format(OutputDateFormat)
}

// Identity cleans a NIF/NIE/passport number: uppercase, alphanumerics only,
// left-padded with zeros to 9 characters or truncated to 9. An input with no
// alphanumeric characters at all stays empty; the encoder space-fills it.
func Identity(text string) string {
	cleaned := identityRe.ReplaceAllString(strings.ToUpper(text), "")
	if cleaned == "" {
		return ""
	}
	if len(cleaned) < 9 {
		cleaned = strings.Repeat("0", 9-len(cleaned)) + cleaned
	}
	return cleaned[:9]
}
