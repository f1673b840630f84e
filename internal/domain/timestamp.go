package domain

import (
	"strings"
	"time"
)

// DefaultLayouts are tried in order; the first full match wins.
// The fractional form needs 1 to 6 digits, so it is spelled once per width:
// ".999999" would also accept no fraction or more than 6 digits.
var DefaultLayouts = append(fractionLayouts("2006-01-02T15:04:05", "Z", 6),
	"2006-01-02 15:04:05", // date + time with seconds
	"2006-01-02",          // date only, midnight
)

// fractionLayouts expands prefix.0suffix for fraction widths 1..widest.
func fractionLayouts(prefix, suffix string, widest int) []string {
	out := make([]string, 0, widest)
	for n := 1; n <= widest; n++ {
		out = append(out, prefix+"."+strings.Repeat("0", n)+suffix)
	}
	return out
}

// TimestampParser turns review timestamps and query bounds into comparable instants.
type TimestampParser struct {
	layouts []string
}

// NewTimestampParser builds a parser over layouts in priority order.
// With no layouts it uses DefaultLayouts.
func NewTimestampParser(layouts ...string) *TimestampParser {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	return &TimestampParser{layouts: append([]string(nil), layouts...)}
}

// With returns a parser that tries extra layouts after the current ones.
func (p *TimestampParser) With(layouts ...string) *TimestampParser {
	all := append(append([]string(nil), p.layouts...), layouts...)
	return &TimestampParser{layouts: all}
}

func (p *TimestampParser) Layouts() []string { return append([]string(nil), p.layouts...) }

// Parse returns the instant for s, or a *FormatError when no layout matches
// the whole string. All layouts are zone-less and read as UTC.
func (p *TimestampParser) Parse(s string) (time.Time, error) {
	for _, l := range p.layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FormatError{Value: s}
}

var defaultParser = NewTimestampParser()

// ParseTimestamp parses s with DefaultLayouts.
func ParseTimestamp(s string) (time.Time, error) { return defaultParser.Parse(s) }
