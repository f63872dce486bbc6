package resolver

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	boolTrue  = map[string]bool{"ON": true, "TRUE": true, "1": true, "YES": true}
	boolFalse = map[string]bool{"OFF": true, "FALSE": true, "0": true, "NO": true}
)

// toFloat coerces an attribute value to a number. Strings are read up to
// the first character that cannot continue a decimal number, so "210.5 °C"
// and "45%" both yield their numeric prefix. NaN and infinities are
// rejected.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case interface{ Float64() (float64, error) }:
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case string:
		x, ok := leadingFloat(n)
		if !ok {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// leadingFloat parses the longest numeric prefix of s.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '+' || c == '-') && (end == 0 || s[end-1] == 'e' || s[end-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			break scan
		}
		end++
	}
	// Drop a dangling exponent or sign ("12e", "3e-").
	for end > 0 {
		c := s[end-1]
		if c == 'e' || c == 'E' || c == '+' || c == '-' {
			end--
			continue
		}
		break
	}
	if !seenDigit || end == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toInt coerces to a count, truncating fractional values. Values outside
// [0, math.MaxInt32] are rejected.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// toString accepts non-blank strings and formats numbers.
func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return "", false
		}
		return s, true
	case bool, nil:
		return "", false
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// toBool accepts booleans, switch-like strings and numbers.
func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		u := strings.ToUpper(strings.TrimSpace(b))
		if boolTrue[u] {
			return true, true
		}
		if boolFalse[u] {
			return false, true
		}
		return false, false
	}
	if f, ok := toFloat(v); ok {
		return f != 0, true
	}
	return false, false
}

// toDuration reads a time-left value. Numbers are minutes and are
// formatted as "2h 15m"; strings pass through.
func toDuration(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return toString(s)
	}
	f, ok := toFloat(v)
	if !ok {
		return "", false
	}
	return formatMinutes(f), true
}

func formatMinutes(m float64) string {
	if m < 0 {
		m = 0
	}
	total := int(math.Round(m))
	h, min := total/60, total%60
	if h == 0 {
		return strconv.Itoa(min) + "m"
	}
	return strconv.Itoa(h) + "h " + strconv.Itoa(min) + "m"
}

// toClock reads an end-time value. RFC 3339 timestamps are shown as
// "15:04" in the offset they carry, which is the printer's local time;
// other strings pass through.
func toClock(v any) (string, bool) {
	s, ok := toString(v)
	if !ok {
		return "", false
	}
	if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return ts.Format("15:04"), true
	}
	return s, true
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
