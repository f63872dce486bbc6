package resolver

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{210, 210, true},
		{int64(-4), -4, true},
		{uint8(7), 7, true},
		{float32(1.5), 1.5, true},
		{"55.1", 55.1, true},
		{" 210.5 °C", 210.5, true},
		{"45%", 45, true},
		{"-3e2", -300, true},
		{"12e", 12, true},
		{".5", 0.5, true},
		{json.Number("42"), 42, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{true, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{[]any{1}, 0, false},
	}

	for _, tt := range tests {
		got, ok := toFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "%#v", tt.in)
	}
}

func TestToInt(t *testing.T) {
	v, ok := toInt("118")
	assert.True(t, ok)
	assert.Equal(t, 118, v)

	v, ok = toInt(12.9)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	_, ok = toInt("n/a")
	assert.False(t, ok)

	for _, in := range []any{"1e30", -5, "-0.5e3", float64(math.MaxInt32) + 1, math.MaxInt64} {
		_, ok = toInt(in)
		assert.False(t, ok, "%#v", in)
	}

	v, ok = toInt(math.MaxInt32)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, v)
}

func TestToString(t *testing.T) {
	s, ok := toString("2h 15m")
	assert.True(t, ok)
	assert.Equal(t, "2h 15m", s)

	s, ok = toString(135)
	assert.True(t, ok)
	assert.Equal(t, "135", s)

	_, ok = toString("   ")
	assert.False(t, ok)
	_, ok = toString(false)
	assert.False(t, ok)
}

func TestToBool(t *testing.T) {
	for _, in := range []any{true, "on", "TRUE", "yes", 1, "1"} {
		v, ok := toBool(in)
		assert.True(t, ok, "%#v", in)
		assert.True(t, v, "%#v", in)
	}
	for _, in := range []any{false, "off", "No", 0} {
		v, ok := toBool(in)
		assert.True(t, ok, "%#v", in)
		assert.False(t, v, "%#v", in)
	}
	_, ok := toBool("maybe")
	assert.False(t, ok)
}

func TestToDuration(t *testing.T) {
	s, ok := toDuration(135)
	assert.True(t, ok)
	assert.Equal(t, "2h 15m", s)

	s, ok = toDuration(42.4)
	assert.True(t, ok)
	assert.Equal(t, "42m", s)

	s, ok = toDuration("1h 05m")
	assert.True(t, ok)
	assert.Equal(t, "1h 05m", s)

	s, ok = toDuration(-5)
	assert.True(t, ok)
	assert.Equal(t, "0m", s)

	_, ok = toDuration("")
	assert.False(t, ok)
}

func TestToClock(t *testing.T) {
	s, ok := toClock("2024-05-01T14:30:00+02:00")
	assert.True(t, ok)
	assert.Equal(t, "14:30", s)

	s, ok = toClock("2024-05-01T23:05:00-07:00")
	assert.True(t, ok)
	assert.Equal(t, "23:05", s, "keeps the timestamp's own offset")

	s, ok = toClock("16:45")
	assert.True(t, ok)
	assert.Equal(t, "16:45", s)
}

func TestFirstDefined(t *testing.T) {
	source := map[string]any{
		"print_progress": 62,
		"progress":       10,
		"broken":         "n/a",
		"missing":        nil,
	}

	assert.Equal(t, float64(62), firstDefined(source, []string{"print_progress", "progress"}, toFloat, 0))
	assert.Equal(t, float64(10), firstDefined(source, []string{"missing", "broken", "progress"}, toFloat, 0))
	assert.Equal(t, float64(7), firstDefined(source, []string{"absent"}, toFloat, 7))
	assert.Equal(t, "--:--", firstDefined(nil, []string{"end_time"}, toString, "--:--"))
}
