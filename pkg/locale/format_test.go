package locale

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	enUS    = Locale{Name: "en_US", GroupSeparator: ",", DecimalPoint: "."}
	spaced  = Locale{Name: "xx_XX", GroupSeparator: " ", DecimalPoint: ","}
	dotted  = Locale{Name: "yy_YY", GroupSeparator: ".", DecimalPoint: ","}
	noGroup = Locale{Name: "zz_ZZ", DecimalPoint: "."}
)

func TestToDisplayAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		loc      Locale
		expected string
	}{
		{"Integer", "1234567", enUS, "1,234,567"},
		{"Fraction untouched", "1234567.89", enUS, "1,234,567.89"},
		{"Long fraction", "1234.123456789", enUS, "1,234.123456789"},
		{"Short", "123", enUS, "123"},
		{"Leading zeros", "007.5", enUS, "7.5"},
		{"Zero", "0", enUS, "0"},
		{"Negative", "-1234", enUS, "-1,234"},
		{"Empty fraction dropped", "5.", enUS, "5"},
		{"Missing integer part", ".5", enUS, ".5"},
		{"Non numeric passthrough", "abc", enUS, "abc"},
		{"Non numeric with digits", "abc1234", enUS, "abc1,234"},
		{"Empty", "", enUS, ""},
		{"Space grouping", "1234567.89", spaced, "1 234 567,89"},
		{"Dot grouping", "1234567.89", dotted, "1.234.567,89"},
		{"No separator", "1234567", noGroup, "1234567"},
		{"Huge integer", "123456789012345678901234567890", enUS, "123,456,789,012,345,678,901,234,567,890"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ToDisplayAmount(tt.input, tt.loc))
		})
	}
}

func TestToMachineAmount(t *testing.T) {
	assert.Equal(t, "1234567.89", ToMachineAmount("1,234,567.89", enUS))
	assert.Equal(t, "1234567.89", ToMachineAmount("1 234 567,89", spaced))
	assert.Equal(t, "1234567.89", ToMachineAmount("1.234.567,89", dotted))
	assert.Equal(t, "1234567", ToMachineAmount("1234567", noGroup))
	assert.Equal(t, "", ToMachineAmount("", enUS))
}

func TestAmountRoundTrip(t *testing.T) {
	amounts := []string{
		"0", "1", "12", "123", "1234", "12345", "123456", "1234567",
		"0.00000001", "254000000", "1234.5", "99999999.99999999",
	}
	for _, loc := range []Locale{enUS, spaced, dotted, noGroup} {
		for _, a := range amounts {
			assert.Equal(t, a, ToMachineAmount(ToDisplayAmount(a, loc), loc), "locale %s amount %s", loc.Name, a)
		}
	}

	// Leading zeros collapse.
	assert.Equal(t, "7.5", ToMachineAmount(ToDisplayAmount("007.5", enUS), enUS))
}

func TestFormatTimestamp_NeverSentinel(t *testing.T) {
	assert.Equal(t, "Never", FormatTimestamp(NeverSentinel, enUS, time.UTC))
	assert.Equal(t, "Never", FormatTimestamp(NeverSentinel+1, enUS, time.UTC))

	justBefore := FormatTimestamp(NeverSentinel-1, enUS, time.UTC)
	assert.NotEqual(t, "Never", justBefore)
	assert.Contains(t, justBefore, " | ")
	assert.True(t, strings.HasSuffix(justBefore, "(GMT +0)"), justBefore)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		tz       *time.Location
		expected string
	}{
		{"Epoch UTC", 0, time.UTC, "1/1/1970 | 12:00:00 AM (GMT +0)"},
		{"Afternoon", 1700000000000, time.UTC, "11/14/2023 | 10:13:20 PM (GMT +0)"},
		{"West of UTC", 0, time.FixedZone("EST", -5*3600), "12/31/1969 | 7:00:00 PM (GMT -5)"},
		{"East of UTC", 0, time.FixedZone("CET", 3600), "1/1/1970 | 1:00:00 AM (GMT +1)"},
		{"Half hour east", 0, time.FixedZone("IST", 5*3600+1800), "1/1/1970 | 5:30:00 AM (GMT +5)"},
		{"Half hour west", 0, time.FixedZone("NST", -(3*3600 + 1800)), "12/31/1969 | 8:30:00 PM (GMT -3)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatTimestamp(tt.ms, enUS, tt.tz))
		})
	}
}

func TestFormatTimestamp_LocaleLayouts(t *testing.T) {
	de := New("de_DE")
	assert.Equal(t, "1.1.1970 | 00:00:00 (GMT +0)", FormatTimestamp(0, de, time.UTC))

	sv := New("sv_SE")
	assert.Equal(t, "1970-01-01 | 00:00:00 (GMT +0)", FormatTimestamp(0, sv, time.UTC))
}
