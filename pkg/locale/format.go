package locale

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"hdsview/pkg/utils"
)

// NeverSentinel is 2^32-1 seconds past the epoch, in milliseconds. Expiry
// times at or past it mean "no expiration".
const NeverSentinel int64 = 4294967295000

// FormatTimestamp renders ms (milliseconds since the epoch) as
// "<date> | <time> (GMT <offset>)" in tz, or the localized "Never" label for
// timestamps at or past NeverSentinel. The offset has whole-hour granularity,
// so zones like +05:30 show as +5. A nil tz means time.Local.
func FormatTimestamp(ms int64, loc Locale, tz *time.Location) string {
	if ms >= NeverSentinel {
		return loc.Never()
	}
	if tz == nil {
		tz = time.Local
	}

	t := time.UnixMilli(ms).In(tz)
	_, offset := t.Zone()
	hours := offset / 3600

	sign := ""
	if hours >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s | %s (GMT %s%d)",
		t.Format(loc.dateLayout()),
		t.Format(loc.timeLayout()),
		sign,
		hours,
	)
}

// ToDisplayAmount converts a machine-form amount ("1234567.89") to display
// form ("1,234,567.89" for en_US). Leading zeros of the integer part are
// dropped. Input that is not a number is grouped as-is and never rejected.
func ToDisplayAmount(machine string, loc Locale) string {
	parts := strings.Split(machine, ".")

	left := parts[0]
	if n, ok := new(big.Int).SetString(parts[0], 10); ok {
		left = n.String()
	}
	left = utils.GroupDigits(left, loc.GroupSeparator)

	if len(parts) > 1 && parts[1] != "" {
		return left + loc.decimalPoint() + parts[1]
	}
	return left
}

// ToMachineAmount reverses ToDisplayAmount: group separators are removed and
// the locale decimal point becomes ".".
func ToMachineAmount(display string, loc Locale) string {
	s := display
	if loc.GroupSeparator != "" {
		s = strings.ReplaceAll(s, loc.GroupSeparator, "")
	}
	if dp := loc.decimalPoint(); dp != "." {
		s = strings.ReplaceAll(s, dp, ".")
	}
	return s
}
