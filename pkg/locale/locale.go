// Package locale converts amounts and timestamps between their machine form
// and the form shown to the user in a given locale.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale carries everything the formatters need about a user locale. It is
// passed explicitly to every call; nothing here reads process-wide state.
type Locale struct {
	Name           string // e.g. "en_US"
	Tag            language.Tag
	GroupSeparator string
	DecimalPoint   string
	DateLayout     string // time.Format layout
	TimeLayout     string
}

type layouts struct {
	date string
	time string
}

var defaultLayouts = layouts{date: "1/2/2006", time: "3:04:05 PM"}

// Keyed by base language.
var layoutTable = map[string]layouts{
	"en": defaultLayouts,
	"de": {date: "2.1.2006", time: "15:04:05"},
	"ru": {date: "02.01.2006", time: "15:04:05"},
	"be": {date: "02.01.2006", time: "15:04:05"},
	"cs": {date: "2. 1. 2006", time: "15:04:05"},
	"fi": {date: "2.1.2006", time: "15.04.05"},
	"tr": {date: "02.01.2006", time: "15:04:05"},
	"es": {date: "2/1/2006", time: "15:04:05"},
	"fr": {date: "02/01/2006", time: "15:04:05"},
	"it": {date: "2/1/2006", time: "15:04:05"},
	"id": {date: "2/1/2006", time: "15.04.05"},
	"vi": {date: "2/1/2006", time: "15:04:05"},
	"th": {date: "2/1/2006", time: "15:04:05"},
	"nl": {date: "2-1-2006", time: "15:04:05"},
	"sv": {date: "2006-01-02", time: "15:04:05"},
	"zh": {date: "2006/1/2", time: "15:04:05"},
	"ja": {date: "2006/1/2", time: "15:04:05"},
	"ko": {date: "2006. 1. 2.", time: "15:04:05"},
}

// New builds the Locale for an identifier such as "en_US" or "de-DE".
// Unknown identifiers yield a locale with English layouts and "," / "."
// separators.
func New(name string) Locale {
	tag := language.Make(strings.ReplaceAll(name, "_", "-"))
	group, decimal := probeSeparators(message.NewPrinter(tag))

	lay := defaultLayouts
	if base, _ := tag.Base(); base.String() != "" {
		if l, ok := layoutTable[base.String()]; ok {
			lay = l
		}
	}

	return Locale{
		Name:           name,
		Tag:            tag,
		GroupSeparator: group,
		DecimalPoint:   decimal,
		DateLayout:     lay.date,
		TimeLayout:     lay.time,
	}
}

// probeSeparators prints known numbers and reads the separators back. The
// probe uses seven digits so locales that only group from five digits up
// still show their separator.
func probeSeparators(p *message.Printer) (group, decimal string) {
	group, decimal = ",", "."

	g := p.Sprintf("%d", 1234567)
	if strings.HasPrefix(g, "1") && strings.HasSuffix(g, "567") {
		rest := g[1 : len(g)-3]
		if len(rest) > 3 && (len(rest)-3)%2 == 0 {
			n := (len(rest) - 3) / 2
			if rest[n:n+3] == "234" && rest[:n] == rest[n+3:] {
				group = rest[:n]
			}
		}
	}

	d := p.Sprintf("%.1f", 1.5)
	if len(d) > 2 && strings.HasPrefix(d, "1") && strings.HasSuffix(d, "5") {
		decimal = d[1 : len(d)-1]
	}
	return group, decimal
}

func (l Locale) decimalPoint() string {
	if l.DecimalPoint == "" {
		return "."
	}
	return l.DecimalPoint
}

func (l Locale) dateLayout() string {
	if l.DateLayout == "" {
		return defaultLayouts.date
	}
	return l.DateLayout
}

func (l Locale) timeLayout() string {
	if l.TimeLayout == "" {
		return defaultLayouts.time
	}
	return l.TimeLayout
}
