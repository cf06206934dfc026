// Package amount holds wallet amount bounds, unit conversion and
// exchange-rate arithmetic on machine-form amount strings.
package amount

import "strings"

// Currency identifies a coin or fiat unit shown by the wallet.
type Currency int

const (
	HDS Currency = iota
	BTC
	LTC
	QTUM
	USD
	Unknown
)

// Label is the short ticker shown next to amounts. Unknown has no label.
func (c Currency) Label() string {
	switch c {
	case HDS:
		return "HDS"
	case BTC:
		return "BTC"
	case LTC:
		return "LTC"
	case QTUM:
		return "QTUM"
	case USD:
		return "USD"
	default:
		return ""
	}
}

// Name is the long display name used in swap forms.
func (c Currency) Name() string {
	switch c {
	case HDS:
		return "HDS"
	case BTC:
		return "Bitcoin"
	case LTC:
		return "Litecoin"
	case QTUM:
		return "QTUM"
	case USD:
		return "USD"
	default:
		return ""
	}
}

func (c Currency) FeeRateLabel() string {
	switch c {
	case HDS:
		return "GROTH"
	case BTC:
		return "sat/kB"
	case LTC:
		return "ph/kB"
	case QTUM:
		return "qsat/kB"
	default:
		return ""
	}
}

func (c Currency) String() string {
	if l := c.Label(); l != "" {
		return l
	}
	return "unknown"
}

// SwapCurrencies lists the coins offered in the currency pickers.
func SwapCurrencies() []Currency {
	return []Currency{HDS, BTC, LTC, QTUM}
}

func Labels(cs []Currency) []string {
	labels := make([]string, 0, len(cs))
	for _, c := range cs {
		labels = append(labels, c.Label())
	}
	return labels
}

// ParseCurrency maps a label back to its currency, ignoring case.
func ParseCurrency(label string) Currency {
	for c := HDS; c < Unknown; c++ {
		if strings.EqualFold(c.Label(), label) {
			return c
		}
	}
	return Unknown
}
