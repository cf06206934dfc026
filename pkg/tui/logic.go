package tui

import (
	"time"

	"hdsview/pkg/amount"
	"hdsview/pkg/links"
	"hdsview/pkg/locale"
	"hdsview/pkg/settings"

	tea "github.com/charmbracelet/bubbletea"
)

// preview is everything the main view derives from the two inputs.
type preview struct {
	Machine   string
	Display   string
	Err       error
	Units     string
	Converted string
	Now       string
	Never     string
}

func (m model) machineAmount() string {
	return locale.ToMachineAmount(m.inputs[amountField].Value(), m.loc)
}

func (m model) secondCurrency() amount.Currency {
	return amount.ParseCurrency(m.settings.Values().SecondCurrency)
}

func (m model) preview() preview {
	p := preview{
		Now:   locale.FormatTimestamp(m.now.UnixMilli(), m.loc, m.tz),
		Never: locale.FormatTimestamp(locale.NeverSentinel, m.loc, m.tz),
	}

	p.Machine = m.machineAmount()
	if p.Machine == "" {
		return p
	}
	p.Display = locale.ToDisplayAmount(p.Machine, m.loc)

	if p.Err = amount.Validate(p.Machine); p.Err != nil {
		return p
	}
	if units, err := amount.ToUnits(p.Machine); err == nil {
		p.Units = amount.FromUnits(units, amount.HDS)
	}

	rate := locale.ToMachineAmount(m.inputs[rateField].Value(), m.loc)
	second := m.secondCurrency()
	if converted := amount.InSecondCurrency(p.Machine, rate, second); converted != "" {
		p.Converted = locale.ToDisplayAmount(converted, m.loc) + " " + second.Label()
	}
	return p
}

// requestDownloads asks the gate for the downloads page. When consent is
// missing the confirmation is parked on the model until the user answers.
func (m model) requestDownloads() model {
	var pending *links.Confirmation
	dialog := links.DialogFunc(func(c *links.Confirmation) { pending = c })
	logger := m.logger

	m.gate.NavigateToDownloads(m.settings, dialog, func() {
		logger.Debug("downloads request finished")
	})

	if pending != nil {
		m.pending = pending
		return m
	}
	m.statusMessage = "Opening downloads page..."
	return m
}

func (m *model) focus(idx int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (idx + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

func openLink(g *links.Gate, url string) tea.Cmd {
	return func() tea.Msg {
		if g.Open != nil {
			g.Open(url)
		}
		return linkOpenedMsg{url: url}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func listenForSettings(sub settings.Subscriber) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sub
		if !ok {
			return nil
		}
		return ev
	}
}
