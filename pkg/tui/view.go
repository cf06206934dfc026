package tui

import (
	"fmt"
	"strings"

	"hdsview/pkg/layout"
	"hdsview/pkg/links"
	"hdsview/pkg/utils"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.pending != nil {
		return m.viewConfirmLink()
	}

	if m.restoringBackup {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
				titleStyle.Render("Confirm Restore"),
				"\n",
				"Are you sure you want to restore the last backup?",
				"Current settings will be overwritten.",
				"\n",
				subtleStyle.Render("(y) Yes • (n) No"),
			)),
		)
	}

	if m.showHelp {
		return m.viewHelp()
	}

	return m.viewMain()
}

func (m model) viewMain() string {
	p := m.preview()
	second := m.secondCurrency()

	rows := []string{
		labelStyle.Render("Amount") + m.inputs[amountField].View(),
		labelStyle.Render("Rate") + m.inputs[rateField].View() + subtleStyle.Render(fmt.Sprintf(" HDS → %s", second.Label())),
		"",
	}

	switch {
	case p.Machine == "":
		rows = append(rows, subtleStyle.Render("Type an amount to preview it."))
	case p.Err != nil:
		rows = append(rows,
			labelStyle.Render("Display")+p.Display,
			labelStyle.Render("Machine")+p.Machine,
			errStyle.Render(p.Err.Error()),
		)
	default:
		rows = append(rows,
			labelStyle.Render("Display")+p.Display,
			labelStyle.Render("Machine")+p.Machine,
			labelStyle.Render("Units")+p.Units,
		)
		if p.Converted != "" {
			rows = append(rows, labelStyle.Render("≈")+infoStyle.Render(p.Converted))
		}
	}

	rows = append(rows,
		"",
		labelStyle.Render("Now")+p.Now,
		labelStyle.Render("Expires")+p.Never,
	)

	linkState := "ask first"
	if links.Decide(m.settings) == links.Direct {
		linkState = "allowed"
	}
	info := subtleStyle.Render(fmt.Sprintf("%s (%s) • links: %s",
		m.settings.LanguageName(), m.loc.Name, linkState))

	title := titleStyle.Render("HDS Wallet View")
	if Version != "" {
		title += subtleStyle.Render(" " + Version)
	}

	content := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	footer := subtleStyle.Render("tab: switch field • L: language • o: downloads • c: copy • ?: help • q: quit")

	status := ""
	if m.statusMessage != "" {
		status = infoStyle.Render(utils.TruncateString(m.statusMessage, max(m.width, 20)))
	}

	gap := layout.LogoTopGapRows(m.height)
	return strings.Repeat("\n", gap) + lipgloss.PlaceHorizontal(
		m.width,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, info, "\n", content, status, footer),
	)
}

func (m model) viewConfirmLink() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Open External Link"),
			"\n",
			"The wallet wants to open this page in your browser:",
			infoStyle.Render(utils.TruncateString(m.pending.URL, 60)),
			"Accepting allows external links from now on.",
			"\n",
			subtleStyle.Render("(y) Yes • (n) No"),
		)),
	)
}

func (m model) viewHelp() string {
	title := "Main View"
	shortcuts := []string{
		"tab/↓: Next Field",
		"S-tab/↑: Previous Field",
		"L: Next Language",
		"o: Open Downloads Page",
		"c: Copy Amount",
		"B: Restore Backup",
		"q/esc: Quit",
		"?: Toggle Help",
	}

	header := titleStyle.Render(fmt.Sprintf("Help: %s", title))
	content := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "\n", strings.Join(shortcuts, "\n")))
	footer := subtleStyle.Render("Press '?' or 'esc' to close")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, content, "\n", footer),
	)
}
