package tui

import (
	"fmt"
	"time"

	"hdsview/pkg/locale"
	"hdsview/pkg/settings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case settings.Event:
		cmds = append(cmds, listenForSettings(m.sub))

		switch msg.Type {
		case settings.EventLocaleChanged:
			m.loc = locale.New(m.settings.Locale())
		case settings.EventLinksConsentChanged:
			if allowed, ok := msg.Data.(bool); ok && allowed {
				m.statusMessage = "External links allowed"
				cmds = append(cmds, clearStatusLater())
			}
		case settings.EventRestored:
			m.loc = locale.New(m.settings.Locale())
			m.statusMessage = "Settings restored from backup"
			cmds = append(cmds, clearStatusLater())
		}

	case linkOpenedMsg:
		m.logger.Info("opened external link", "url", msg.url)
		m.statusMessage = "Opened in browser"
		cmds = append(cmds, clearStatusLater())

	case tea.KeyMsg:
		if m.pending != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				c := m.pending
				m.pending = nil
				c.Accept()
				return m, openLink(m.gate, c.URL)
			case "n", "N", "q", "esc":
				m.pending.Cancel()
				m.pending = nil
			}
			return m, nil
		}

		if m.restoringBackup {
			switch msg.String() {
			case "y", "Y", "enter":
				m.restoringBackup = false
				if err := m.settings.Restore(); err != nil {
					m.statusMessage = fmt.Sprintf("Restore failed: %v", err)
					return m, clearStatusLater()
				}
			case "n", "N", "q", "esc":
				m.restoringBackup = false
			}
			return m, nil
		}

		if msg.String() == "?" {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			if msg.String() == "q" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "L":
			next := locale.Next(m.settings.Locale())
			m.settings.SetLocale(next)
			m.loc = locale.New(m.settings.Locale())
			m.statusMessage = fmt.Sprintf("Language: %s", m.settings.LanguageName())
			cmds = append(cmds, clearStatusLater())

		case "o":
			m = m.requestDownloads()
			if m.pending == nil {
				cmds = append(cmds, clearStatusLater())
			}

		case "B":
			if m.settings.Path() != "" {
				m.restoringBackup = true
			}

		case "c":
			machine := m.machineAmount()
			if machine == "" {
				m.statusMessage = "Nothing to copy"
			} else if err := clipboard.WriteAll(machine); err != nil {
				m.statusMessage = "Failed to copy to clipboard"
			} else {
				m.statusMessage = "Amount copied to clipboard!"
			}
			cmds = append(cmds, clearStatusLater())

		case "tab", "down":
			m.focus(m.focusIdx + 1)
		case "shift+tab", "up":
			m.focus(m.focusIdx - 1)

		default:
			var cmd tea.Cmd
			m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
			cmds = append(cmds, cmd)
		}

	case uiTickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tea.Tick(time.Second, func(t time.Time) tea.Msg { return uiTickMsg(t) }))

	case clearStatusMsg:
		m.statusMessage = ""

	default:
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
