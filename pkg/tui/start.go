package tui

import (
	"fmt"
	"log/slog"

	"hdsview/pkg/links"
	"hdsview/pkg/settings"

	tea "github.com/charmbracelet/bubbletea"
)

// Start runs the terminal UI until the user quits.
func Start(s *settings.Settings, gate *links.Gate, logger *slog.Logger, version string) error {
	Version = version
	m := initialModel(s, gate, logger)
	defer s.Unsubscribe(m.sub)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
