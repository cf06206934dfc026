package tui

import (
	"log/slog"
	"time"

	"hdsview/pkg/links"
	"hdsview/pkg/locale"
	"hdsview/pkg/settings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set by Start()
var Version = "dev"

// --- Messages ---

type clearStatusMsg struct{}
type uiTickMsg time.Time
type linkOpenedMsg struct{ url string }

const (
	amountField = iota
	rateField
)

// --- Model ---

type model struct {
	settings        *settings.Settings
	sub             settings.Subscriber
	gate            *links.Gate
	logger          *slog.Logger
	loc             locale.Locale
	tz              *time.Location
	now             time.Time
	inputs          []textinput.Model
	focusIdx        int
	pending         *links.Confirmation
	restoringBackup bool
	showHelp        bool
	statusMessage   string
	width           int
	height          int
}

func initialModel(s *settings.Settings, gate *links.Gate, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.Default()
	}

	ins := make([]textinput.Model, 2)
	for i := range ins {
		ins[i] = textinput.New()
		ins[i].Width = 30
		ins[i].CharLimit = 32
	}
	ins[amountField].Placeholder = "Amount (e.g. 1,234.5)"
	ins[rateField].Placeholder = "Exchange rate (e.g. 0.25)"
	ins[amountField].Focus()

	return model{
		settings: s,
		sub:      s.Subscribe(),
		gate:     gate,
		logger:   logger,
		loc:      locale.New(s.Locale()),
		tz:       time.Local,
		now:      time.Now(),
		inputs:   ins,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		listenForSettings(m.sub),
		textinput.Blink,
		tea.Tick(time.Second, func(t time.Time) tea.Msg { return uiTickMsg(t) }),
	)
}
