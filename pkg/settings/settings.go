// Package settings persists the wallet UI preferences and broadcasts
// changes to them.
package settings

import (
	"log/slog"
	"sync"

	"hdsview/pkg/locale"
)

// Settings is the live, shared view of the persisted values. It satisfies
// links.Settings. When bound to a path, every change is saved immediately.
type Settings struct {
	values Values
	path   string
	logger *slog.Logger

	subscribers []Subscriber
	mu          sync.RWMutex
}

// New wraps vals. An empty path keeps changes in memory only.
func New(vals Values, path string, logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Settings{values: vals, path: path, logger: logger}
}

// Open loads the settings stored at path.
func Open(path string, logger *slog.Logger) (*Settings, error) {
	vals, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return New(vals, path, logger), nil
}

func (s *Settings) Path() string {
	return s.path
}

// Values returns a snapshot of the current values.
func (s *Settings) Values() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Locale returns the saved locale, or locale.DefaultName if the saved one
// is missing or unsupported.
func (s *Settings) Locale() string {
	s.mu.RLock()
	saved := s.values.Locale
	s.mu.RUnlock()

	if saved != "" && locale.IsSupported(saved) {
		return saved
	}
	return locale.DefaultName
}

func (s *Settings) LanguageName() string {
	return locale.LanguageName(s.Locale())
}

// SetLocale switches to name; unsupported names select the default locale.
func (s *Settings) SetLocale(name string) {
	if !locale.IsSupported(name) {
		name = locale.DefaultName
	}

	s.mu.Lock()
	changed := s.values.Locale != name
	s.values.Locale = name
	s.mu.Unlock()

	if changed {
		s.persist()
		s.notify(Event{Type: EventLocaleChanged, Data: name})
	}
}

// SetLocaleByLanguage selects the locale whose picker name is language.
func (s *Settings) SetLocaleByLanguage(language string) {
	s.SetLocale(locale.NameByLanguage(language))
}

func (s *Settings) IsAllowedExternalLinks() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.AllowExternalLinks
}

func (s *Settings) SetAllowedExternalLinks(allowed bool) {
	s.mu.Lock()
	changed := s.values.AllowExternalLinks != allowed
	s.values.AllowExternalLinks = allowed
	s.mu.Unlock()

	if changed {
		s.persist()
		s.notify(Event{Type: EventLinksConsentChanged, Data: allowed})
	}
}

// Restore replaces the current values with the last backup of the bound
// file.
func (s *Settings) Restore() error {
	if s.path == "" {
		return nil
	}
	if err := RestoreLastBackup(s.path); err != nil {
		return err
	}
	vals, err := LoadFromFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = vals
	s.mu.Unlock()

	s.notify(Event{Type: EventRestored, Data: vals})
	return nil
}

// persist saves the current values. Failures are logged; callers of the
// setters never see them.
func (s *Settings) persist() {
	if s.path == "" {
		return
	}
	vals := s.Values()
	if err := Save(vals, s.path); err != nil {
		s.logger.Error("failed to save settings", "path", s.path, "err", err)
		return
	}
	s.logger.Debug("settings saved", "path", s.path)
}

// Subscribe adds a new subscriber and returns a channel to receive events.
func (s *Settings) Subscribe() Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(Subscriber, 100)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber.
func (s *Settings) Unsubscribe(ch Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

func (s *Settings) notify(event Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subscribers {
		select {
		case sub <- event:
		default:
			s.logger.Warn("settings subscriber is full, dropping event", "type", event.Type)
		}
	}
}
