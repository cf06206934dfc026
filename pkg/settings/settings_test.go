package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdsview/pkg/links"
)

var _ links.Settings = (*Settings)(nil)

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader(`locale = `))
	assert.Error(t, err)
}

func TestLoad_TableDriven(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		content     string
		expectError bool
		validate    func(*testing.T, Values)
	}{
		{
			name: "Full File",
			content: `
locale = "de_DE"
external_links_allowed = true
lock_timeout = 5
require_password_to_spend_money = true
second_currency = "BTC"
show_swap_beta_warning = false
`,
			validate: func(t *testing.T, v Values) {
				assert.Equal(t, "de_DE", v.Locale)
				assert.True(t, v.AllowExternalLinks)
				assert.Equal(t, 5, v.LockTimeoutMinutes)
				assert.True(t, v.RequirePasswordToSpend)
				assert.Equal(t, "BTC", v.SecondCurrency)
				assert.False(t, v.ShowSwapBetaWarning)
			},
		},
		{
			name:    "Empty File (Defaults)",
			content: ``,
			validate: func(t *testing.T, v Values) {
				assert.Equal(t, Defaults(), v)
			},
		},
		{
			name:    "Partial File",
			content: `external_links_allowed = true`,
			validate: func(t *testing.T, v Values) {
				assert.True(t, v.AllowExternalLinks)
				assert.Equal(t, "en_US", v.Locale)
				assert.Equal(t, "USD", v.SecondCurrency)
			},
		},
		{
			name:        "Malformed TOML",
			content:     `locale = "unterminated`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vals, err := Load(strings.NewReader(tt.content))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, vals)
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	vals, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), vals)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	in := Defaults()
	in.Locale = "fr_FR"
	in.AllowExternalLinks = true
	in.LockTimeoutMinutes = 15
	require.NoError(t, Save(in, path))

	out, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestSave_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	bad := Defaults()
	bad.Locale = " "
	assert.Error(t, Save(bad, path))

	bad = Defaults()
	bad.LockTimeoutMinutes = -1
	assert.Error(t, Save(bad, path))
}

func TestSave_BackupAndRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	first := Defaults()
	first.Locale = "it_IT"
	require.NoError(t, Save(first, path))

	second := first
	second.Locale = "ja_JP"
	require.NoError(t, Save(second, path))

	backups, err := filepath.Glob(path + ".*.bak")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	require.NoError(t, RestoreLastBackup(path))
	restored, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "it_IT", restored.Locale)
}

func TestRestoreLastBackup_None(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	assert.Error(t, RestoreLastBackup(path))
}

func TestSave_PermissionError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	tmpDir := t.TempDir()
	if err := os.Chmod(tmpDir, 0500); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chmod(tmpDir, 0700) }()

	err := Save(Defaults(), filepath.Join(tmpDir, "settings.toml"))
	if err == nil {
		t.Error("Expected permission error, got nil")
	}
}

func TestSettings_Locale(t *testing.T) {
	s := New(Values{Locale: "xx_XX"}, "", nil)
	assert.Equal(t, "en_US", s.Locale())
	assert.Equal(t, "English", s.LanguageName())

	s.SetLocaleByLanguage("Deutsch")
	assert.Equal(t, "de_DE", s.Locale())

	s.SetLocale("nonsense")
	assert.Equal(t, "en_US", s.Locale())
}

func TestSettings_ConsentPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := Open(path, nil)
	require.NoError(t, err)
	assert.False(t, s.IsAllowedExternalLinks())

	s.SetAllowedExternalLinks(true)
	assert.True(t, s.IsAllowedExternalLinks())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	assert.True(t, reopened.IsAllowedExternalLinks())
}

func TestSettings_Restore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := Open(path, nil)
	require.NoError(t, err)

	s.SetLocale("sv_SE")
	s.SetLocale("tr_TR")
	require.Equal(t, "tr_TR", s.Locale())

	sub := s.Subscribe()
	require.NoError(t, s.Restore())
	assert.Equal(t, "sv_SE", s.Locale())

	select {
	case ev := <-sub:
		assert.Equal(t, EventRestored, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("expected restore event")
	}
}

func TestSubscribeUnsubscribe(t *testing.T) {
	s := New(Defaults(), "", nil)
	sub := s.Subscribe()
	assert.NotNil(t, sub)

	s.mu.RLock()
	assert.Equal(t, 1, len(s.subscribers))
	s.mu.RUnlock()

	s.Unsubscribe(sub)

	s.mu.RLock()
	assert.Equal(t, 0, len(s.subscribers))
	s.mu.RUnlock()

	_, ok := <-sub
	assert.False(t, ok, "channel should be closed")
}

func TestNotify_OnlyOnChange(t *testing.T) {
	s := New(Defaults(), "", nil)
	sub := s.Subscribe()

	s.SetAllowedExternalLinks(false) // unchanged
	s.SetAllowedExternalLinks(true)
	s.SetLocale("ru_RU")
	s.SetLocale("ru_RU") // unchanged

	events := drain(sub)
	require.Len(t, events, 2)
	assert.Equal(t, EventLinksConsentChanged, events[0].Type)
	assert.Equal(t, true, events[0].Data)
	assert.Equal(t, EventLocaleChanged, events[1].Type)
	assert.Equal(t, "ru_RU", events[1].Data)
}

func drain(sub Subscriber) []Event {
	var events []Event
	for {
		select {
		case ev := <-sub:
			events = append(events, ev)
		default:
			return events
		}
	}
}
