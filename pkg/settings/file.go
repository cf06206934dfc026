package settings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"hdsview/pkg/amount"
	"hdsview/pkg/locale"
)

const (
	FileName  = ".hdsview.toml"
	EnvPrefix = "HDSVIEW"
)

const (
	keyLocale             = "locale"
	keyExternalLinks      = "external_links_allowed"
	keyLockTimeout        = "lock_timeout"
	keyRequirePassword    = "require_password_to_spend_money"
	keySecondCurrency     = "second_currency"
	keyShowSwapBetaNotice = "show_swap_beta_warning"
)

// Values is the persisted form of the wallet UI settings.
type Values struct {
	Locale                 string `mapstructure:"locale" toml:"locale"`
	AllowExternalLinks     bool   `mapstructure:"external_links_allowed" toml:"external_links_allowed"`
	LockTimeoutMinutes     int    `mapstructure:"lock_timeout" toml:"lock_timeout"`
	RequirePasswordToSpend bool   `mapstructure:"require_password_to_spend_money" toml:"require_password_to_spend_money"`
	SecondCurrency         string `mapstructure:"second_currency" toml:"second_currency"`
	ShowSwapBetaWarning    bool   `mapstructure:"show_swap_beta_warning" toml:"show_swap_beta_warning"`
}

// Defaults are used for keys missing from the file.
func Defaults() Values {
	return Values{
		Locale:                 locale.DefaultName,
		AllowExternalLinks:     false,
		LockTimeoutMinutes:     0,
		RequirePasswordToSpend: false,
		SecondCurrency:         amount.USD.Label(),
		ShowSwapBetaWarning:    true,
	}
}

func GetPath(customPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// LoadFromFile reads settings from path. A missing file yields the defaults
// (with environment overrides applied).
func LoadFromFile(path string) (Values, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Load(strings.NewReader(""))
	}
	if err != nil {
		return Values{}, err
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load decodes TOML settings from r. HDSVIEW_<KEY> environment variables
// override file values.
func Load(r io.Reader) (Values, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(keyLocale, d.Locale)
	v.SetDefault(keyExternalLinks, d.AllowExternalLinks)
	v.SetDefault(keyLockTimeout, d.LockTimeoutMinutes)
	v.SetDefault(keyRequirePassword, d.RequirePasswordToSpend)
	v.SetDefault(keySecondCurrency, d.SecondCurrency)
	v.SetDefault(keyShowSwapBetaNotice, d.ShowSwapBetaWarning)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadConfig(r); err != nil {
		return Values{}, fmt.Errorf("read settings: %w", err)
	}

	var vals Values
	if err := v.Unmarshal(&vals); err != nil {
		return Values{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return vals, nil
}

// Save writes vals to path atomically. An existing file is first copied to
// <path>.<timestamp>.bak.
func Save(vals Values, path string) error {
	if strings.TrimSpace(vals.Locale) == "" {
		return fmt.Errorf("validation failed: locale is empty")
	}
	if vals.LockTimeoutMinutes < 0 {
		return fmt.Errorf("validation failed: lock timeout %d is negative", vals.LockTimeoutMinutes)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(vals); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data := buf.Bytes()

	if len(data) == 0 {
		return fmt.Errorf("validation failed: encoded settings are empty")
	}

	// Create a backup of the existing file
	if _, err := os.Stat(path); err == nil {
		backupPath := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102-150405"))
		input, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read existing settings for backup: %w", err)
		}
		if err := os.WriteFile(backupPath, input, 0600); err != nil {
			return fmt.Errorf("failed to write settings backup: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func RestoreLastBackup(path string) error {
	matches, err := filepath.Glob(path + ".*.bak")
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no backup files found")
	}
	sort.Strings(matches)
	lastBackup := matches[len(matches)-1]

	data, err := os.ReadFile(lastBackup)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
