// Package links gates navigation to external URLs behind a one-time user
// consent stored in the wallet settings.
package links

import (
	"log/slog"
	"sync"
)

// DownloadsURL is where the wallet sends users looking for a new release.
const DownloadsURL = "https://www.hadescoin.com/downloads"

// Settings is the part of the wallet settings the gate reads and writes.
type Settings interface {
	IsAllowedExternalLinks() bool
	SetAllowedExternalLinks(allowed bool)
}

// Dialog presents a pending confirmation to the user. Present must not
// block; the UI calls Accept or Cancel on the confirmation later.
type Dialog interface {
	Present(c *Confirmation)
}

// DialogFunc adapts a function to Dialog.
type DialogFunc func(c *Confirmation)

func (f DialogFunc) Present(c *Confirmation) { f(c) }

// OpenFunc hands a URL to the operating system. It reports nothing back.
type OpenFunc func(url string)

// Outcome is the state of the gate for the next request.
type Outcome int

const (
	// Gated requests need the user to confirm first.
	Gated Outcome = iota
	// Direct requests open straight away.
	Direct
)

func (o Outcome) String() string {
	if o == Direct {
		return "direct"
	}
	return "gated"
}

// Decide reports how a request would be handled given the current consent.
func Decide(s Settings) Outcome {
	if s != nil && s.IsAllowedExternalLinks() {
		return Direct
	}
	return Gated
}

// Confirmation is a request waiting on the user. The first call to Accept
// or Cancel closes it; later calls do nothing.
type Confirmation struct {
	URL string

	settings Settings
	onFinish func()
	once     sync.Once
}

// Accept records the user's consent for all future links and finishes the
// request. It does not open URL; callers that want navigation on accept
// open it themselves.
func (c *Confirmation) Accept() {
	c.once.Do(func() {
		if c.settings != nil {
			c.settings.SetAllowedExternalLinks(true)
		}
		c.onFinish()
	})
}

// Cancel finishes the request without changing settings.
func (c *Confirmation) Cancel() {
	c.once.Do(c.onFinish)
}

// Gate routes external link requests either to Open or to a confirmation
// dialog.
type Gate struct {
	Open   OpenFunc
	Logger *slog.Logger
}

// NewGate returns a gate that opens URLs with open.
func NewGate(open OpenFunc, logger *slog.Logger) *Gate {
	return &Gate{Open: open, Logger: logger}
}

func (g *Gate) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Request opens url right away when the user has already consented to
// external links, then calls onFinish. Otherwise it presents a confirmation
// on d and returns; onFinish runs once the user answers. A nil onFinish is
// a no-op.
func (g *Gate) Request(url string, s Settings, d Dialog, onFinish func()) {
	finish := onFinish
	if finish == nil {
		finish = func() {}
	}

	if Decide(s) == Direct {
		g.logger().Debug("opening external link", "url", url)
		if g.Open != nil {
			g.Open(url)
		} else {
			g.logger().Warn("no URL opener configured", "url", url)
		}
		finish()
		return
	}

	c := &Confirmation{URL: url, settings: s, onFinish: finish}
	if d == nil {
		g.logger().Warn("no dialog to confirm external link", "url", url)
		finish()
		return
	}
	g.logger().Debug("external link needs confirmation", "url", url)
	d.Present(c)
}

// NavigateToDownloads requests the downloads page.
func (g *Gate) NavigateToDownloads(s Settings, d Dialog, onFinish func()) {
	g.Request(DownloadsURL, s, d, onFinish)
}
