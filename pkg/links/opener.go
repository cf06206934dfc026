package links

import (
	"log/slog"
	"os/exec"
	"runtime"
)

// BrowserOpener returns an OpenFunc that launches the default browser.
// Launch failures are logged.
func BrowserOpener(logger *slog.Logger) OpenFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(url string) {
		if err := openBrowser(url); err != nil {
			logger.Error("failed to open browser", "url", url, "err", err)
		}
	}
}

// openBrowser opens the specified URL in the default browser.
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	args = append(args, url)
	return exec.Command(cmd, args...).Start()
}
