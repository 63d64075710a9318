package search

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/masinc/search-cli/config"
	"github.com/masinc/search-cli/log"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
)

// Opener launches a URL in a browser
type Opener interface {
	// Open uses the OS default URL opener
	Open(rawURL string) error
	// OpenWith uses the named browser
	OpenWith(rawURL, browserName string) error
}

// SystemOpener opens URLs through the operating system.
type SystemOpener struct {
	// Stdout and Stderr receive the output of launched processes. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

var _ Opener = SystemOpener{}

// Open implements Opener.
func (o SystemOpener) Open(rawURL string) error {
	browser.Stdout = writerOrDiscard(o.Stdout)
	browser.Stderr = writerOrDiscard(o.Stderr)
	return browser.OpenURL(rawURL)
}

// OpenWith implements Opener.
func (o SystemOpener) OpenWith(rawURL, browserName string) error {
	cmd, wait := browserCommand(runtime.GOOS, browserName, rawURL)
	cmd.Stdout = o.Stdout
	cmd.Stderr = o.Stderr
	return runBrowser(cmd, wait)
}

// browserCommand builds the command opening rawURL in browserName.
// wait reports whether the command is a launcher that exits once the browser is started.
func browserCommand(goos, browserName, rawURL string) (cmd *exec.Cmd, wait bool) {
	switch goos {
	case "darwin":
		return exec.Command("open", "-a", browserName, rawURL), true
	case "windows":
		// The empty argument is the window title consumed by start.
		return exec.Command("cmd", "/c", "start", "", browserName, rawURL), true
	default:
		return exec.Command(browserName, rawURL), false
	}
}

// runBrowser runs a launcher to completion, or starts a browser and reaps it in the background.
func runBrowser(cmd *exec.Cmd, wait bool) error {
	if wait {
		if err := cmd.Run(); err != nil {
			return failure.Wrap(err, failure.Context{"command": cmd.String()})
		}
		return nil
	}

	if err := cmd.Start(); err != nil {
		return failure.Wrap(err, failure.Context{"command": cmd.String()})
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug("Browser exited", "command", cmd.String(), "error", err)
		}
	}()
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// SelectBrowser resolves the browser setting of p against cfg.
// The result is either config.BrowserSystem or config.BrowserPath.
func SelectBrowser(cfg config.Config, p config.Provider) config.Browser {
	switch p.Browser.Kind {
	case config.BrowserPath, config.BrowserSystem:
		return p.Browser
	default:
		if b, ok := cfg.DefaultBrowser(); ok {
			if d := config.ParseBrowser(b); !d.IsZero() {
				return d
			}
		}
		return config.SystemBrowser()
	}
}

// Launch opens rawURL with the browser chosen by SelectBrowser.
func Launch(o Opener, rawURL string, b config.Browser) error {
	var err error
	switch b.Kind {
	case config.BrowserPath:
		log.Debug("Opening URL", "url", rawURL, "browser", b.Path)
		err = o.OpenWith(rawURL, b.Path)
	default:
		log.Debug("Opening URL with default opener", "url", rawURL)
		err = o.Open(rawURL)
	}

	if err != nil {
		return failure.Translate(err, ErrLaunchFailed,
			failure.Message(fmt.Sprintf("Cannot open browser: %v", err)),
			failure.Context{
				"url":     rawURL,
				"browser": b.String(),
			},
		)
	}
	return nil
}
