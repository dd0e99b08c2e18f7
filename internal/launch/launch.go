package launch

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener abstracts the OS shell-open actions used to launch items. Both
// methods are fire-and-forget: the spawned process is never waited on and
// its exit status is not collected.
type Opener interface {
	// OpenPath invokes the OS open/execute action on a file path.
	OpenPath(path string) error
	// OpenURL opens a URL in the default browser.
	OpenURL(url string) error
}

// ShellOpener launches targets through the platform shell.
type ShellOpener struct {
	goos  string
	start func(*exec.Cmd) error
}

func NewShellOpener() *ShellOpener {
	return &ShellOpener{
		goos:  runtime.GOOS,
		start: (*exec.Cmd).Start,
	}
}

func (o *ShellOpener) OpenPath(path string) error {
	if err := o.start(openCommand(o.goos, path)); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

func (o *ShellOpener) OpenURL(url string) error {
	if err := o.start(openCommand(o.goos, url)); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// openCommand builds the per-platform shell-open invocation. The empty
// argument after "start" on Windows is the window title slot.
func openCommand(goos, target string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("cmd", "/C", "start", "", target)
	case "darwin":
		return exec.Command("open", target)
	default:
		return exec.Command("xdg-open", target)
	}
}
