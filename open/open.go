// Package open launches a book page in the system's default browser.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/conatus/literal-tools/log"
)

// Browser opens link with the default handler and returns without waiting for it.
// Only http and https links are accepted.
func Browser(link string) error {
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("refusing to open %q: not a web link", link)
	}

	cmd, ok := command(runtime.GOOS, link)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.Debugf("Opening %s with %s", link, cmd.Path)
	return cmd.Start()
}

func command(goos, link string) (*exec.Cmd, bool) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", link), true
	case "darwin":
		return exec.Command("open", link), true
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", link), true
	case "android":
		return exec.Command("termux-open", link), true
	default:
		return nil, false
	}
}
