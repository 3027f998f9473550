package browser

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Command returns the platform opener for url on goos.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	}
	return "xdg-open", []string{url}
}

// Open hands url to the desktop's default handler. Blank urls are ignored.
func Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	name, args := Command(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "opening %s: %s", url, strings.TrimSpace(out.String()))
	}
	return nil
}
