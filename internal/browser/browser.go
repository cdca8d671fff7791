package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Runner abstracts command execution so tests can intercept it
type Runner interface {
	Start(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// openCommand returns the platform launcher for a URL
func openCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "linux":
		return "xdg-open", []string{url}, nil
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Open opens the URL in the default browser
func Open(url string) error {
	return open(url, execRunner{}, runtime.GOOS)
}

func open(url string, runner Runner, goos string) error {
	name, args, err := openCommand(goos, url)
	if err != nil {
		return err
	}
	return runner.Start(name, args...)
}
