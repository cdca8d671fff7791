//go:build darwin
// +build darwin

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"quizhost/internal/browser"
	"quizhost/internal/logger"
)

// listenForKeyboard listens for keyboard input and performs actions
func listenForKeyboard(hostURL string, appLog *logger.SlogLogger) {
	// Get the current terminal state
	fd := int(os.Stdin.Fd())
	oldState, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		// Can't get terminal state, silently return
		return
	}

	// Disable canonical mode (line buffering) and echo so single
	// characters can be read without Enter
	newState := *oldState
	newState.Lflag &^= unix.ICANON | unix.ECHO
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TIOCSETA, &newState); err != nil {
		return
	}

	// Restore old state when done
	defer unix.IoctlSetTermios(fd, unix.TIOCSETA, oldState)

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		input := strings.ToLower(string(buf[0]))
		switch input {
		case "a":
			fmt.Printf("%sOpening host page in browser...%s\n", cyan, reset)
			if err := browser.Open(hostURL); err != nil {
				fmt.Printf("%sError opening browser: %v%s\n", red, err, reset)
			}
		case "h":
			if appLog.IsHTTPLoggingEnabled() {
				appLog.DisableHTTPLogging()
				fmt.Printf("%sHTTP logging disabled%s\n", yellow, reset)
			} else {
				appLog.EnableHTTPLogging()
				fmt.Printf("%sHTTP logging enabled%s\n", green, reset)
			}
		case "l":
			cycleLogLevel(appLog)
		case "q", "\x03":
			fmt.Printf("%sShutting down server...%s\n", yellow, reset)
			unix.IoctlSetTermios(fd, unix.TIOCSETA, oldState)
			os.Exit(0)
		case "?":
			printKeyboardHelp()
		}
	}
}
