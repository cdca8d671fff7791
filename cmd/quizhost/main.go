package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quizhost/internal/app"
	"quizhost/internal/browser"
	"quizhost/internal/logger"
	"quizhost/web"
)

var version = "dev"

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

// showBanner prints the QuizHost logo
func showBanner() {
	logo := []string{
		`   ___        _      _   _           _   `,
		`  / _ \ _   _(_)____| | | | ___  ___| |_ `,
		` | | | | | | | |_  /| |_| |/ _ \/ __| __|`,
		` | |_| | |_| | |/ / |  _  | (_) \__ \ |_ `,
		`  \__\_\\__,_|_/___||_| |_|\___/|___/\__|`,
	}

	fmt.Println()
	for _, line := range logo {
		fmt.Printf("  %s%s%s\n", yellow, line, reset)
	}
	fmt.Println()
}

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	var next string
	switch appLog.GetLevel().String() {
	case "DEBUG":
		next = "info"
	case "INFO":
		next = "warn"
	case "WARN":
		next = "error"
	default:
		next = "debug"
	}

	appLog.SetLevel(logger.ParseLevel(next))
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %sa%s      - Open host page in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug, info, warn, error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "quiz.db", "SQLite database path for question sets")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	noBrowser := flag.Bool("nobrowser", false, "Do not open the host page on startup")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `QuizHost - Live Party Quiz Server

Usage:
  quizhost [options]

Options:
  -port int      HTTP server port (default 8080)
  -db string     SQLite database path for question sets (default "quiz.db")
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -nokeyboard    Disable keyboard shortcuts
  -nobrowser     Do not open the host page on startup
  -version       Show version and exit
  -help          Show this help message

Keyboard Shortcuts (when enabled):
  a              Open host page in browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug -> info -> warn -> error)
  q              Quit server
  ?              Show keyboard help

Examples:
  quizhost                        # Run on port 8080 with quiz.db
  quizhost -port 9000             # Run on port 9000
  quizhost -db /data/pub-quiz.db  # Use custom question database
  quizhost -nokeyboard -nobrowser # Headless operation

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("quizhost %s\n", version)
		os.Exit(0)
	}

	showBanner()

	// Create logger with specified level
	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	hostURL := fmt.Sprintf("http://localhost:%d/admin", *port)

	if !*noBrowser {
		if err := browser.Open(hostURL); err != nil {
			appLog.Warn("Failed to open browser", "error", err)
		}
	}

	if !*noKeyboard {
		printKeyboardHelp()
		go listenForKeyboard(hostURL, appLog)
	}

	if err := <-serverErr; err != nil {
		log.Fatal(err)
	}
}
