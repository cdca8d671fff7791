package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhost/internal/logger"
	"quizhost/pkg/quizclient"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "quizhost server URL")
	answerTimeout := flag.Duration("answer-timeout", 30*time.Second, "Max time to wait for answers per question")
	pollInterval := flag.Duration("poll-interval", time.Second, "How often to poll the server")
	readingPause := flag.Duration("reading-pause", 3*time.Second, "Pause between show beats")
	minPlayers := flag.Int("min-players", 1, "Players required before the quiz starts")
	commentaryURL := flag.String("commentary-url", "", "Optional commentary service URL")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ShowHost - Automated Quiz Presenter

Drives a running quizhost server through a full quiz: waits for players,
opens each question, collects answers, reveals results and walks the
leaderboard to the finale.

Usage:
  showhost [options]

Options:
  -server str          quizhost server URL (default "http://localhost:8080")
  -answer-timeout dur  Max wait for answers per question (default 30s)
  -poll-interval dur   Server polling interval (default 1s)
  -reading-pause dur   Pause between show beats (default 3s)
  -min-players int     Players required before starting (default 1)
  -commentary-url str  Optional commentary service URL
  -loglevel str        Log level: debug, info, warn, error (default "info")

Examples:
  showhost                                   # Drive localhost:8080
  showhost -server http://192.168.1.20:8080  # Remote quizhost
  showhost -answer-timeout 15s -min-players 3

`)
	}

	flag.Parse()

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	var voice Commentator
	if *commentaryURL != "" {
		voice = NewHTTPCommentator(*commentaryURL, appLog)
	} else {
		voice = NewCannedCommentator()
	}

	s := &show{
		client:        quizclient.NewHTTPClient(*server, appLog),
		voice:         voice,
		log:           appLog,
		out:           os.Stdout,
		pollInterval:  *pollInterval,
		answerTimeout: *answerTimeout,
		readingPause:  *readingPause,
		minPlayers:    *minPlayers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.run(ctx); err != nil {
		log.Fatal(err)
	}
}
