package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"quizhost/internal/services"
	"quizhost/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Templates holds all parsed HTML templates
type Templates struct {
	Admin *template.Template
	Join  *template.Template
	Play  *template.Template
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Session      services.SessionServicer
	Bank         services.BankServicer
	Hub          *websocket.Hub
	Log          HTTPLogger
	BaseURL      string
	templates    *Templates
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies
func New(
	session services.SessionServicer,
	bank services.BankServicer,
	templatesFS fs.FS,
	staticServer http.Handler,
	hub *websocket.Hub,
	log HTTPLogger,
	baseURL string,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Session:      session,
		Bank:         bank,
		Hub:          hub,
		Log:          log,
		BaseURL:      baseURL,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance without templates, for testing
// the API endpoints
func NewForTesting(session services.SessionServicer, bank services.BankServicer) *Handlers {
	return &Handlers{
		Session: session,
		Bank:    bank,
		Log:     NoopHTTPLogger{},
		BaseURL: "http://127.0.0.1:8080",
		// templates left nil - API endpoints don't use them
	}
}

// loadTemplates parses all page templates from the embedded filesystem
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	parse := func(name string) (*template.Template, error) {
		return template.ParseFS(templatesFS, name)
	}

	admin, err := parse("admin.html")
	if err != nil {
		return nil, err
	}
	join, err := parse("join.html")
	if err != nil {
		return nil, err
	}
	play, err := parse("play.html")
	if err != nil {
		return nil, err
	}

	return &Templates{Admin: admin, Join: join, Play: play}, nil
}
