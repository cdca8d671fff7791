package handlers

import (
	"html/template"
	"net/http"
)

type pageData struct {
	QuizTitle string
	BaseURL   string
}

func (h *Handlers) renderPage(w http.ResponseWriter, pick func(*Templates) *template.Template) {
	if h.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	data := pageData{QuizTitle: h.Bank.Title(), BaseURL: h.BaseURL}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pick(h.templates).Execute(w, data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// handleAdminPage renders the host control dashboard.
func (h *Handlers) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, func(t *Templates) *template.Template { return t.Admin })
}

// handleJoinPage renders the player signup page.
func (h *Handlers) handleJoinPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, func(t *Templates) *template.Template { return t.Join })
}

// handlePlayPage renders the player game screen.
func (h *Handlers) handlePlayPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, func(t *Templates) *template.Template { return t.Play })
}
