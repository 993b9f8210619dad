package server

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pixelquest/rpgcard/pkg/card"
	"github.com/pixelquest/rpgcard/pkg/errors"
	"github.com/pixelquest/rpgcard/pkg/github"
)

//go:embed preview.html
var previewHTML string

var previewTmpl = template.Must(template.New("preview").Parse(previewHTML))

type fontChoice struct {
	Key      string
	Name     string
	Category string
}

type previewData struct {
	Username string
	Fonts    []fontChoice
}

// handlePreview serves the HTML tuning page. The username is validated with
// the same grammar as the card route and rejected with 400 before any
// rendering occurs; everything else is adjusted client-side by rewriting
// the image query string.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := github.ValidateUsername(username); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	data := previewData{Username: username}
	for _, key := range card.FontKeys() {
		f := card.FontByKey(key)
		data.Fonts = append(data.Fonts, fontChoice{Key: key, Name: f.Name, Category: f.Category})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTmpl.Execute(w, data); err != nil {
		s.logger.Warn("preview render failed", "error", err)
	}
}
