// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/middleware"
)

// NoPollsMessage is shown on the index page when nothing qualifies
const NoPollsMessage = "No polls are available."

// NoChoiceMessage is shown when a vote names no valid choice
const NoChoiceMessage = "You didn't select a choice."

// IndexURL is the path of the index view (polls:index)
const IndexURL = "/polls/"

// DetailURL returns the path of a question's detail view (polls:detail)
func DetailURL(id int64) string {
	return IndexURL + strconv.FormatInt(id, 10) + "/"
}

// ResultsURL returns the path of a question's results view (polls:results)
func ResultsURL(id int64) string {
	return DetailURL(id) + "results/"
}

// VoteURL returns the path votes are posted to (polls:vote)
func VoteURL(id int64) string {
	return DetailURL(id) + "vote/"
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"ago":        humanize.Time,
	"comma":      humanize.Comma,
	"detailURL":  DetailURL,
	"resultsURL": ResultsURL,
	"voteURL":    VoteURL,
	"indexURL":   func() string { return IndexURL },
	"noPolls":    func() string { return NoPollsMessage },
}).ParseFS(templateFS, "templates/*.html"))

// render executes a template into a buffer first so a failed render
// never leaves a half-written 200 behind.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "template", name, "error", err)
	}
}

// jsonClient reports whether the caller speaks JSON, either by Accept or by
// sending a JSON body
func jsonClient(r *http.Request) bool {
	return middleware.WantsJSON(r) || middleware.IsJSONBody(r)
}

func notFound(w http.ResponseWriter, r *http.Request, message string) {
	if jsonClient(r) {
		middleware.ErrorResponse(w, http.StatusNotFound, message)
		return
	}
	render(w, http.StatusNotFound, "404.html", message)
}

func serverError(w http.ResponseWriter, r *http.Request) {
	if jsonClient(r) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// parseID reads a positive integer path value
func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
