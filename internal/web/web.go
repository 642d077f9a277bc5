// Package web serves the browser UI: a single page that lists decks and
// scores, creates decks and runs practice sessions against the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Assets returns the embedded UI files rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The directory is embedded at compile time.
		panic(err)
	}
	return sub
}

// Handler serves the UI. Requests for "/" return index.html.
func Handler() http.Handler {
	files := http.FileServerFS(Assets())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		files.ServeHTTP(w, r)
	})
}
