package handlers

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed web
var webFS embed.FS

// StaticHandler serves the embedded display-surface pages.
type StaticHandler struct {
	fileServer http.Handler
}

// NewStaticHandler creates a new static handler.
func NewStaticHandler() *StaticHandler {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// The embed directive guarantees "web" exists.
		panic(err)
	}
	return &StaticHandler{fileServer: http.FileServer(http.FS(sub))}
}

// ServeAudience serves the audience surface.
// GET /audience
func (h *StaticHandler) ServeAudience(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "web/audience.html")
}

// ServePresenter serves the presenter-notes surface.
// GET /presenter
func (h *StaticHandler) ServePresenter(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "web/presenter.html")
}

// ServeIndex redirects to the presenter surface.
// GET /
func (h *StaticHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/presenter", http.StatusFound)
}

// ServeAssets serves shared JS/CSS under /static/.
func (h *StaticHandler) ServeAssets() http.Handler {
	return http.StripPrefix("/static/", h.fileServer)
}

func (h *StaticHandler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	data, err := webFS.ReadFile(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
