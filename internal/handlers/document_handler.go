package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pdf-presenter/internal/document"
)

// DocumentHandler serves document metadata, the fit-scaling API, and
// the PDF file itself (the surfaces render pages from it client-side).
type DocumentHandler struct {
	source     document.Source
	fileName   string
	filePath   string
	slideCount int
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(source document.Source, fileName, filePath string, slideCount int) *DocumentHandler {
	return &DocumentHandler{
		source:     source,
		fileName:   fileName,
		filePath:   filePath,
		slideCount: slideCount,
	}
}

// DocumentInfoResponse describes the loaded document.
type DocumentInfoResponse struct {
	FileName   string `json:"fileName"`
	PageCount  int    `json:"pageCount"`
	SlideCount int    `json:"slideCount"`
}

// GetInfo returns document metadata.
// GET /api/document
func (h *DocumentHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	response := DocumentInfoResponse{
		FileName:   h.fileName,
		PageCount:  h.source.PageCount(),
		SlideCount: h.slideCount,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// FitResponse is the render size for a page on a surface. OK is false
// when the page does not exist; surfaces show their placeholder then.
type FitResponse struct {
	OK     bool    `json:"ok"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// GetFit computes the render dimensions for a page fitted into a
// target surface. A missing page is not an error: the response just
// carries ok=false.
// GET /api/document/fit?page=0&width=800&height=600
func (h *DocumentHandler) GetFit(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		http.Error(w, "page query parameter is required", http.StatusBadRequest)
		return
	}
	targetW, err := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	if err != nil {
		http.Error(w, "width query parameter is required", http.StatusBadRequest)
		return
	}
	targetH, err := strconv.ParseFloat(r.URL.Query().Get("height"), 64)
	if err != nil {
		http.Error(w, "height query parameter is required", http.StatusBadRequest)
		return
	}

	response := FitResponse{}
	if pageW, pageH, ok := h.source.PageSize(page); ok {
		fitW, fitH := document.FitScale(pageW, pageH, targetW, targetH)
		response = FitResponse{OK: fitW > 0 && fitH > 0, Width: fitW, Height: fitH}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ServeFile serves the source PDF for client-side rendering.
// GET /document.pdf
func (h *DocumentHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, h.filePath)
}
