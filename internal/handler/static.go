package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"
)

// indexDocument is the file served at the root path.
const indexDocument = "contacts.html"

// StaticHandler serves the index document from the frontend directory.
//
// The rest of the frontend directory is mounted separately with
// http.FileServer (see server.setupRoutes) — this handler only covers "/",
// which maps to a fixed file rather than a directory listing.
type StaticHandler struct {
	frontendDir string
	logger      *slog.Logger
}

// NewStaticHandler creates a StaticHandler rooted at frontendDir.
func NewStaticHandler(frontendDir string, logger *slog.Logger) *StaticHandler {
	return &StaticHandler{
		frontendDir: frontendDir,
		logger:      logger,
	}
}

// HandleIndex serves the contacts page.
//
// HTTP: GET /
//
// Pure byte passthrough: http.ServeFile reads the file, sets Content-Type
// from the extension, and answers 404 itself if the file is missing.
func (h *StaticHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.frontendDir, indexDocument))
}
