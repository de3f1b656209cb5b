//go:build dev

package api

import (
	"net/http"
	"os"
)

// StaticHandler serves the page straight from disk so edits show up on
// reload. Run from the repository root.
func (h *Handler) StaticHandler() http.Handler {
	return http.FileServer(http.FS(os.DirFS("internal/api/dist")))
}
