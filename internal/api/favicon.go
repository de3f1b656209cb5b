package api

import (
	"fmt"
	"html"
	"net/http"
)

// FaviconSVG draws a palette-style favicon using the given accent color.
func FaviconSVG(accent string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">`+
			`<rect width="32" height="32" rx="6" fill="#f5f1e6"/>`+
			`<circle cx="11" cy="12" r="5" fill="%s"/>`+
			`<circle cx="21" cy="12" r="5" fill="#1f4e8c"/>`+
			`<circle cx="16" cy="21" r="5" fill="#e3b23c"/>`+
			`</svg>`,
		html.EscapeString(accent),
	)
}

// GetFavicon serves the favicon tinted with the default color.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(FaviconSVG(h.defaultColor)))
}
