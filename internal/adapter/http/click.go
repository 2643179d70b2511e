package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"relief-ads/internal/core/port"
)

// transparentGIF is a 1x1 transparent pixel served to conversion beacons.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// handleAdClick handles click redirects and records click events. It
// expects a {token} path parameter bound by the router. On success it
// redirects the browser to the creative's destination URL. Missing tokens
// produce HTTP 400, unknown tokens HTTP 404. Internal errors are logged
// and treated as 404 to avoid leaking information.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}
	destinationURL, err := h.svc.RegisterClick(r.Context(), token)
	if err != nil {
		if !errors.Is(err, port.ErrTokenNotFound) {
			h.logger.Error("click error", slog.String("token", token), slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, destinationURL, http.StatusFound)
}

// handleAdConversion records a conversion for a click token and answers
// with a 1x1 GIF no matter what, so a broken or replayed pixel never
// breaks the embedding page. Attribution failures are only logged.
func (h *Handler) handleAdConversion(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token != "" {
		if err := h.svc.RegisterConversion(r.Context(), token); err != nil && !errors.Is(err, port.ErrTokenNotFound) {
			h.logger.Error("conversion error", slog.String("token", token), slog.Any("error", err))
		}
	}
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(transparentGIF)
}
