package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"relief-ads/internal/core/port"
	"relief-ads/internal/placement"
)

// adsenseFallback tells the client which AdSense unit to render when no
// hosted ad is returned.
type adsenseFallback struct {
	SlotID string `json:"slotId"`
	Format string `json:"format"`
}

// serveSingleResponse is the count==1 shape: `ad` is null when there is no
// hosted inventory and the caller renders the fallback.
type serveSingleResponse struct {
	Ad       *port.AdForPlacement `json:"ad"`
	Fallback adsenseFallback      `json:"fallback"`
}

// serveMultiResponse is the count>1 shape.
type serveMultiResponse struct {
	Ads      []port.AdForPlacement `json:"ads"`
	Fallback adsenseFallback       `json:"fallback"`
}

// handleAdServe resolves ads for a named placement. Query parameters:
// `placement` (required), `path` (optional), `count` (optional, default 1,
// clamped to [1,6]). An unknown placement is the caller's misconfiguration
// and returns 400. Anything that breaks downstream degrades to a null ad:
// an ad fetch failing must never take the page down with it, the client
// just falls back to AdSense.
func (h *Handler) handleAdServe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("placement")
	if name == "" {
		http.Error(w, "missing placement", http.StatusBadRequest)
		return
	}
	spec, ok := placement.Lookup(name)
	if !ok {
		http.Error(w, "unknown placement", http.StatusBadRequest)
		return
	}

	count := 1
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid count", http.StatusBadRequest)
			return
		}
		count = n
	}
	multi := count > 1

	req := port.ServeRequest{Placement: name, Path: q.Get("path"), Count: count}
	resp, err := h.svc.ServeAds(r.Context(), req)
	if err != nil {
		if errors.Is(err, port.ErrUnknownPlacement) {
			http.Error(w, "unknown placement", http.StatusBadRequest)
			return
		}
		// fail open: log and serve the fallback descriptor
		h.logger.Error("serve ads failed", slog.String("placement", name), slog.Any("error", err))
		resp = &port.ServeResponse{}
	}

	fallback := adsenseFallback{SlotID: spec.AdsenseSlotID, Format: spec.AdsenseFormat}
	w.Header().Set("Content-Type", "application/json")
	var body interface{}
	if multi {
		ads := resp.Ads
		if ads == nil {
			ads = []port.AdForPlacement{}
		}
		body = serveMultiResponse{Ads: ads, Fallback: fallback}
	} else {
		single := serveSingleResponse{Fallback: fallback}
		if len(resp.Ads) > 0 {
			single.Ad = &resp.Ads[0]
		}
		body = single
	}
	if err = json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
