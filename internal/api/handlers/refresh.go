package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/controllers"
)

// RefreshHandler triggers the unreleased-entry refresh on demand
type RefreshHandler struct {
	watchlistCtrl *controllers.WatchlistController
	logger        *logrus.Logger
}

// NewRefreshHandler creates a new refresh handler
func NewRefreshHandler(watchlistCtrl *controllers.WatchlistController, logger *logrus.Logger) *RefreshHandler {
	return &RefreshHandler{
		watchlistCtrl: watchlistCtrl,
		logger:        logger,
	}
}

// ServeHTTP handles the forced refresh endpoint. The refresh walks the
// backlog sequentially, so the request lasts as long as the backlog.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.watchlistCtrl.RefreshUnreleased(r.Context()); err != nil {
		h.logger.WithError(err).Error("Forced refresh failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "refreshed"})
}
