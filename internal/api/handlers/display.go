package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/controllers"
)

// DisplayHandler serves the two rendered list displays
type DisplayHandler struct {
	watchlistCtrl *controllers.WatchlistController
	logger        *logrus.Logger
}

// NewDisplayHandler creates a new display handler
func NewDisplayHandler(watchlistCtrl *controllers.WatchlistController, logger *logrus.Logger) *DisplayHandler {
	return &DisplayHandler{
		watchlistCtrl: watchlistCtrl,
		logger:        logger,
	}
}

// ToWatch serves the rendered to-watch display
func (h *DisplayHandler) ToWatch(w http.ResponseWriter, r *http.Request) {
	display, err := h.watchlistCtrl.ToWatchDisplay()
	if err != nil {
		h.logger.WithError(err).Error("Failed to render to-watch display")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, display)
}

// Watched serves the rendered watched display
func (h *DisplayHandler) Watched(w http.ResponseWriter, r *http.Request) {
	display, err := h.watchlistCtrl.WatchedDisplay()
	if err != nil {
		h.logger.WithError(err).Error("Failed to render watched display")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, display)
}
