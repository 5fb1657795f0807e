package handlers

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/controllers"
)

// SearchHandler serves the autocomplete lookups of the command surface
type SearchHandler struct {
	watchlistCtrl *controllers.WatchlistController
	logger        *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(watchlistCtrl *controllers.WatchlistController, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		watchlistCtrl: watchlistCtrl,
		logger:        logger,
	}
}

// Provider proxies a title search to the metadata provider
func (h *SearchHandler) Provider(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	choices, err := h.watchlistCtrl.SearchProvider(r.Context(), kind, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WithError(err).Error("Provider search failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, choices)
}

// ToWatch matches unwatched entries by title substring
func (h *SearchHandler) ToWatch(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	choices, err := h.watchlistCtrl.SearchToWatch(kind, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WithError(err).Error("To-watch search failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, choices)
}

// Owned matches the caller's own entries by title substring
func (h *SearchHandler) Owned(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner_id")
		return
	}

	choices, err := h.watchlistCtrl.SearchOwned(kind, r.URL.Query().Get("q"), ownerID)
	if err != nil {
		h.logger.WithError(err).Error("Owned search failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, choices)
}
