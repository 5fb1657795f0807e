package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/controllers"
	"github.com/amaumene/movienarr/internal/models"
)

// WatchlistHandler exposes the entry lifecycle operations
type WatchlistHandler struct {
	watchlistCtrl *controllers.WatchlistController
	logger        *logrus.Logger
}

// NewWatchlistHandler creates a new watchlist handler
func NewWatchlistHandler(watchlistCtrl *controllers.WatchlistController, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistCtrl: watchlistCtrl,
		logger:        logger,
	}
}

type addRequest struct {
	SimklID   int64  `json:"simkl_id"`
	OwnerName string `json:"owner_name"`
	OwnerID   int64  `json:"owner_id"`
}

type watchedRequest struct {
	SimklID int64 `json:"simkl_id"`
}

type removeRequest struct {
	SimklID int64 `json:"simkl_id"`
	OwnerID int64 `json:"owner_id"`
}

// Add puts a new entry on the list and returns its preview display
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.watchlistCtrl.Add(r.Context(), kind, req.SimklID, req.OwnerName, req.OwnerID)
	switch {
	case errors.Is(err, models.ErrConflict):
		writeError(w, http.StatusConflict, "already on the list")
		return
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s cannot be found", kind.Label()))
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to add entry")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, controllers.AddedPreview(m))
}

// Watched moves an entry into the watched partition
func (h *WatchlistHandler) Watched(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	var req watchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.watchlistCtrl.SetWatched(kind, req.SimklID); err != nil {
		h.logger.WithError(err).Error("Failed to set entry watched")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Remove deletes an entry the caller owns
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.watchlistCtrl.Remove(kind, req.SimklID, req.OwnerID); err != nil {
		h.logger.WithError(err).Error("Failed to remove entry")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Random serves the ephemeral preview of a random released, unwatched entry
func (h *WatchlistHandler) Random(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	m, ownerID, addedAt, err := h.watchlistCtrl.RandomPick(r.Context(), kind)
	switch {
	case errors.Is(err, models.ErrNoEligibleEntries):
		writeError(w, http.StatusNotFound, "no eligible entries")
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to pick random entry")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, controllers.RandomPreview(m, ownerID, addedAt))
}

// Info serves the detailed preview of an entry on the to-watch list
func (h *WatchlistHandler) Info(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	simklID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, ownerID, addedAt, err := h.watchlistCtrl.Info(r.Context(), kind, simklID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "not on the to-watch list")
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to get entry info")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, controllers.InfoPreview(m, ownerID, addedAt))
}
