package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/media"
	"github.com/amaumene/movienarr/internal/models"
)

// StatsHandler reports watch-list totals per kind
type StatsHandler struct {
	db     *models.Database
	logger *logrus.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(db *models.Database, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		db:     db,
		logger: logger,
	}
}

// KindStats holds the list totals of one kind
type KindStats struct {
	Total      int `json:"total"`
	ToWatch    int `json:"to_watch"`
	Watched    int `json:"watched"`
	Unreleased int `json:"unreleased"`
}

// StatsResponse represents the stats response
type StatsResponse struct {
	Movies KindStats `json:"movies"`
	Shows  KindStats `json:"shows"`
}

// ServeHTTP handles the stats endpoint
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var response StatsResponse

	for _, kind := range media.Kinds() {
		stats, err := h.kindStats(kind)
		if err != nil {
			h.logger.WithError(err).WithField("kind", kind).Error("Failed to compute stats")
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if kind == media.KindShow {
			response.Shows = stats
		} else {
			response.Movies = stats
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *StatsHandler) kindStats(kind media.Kind) (KindStats, error) {
	toWatch, err := h.db.ToWatchEntries(kind)
	if err != nil {
		return KindStats{}, err
	}
	watched, err := h.db.WatchedEntries(kind)
	if err != nil {
		return KindStats{}, err
	}
	unreleased, err := h.db.UnreleasedEntries(kind)
	if err != nil {
		return KindStats{}, err
	}

	return KindStats{
		Total:      len(toWatch) + len(watched),
		ToWatch:    len(toWatch),
		Watched:    len(watched),
		Unreleased: len(unreleased),
	}, nil
}
