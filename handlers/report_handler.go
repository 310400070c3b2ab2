package handlers

import (
	"log/slog"
	"net/http"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/services"
)

type ReportHandler struct {
	reportService services.ReportService
	logger        *slog.Logger
}

func NewReportHandler(rs services.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reportService: rs, logger: logger}
}

// Leaderboard always answers 200 with a list. A scoring failure is logged
// and rendered as an empty leaderboard so the standings page keeps working.
func (h *ReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reportService.Leaderboard(r.Context())
	if err != nil {
		h.logger.Error("leaderboard query failed", "error", err)
		entries = []models.LeaderboardEntry{}
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ReportHandler) RoundLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.reportService.RoundLeaderboard(r.Context(), roundID)
	if err != nil {
		h.logger.Error("round leaderboard query failed", "round_id", roundID, "error", err)
		entries = []models.LeaderboardEntry{}
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
