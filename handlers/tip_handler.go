package handlers

import (
	"net/http"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/services"
)

type TipHandler struct {
	tipService services.TipService
}

func NewTipHandler(ts services.TipService) *TipHandler {
	return &TipHandler{tipService: ts}
}

func (h *TipHandler) GetTips(w http.ResponseWriter, r *http.Request) {
	tipperID, err := getIDFromURL(r, "tipperID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tips, err := h.tipService.TipsForRound(r.Context(), tipperID, roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tips": tips}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TipHandler) TipsExist(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	exist, err := h.tipService.TipsExistForRound(r.Context(), roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"exists": exist}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TipHandler) SaveTips(w http.ResponseWriter, r *http.Request) {
	tipperID, err := getIDFromURL(r, "tipperID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var tips []models.Tip
	if err := readJSON(w, r, &tips); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	// The path says whose tips these are; the body cannot claim otherwise.
	for i := range tips {
		tips[i].TipperID = tipperID
	}

	if err := h.tipService.SaveTips(r.Context(), roundID, tips); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
