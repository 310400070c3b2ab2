package handlers

import (
	"net/http"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/services"
)

type TipperHandler struct {
	tipperService services.TipperService
}

func NewTipperHandler(ts services.TipperService) *TipperHandler {
	return &TipperHandler{tipperService: ts}
}

func (h *TipperHandler) ListTippers(w http.ResponseWriter, r *http.Request) {
	tippers, err := h.tipperService.ListTippers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tippers": tippers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TipperHandler) CreateTipper(w http.ResponseWriter, r *http.Request) {
	var tipper models.Tipper
	if err := readJSON(w, r, &tipper); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tipperService.CreateTipper(r.Context(), &tipper); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tipper": tipper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TipperHandler) UpdateTipper(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tipperID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var tipper models.Tipper
	if err := readJSON(w, r, &tipper); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	tipper.ID = id

	if err := h.tipperService.UpdateTipper(r.Context(), &tipper); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tipper": tipper}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TipperHandler) DeleteTipper(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tipperID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tipperService.DeleteTipper(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
