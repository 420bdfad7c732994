package soilclass

import (
	"encoding/json"
	"net/http"

	"Soilworks/internal/model"
)

type Handler struct{}

func (h *Handler) CalcByCu(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SoilProfile model.SoilProfile `json:"soil_profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateByCu(input.SoilProfile)
	writeResult(w, res, err)
}

func (h *Handler) CalcBySPT(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SPT model.SPT `json:"spt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateBySPT(input.SPT)
	writeResult(w, res, err)
}

func (h *Handler) CalcByVs(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MASW model.MASW `json:"masw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateByVs(input.MASW)
	writeResult(w, res, err)
}

func writeResult(w http.ResponseWriter, res Result, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
