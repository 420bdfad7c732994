package subgrade

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) CalcBySettlement(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Settlement         float64 `json:"settlement"`
		FoundationPressure float64 `json:"foundation_pressure"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateBySettlement(input.Settlement, input.FoundationPressure)
	writeResult(w, res, err)
}

func (h *Handler) CalcByBearingCapacity(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AllowableBearingCapacity float64 `json:"allowable_bearing_capacity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateByBearingCapacity(input.AllowableBearingCapacity)
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
