package consolidation

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) CalcByCompressionIndex(w http.ResponseWriter, r *http.Request) {
	h.calc(w, r, CalculateByCompressionIndex)
}

func (h *Handler) CalcByMv(w http.ResponseWriter, r *http.Request) {
	h.calc(w, r, CalculateByMv)
}

func (h *Handler) calc(w http.ResponseWriter, r *http.Request, calculate func(Input) (Result, error)) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
