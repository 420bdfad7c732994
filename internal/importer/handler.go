package importer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Soilworks/internal/model"
)

type Handler struct{}

// Import accepts a multipart upload with the workbook under "file". The
// correction factors may be passed as form fields next to it.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	opts := Options{
		EnergyCorrectionFactor:   formFloat(r, "energy_correction_factor"),
		DiameterCorrectionFactor: formFloat(r, "diameter_correction_factor"),
		SamplerCorrectionFactor:  formFloat(r, "sampler_correction_factor"),
		IdealizationMethod:       model.SelectionMethod(r.FormValue("idealization_method")),
	}

	res, err := ReadXLSX(file, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func formFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(r.FormValue(key), 64)
	if err != nil {
		return 0
	}
	return v
}
