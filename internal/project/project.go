package project

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"Soilworks/internal/auth"
	"Soilworks/internal/model"
	"Soilworks/internal/repo"
)

// Handler exposes CRUD over a user's saved soil profiles.
type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name        string            `json:"name"`
	SoilProfile model.SoilProfile `json:"soil_profile"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Project name required", http.StatusBadRequest)
		return
	}

	// A profile has to be structurally sound before it is worth storing.
	if err := req.SoilProfile.CalcLayerDepths(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.SoilProfile.Validate("thickness"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := json.Marshal(req.SoilProfile)
	if err != nil {
		http.Error(w, "Invalid soil profile", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.CreateProject(r.Context(), userID, req.Name, payload)
	if err != nil {
		log.Printf("CreateProject error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		log.Printf("ListProjects error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projectID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.GetProject(r.Context(), userID, projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("GetProject error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projectID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteProject(r.Context(), userID, projectID); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteProject error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
