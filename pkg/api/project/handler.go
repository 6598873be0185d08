package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

// Handler holds dependencies for project endpoints
type Handler struct {
	Store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s}
}

// HandleProjects serves GET (list) and POST (create) on /api/projects.
func (h *Handler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodGet:
		userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
		if err != nil {
			http.Error(w, "user_id query parameter required", http.StatusBadRequest)
			return
		}
		projects, err := h.Store.ListProjects(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if projects == nil {
			projects = []models.Project{}
		}
		json.NewEncoder(w).Encode(projects)

	case http.MethodPost:
		var p models.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if p.Name == "" || p.StartDate.IsZero() || p.EndDate.IsZero() {
			http.Error(w, "name, start_date and end_date are required", http.StatusBadRequest)
			return
		}
		if p.EndDate.Before(p.StartDate) {
			http.Error(w, "end_date must not precede start_date", http.StatusBadRequest)
			return
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		if err := h.Store.CreateProject(r.Context(), &p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Printf("[PROJECT] Created project %d (%s)\n", p.ID, p.Name)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleProject serves GET, PUT and DELETE on /api/projects/detail?id=N.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "id query parameter required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := h.Store.GetProject(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		json.NewEncoder(w).Encode(p)

	case http.MethodPut:
		var p models.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		p.ID = id
		if err := h.Store.UpdateProject(r.Context(), &p); err != nil {
			writeStoreError(w, err)
			return
		}
		json.NewEncoder(w).Encode(p)

	case http.MethodDelete:
		if err := h.Store.DeleteProject(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
		fmt.Printf("[PROJECT] Deleted project %d\n", id)
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
