// Package templates serves the project preset catalog and applies presets.
package templates

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"proforma/pkg/core/store"
	"proforma/pkg/core/template"
)

// Handler holds dependencies for template endpoints
type Handler struct {
	Store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s}
}

// HandleList serves GET /api/templates.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	json.NewEncoder(w).Encode(template.Templates)
}

type applyRequest struct {
	TemplateID string `json:"template_id"`
	UserID     int    `json:"user_id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
}

// HandleApply serves POST /api/templates/apply.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tpl := template.ByID(req.TemplateID)
	if tpl == nil {
		http.Error(w, fmt.Sprintf("template not found: %s", req.TemplateID), http.StatusNotFound)
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	project, err := template.Apply(r.Context(), h.Store, req.UserID, tpl, req.Name, start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[TEMPLATE] Applied %s for user %d -> project %d\n", tpl.ID, req.UserID, project.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}
