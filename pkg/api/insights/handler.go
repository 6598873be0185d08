// Package insights exposes the LLM-backed analysis endpoints.
package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"proforma/pkg/core/insight"
	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

// Handler holds dependencies for insight endpoints
type Handler struct {
	Store  store.Store
	Engine *insight.Engine
	// Reports is optional; when nil, generated reports are not persisted.
	Reports *store.ReportRepo
}

func NewHandler(s store.Store, e *insight.Engine, reports *store.ReportRepo) *Handler {
	return &Handler{Store: s, Engine: e, Reports: reports}
}

type request struct {
	ProjectID int `json:"project_id"`
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*models.Project, models.AssumptionSet, bool) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, models.AssumptionSet{}, false
	}

	project, err := h.Store.GetProject(r.Context(), req.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return nil, models.AssumptionSet{}, false
	}

	set, err := store.LoadAssumptions(r.Context(), h.Store, project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, models.AssumptionSet{}, false
	}
	return project, set, true
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// HandleAnalyze serves POST /api/insights/analyze.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, ok := h.load(w, r)
	if !ok {
		return
	}

	fmt.Printf("[INSIGHT] Analyzing project %d (%s)\n", project.ID, project.Name)
	result, err := h.Engine.AnalyzeProjectFinancials(r.Context(), project, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// HandleCostOptimization serves POST /api/insights/cost-optimization.
func (h *Handler) HandleCostOptimization(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, ok := h.load(w, r)
	if !ok {
		return
	}

	recs, err := h.Engine.CostOptimization(r.Context(), project, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if recs == nil {
		recs = []insight.Insight{}
	}
	json.NewEncoder(w).Encode(recs)
}

// HandleForecast serves POST /api/insights/forecast.
func (h *Handler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, ok := h.load(w, r)
	if !ok {
		return
	}

	forecast, err := h.Engine.RevenueForecast(r.Context(), project, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(forecast)
}

// HandleReport serves POST /api/insights/report. The analysis runs first,
// then feeds the report writer.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, ok := h.load(w, r)
	if !ok {
		return
	}

	analysis, err := h.Engine.AnalyzeProjectFinancials(r.Context(), project, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	report, err := h.Engine.ExecutiveReport(r.Context(), project, set, analysis)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if h.Reports != nil {
		payload, _ := json.Marshal(report)
		if err := h.Reports.Save(r.Context(), report.ID, project.ID, "executive", payload); err != nil {
			fmt.Printf("[WARNING] Failed to persist report %s: %v\n", report.ID, err)
		}
	}

	json.NewEncoder(w).Encode(report)
}
