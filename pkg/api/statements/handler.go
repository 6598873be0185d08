// Package statements serves the projection engine's output: monthly income
// statements, cash flow statements, and project KPIs.
package statements

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"proforma/pkg/core/projection"
	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

// Handler holds dependencies for statement endpoints
type Handler struct {
	Store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s}
}

// load resolves the project and its assumption set plus the effective tax
// rate from the request.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*models.Project, models.AssumptionSet, float64, bool) {
	projectID, err := strconv.Atoi(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id query parameter required", http.StatusBadRequest)
		return nil, models.AssumptionSet{}, 0, false
	}

	project, err := h.Store.GetProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return nil, models.AssumptionSet{}, 0, false
	}

	set, err := store.LoadAssumptions(r.Context(), h.Store, projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, models.AssumptionSet{}, 0, false
	}

	taxRate := projection.DefaultTaxRate
	if raw := r.URL.Query().Get("tax_rate"); raw != "" {
		taxRate, err = strconv.ParseFloat(raw, 64)
		if err != nil || taxRate < 0 || taxRate > 1 {
			http.Error(w, "tax_rate must be a fraction between 0 and 1", http.StatusBadRequest)
			return nil, models.AssumptionSet{}, 0, false
		}
	}

	return project, set, taxRate, true
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// HandleIncome serves GET /api/statements/income?project_id=N.
func (h *Handler) HandleIncome(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, taxRate, ok := h.load(w, r)
	if !ok {
		return
	}

	incomes, _ := projection.GenerateStatementSeries(project.StartDate, project.EndDate, set, taxRate)
	fmt.Printf("[STATEMENTS] Income series for project %d: %d months\n", project.ID, len(incomes))
	json.NewEncoder(w).Encode(incomes)
}

// HandleCashFlow serves GET /api/statements/cashflow?project_id=N.
func (h *Handler) HandleCashFlow(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, taxRate, ok := h.load(w, r)
	if !ok {
		return
	}

	_, cashFlows := projection.GenerateStatementSeries(project.StartDate, project.EndDate, set, taxRate)
	fmt.Printf("[STATEMENTS] Cash flow series for project %d: %d months\n", project.ID, len(cashFlows))
	json.NewEncoder(w).Encode(cashFlows)
}

// HandleKPIs serves GET /api/statements/kpis?project_id=N.
func (h *Handler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}
	project, set, taxRate, ok := h.load(w, r)
	if !ok {
		return
	}

	incomes, cashFlows := projection.GenerateStatementSeries(project.StartDate, project.EndDate, set, taxRate)
	kpis := projection.CalculateProjectKPIs(incomes, cashFlows, set.FundingSources)
	json.NewEncoder(w).Encode(kpis)
}
