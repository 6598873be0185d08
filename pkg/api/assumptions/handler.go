// Package assumptions exposes CRUD endpoints for the seven assumption
// collections. Every collection follows the same shape: GET lists by
// project_id, POST creates, PUT updates, DELETE removes by id.
package assumptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

// Handler holds dependencies for assumption endpoints
type Handler struct {
	Store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s}
}

// collection adapts one entity's store methods to the shared handler flow.
type collection struct {
	list   func(ctx context.Context, projectID int) (interface{}, error)
	create func(ctx context.Context, body []byte) (interface{}, error)
	update func(ctx context.Context, id int, body []byte) (interface{}, error)
	delete func(ctx context.Context, id int) error
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, c collection) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		projectID, err := strconv.Atoi(r.URL.Query().Get("project_id"))
		if err != nil {
			http.Error(w, "project_id query parameter required", http.StatusBadRequest)
			return
		}
		items, err := c.list(ctx, projectID)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(items)

	case http.MethodPost:
		body, err := readBody(r)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		created, err := c.create(ctx, body)
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)

	case http.MethodPut:
		id, err := strconv.Atoi(r.URL.Query().Get("id"))
		if err != nil {
			http.Error(w, "id query parameter required", http.StatusBadRequest)
			return
		}
		body, err := readBody(r)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		updated, err := c.update(ctx, id, body)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(updated)

	case http.MethodDelete:
		id, err := strconv.Atoi(r.URL.Query().Get("id"))
		if err != nil {
			http.Error(w, "id query parameter required", http.StatusBadRequest)
			return
		}
		if err := c.delete(ctx, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// HandleRevenue serves /api/revenue.
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListProducts(ctx, projectID)
			if items == nil {
				items = []models.RevenueProduct{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var p models.RevenueProduct
			if err := json.Unmarshal(body, &p); err != nil {
				return nil, err
			}
			if p.SeasonalityFactor == 0 {
				p.SeasonalityFactor = 100
			}
			return &p, h.Store.CreateProduct(ctx, &p)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var p models.RevenueProduct
			if err := json.Unmarshal(body, &p); err != nil {
				return nil, err
			}
			p.ID = id
			return &p, h.Store.UpdateProduct(ctx, &p)
		},
		delete: h.Store.DeleteProduct,
	})
}

// HandleCogs serves /api/cogs.
func (h *Handler) HandleCogs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListCogsItems(ctx, projectID)
			if items == nil {
				items = []models.CogsItem{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var c models.CogsItem
			if err := json.Unmarshal(body, &c); err != nil {
				return nil, err
			}
			return &c, h.Store.CreateCogsItem(ctx, &c)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var c models.CogsItem
			if err := json.Unmarshal(body, &c); err != nil {
				return nil, err
			}
			c.ID = id
			return &c, h.Store.UpdateCogsItem(ctx, &c)
		},
		delete: h.Store.DeleteCogsItem,
	})
}

// HandleSalaries serves /api/salaries.
func (h *Handler) HandleSalaries(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListSalaries(ctx, projectID)
			if items == nil {
				items = []models.Salary{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var s models.Salary
			if err := json.Unmarshal(body, &s); err != nil {
				return nil, err
			}
			return &s, h.Store.CreateSalary(ctx, &s)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var s models.Salary
			if err := json.Unmarshal(body, &s); err != nil {
				return nil, err
			}
			s.ID = id
			return &s, h.Store.UpdateSalary(ctx, &s)
		},
		delete: h.Store.DeleteSalary,
	})
}

// HandleOpex serves /api/opex.
func (h *Handler) HandleOpex(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListOpexItems(ctx, projectID)
			if items == nil {
				items = []models.OpexItem{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var o models.OpexItem
			if err := json.Unmarshal(body, &o); err != nil {
				return nil, err
			}
			return &o, h.Store.CreateOpexItem(ctx, &o)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var o models.OpexItem
			if err := json.Unmarshal(body, &o); err != nil {
				return nil, err
			}
			o.ID = id
			return &o, h.Store.UpdateOpexItem(ctx, &o)
		},
		delete: h.Store.DeleteOpexItem,
	})
}

// HandleFixedExpenses serves /api/fixed-expenses.
func (h *Handler) HandleFixedExpenses(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListFixedExpenses(ctx, projectID)
			if items == nil {
				items = []models.FixedExpense{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var f models.FixedExpense
			if err := json.Unmarshal(body, &f); err != nil {
				return nil, err
			}
			if f.Frequency == "" {
				f.Frequency = models.FreqOnce
			}
			return &f, h.Store.CreateFixedExpense(ctx, &f)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var f models.FixedExpense
			if err := json.Unmarshal(body, &f); err != nil {
				return nil, err
			}
			f.ID = id
			return &f, h.Store.UpdateFixedExpense(ctx, &f)
		},
		delete: h.Store.DeleteFixedExpense,
	})
}

// HandleCapex serves /api/capex.
func (h *Handler) HandleCapex(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListCapexItems(ctx, projectID)
			if items == nil {
				items = []models.CapexItem{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var c models.CapexItem
			if err := json.Unmarshal(body, &c); err != nil {
				return nil, err
			}
			return &c, h.Store.CreateCapexItem(ctx, &c)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var c models.CapexItem
			if err := json.Unmarshal(body, &c); err != nil {
				return nil, err
			}
			c.ID = id
			return &c, h.Store.UpdateCapexItem(ctx, &c)
		},
		delete: h.Store.DeleteCapexItem,
	})
}

// HandleFunding serves /api/funding.
func (h *Handler) HandleFunding(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, collection{
		list: func(ctx context.Context, projectID int) (interface{}, error) {
			items, err := h.Store.ListFundingSources(ctx, projectID)
			if items == nil {
				items = []models.FundingSource{}
			}
			return items, err
		},
		create: func(ctx context.Context, body []byte) (interface{}, error) {
			var f models.FundingSource
			if err := json.Unmarshal(body, &f); err != nil {
				return nil, err
			}
			return &f, h.Store.CreateFundingSource(ctx, &f)
		},
		update: func(ctx context.Context, id int, body []byte) (interface{}, error) {
			var f models.FundingSource
			if err := json.Unmarshal(body, &f); err != nil {
				return nil, err
			}
			f.ID = id
			return &f, h.Store.UpdateFundingSource(ctx, &f)
		},
		delete: h.Store.DeleteFundingSource,
	})
}
