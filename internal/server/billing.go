package server

import (
	"net/http"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/internal/output"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type billingHandler struct {
	calc *calculation.BillCalculator
}

// NewBillingHandler serves the bill calculator:
// POST /bills, GET /bills/last, DELETE /bills/last.
func NewBillingHandler(calc *calculation.BillCalculator, logger *zap.Logger) http.Handler {
	h := &billingHandler{calc: calc}
	r := newRouter(logger)
	r.Route("/bills", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/last", h.view)
		r.Delete("/last", h.clear)
	})
	return r
}

func (h *billingHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.BillInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	bill, err := h.calc.Create(in)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output.NewBillView(bill))
}

func (h *billingHandler) view(w http.ResponseWriter, r *http.Request) {
	bill, err := h.calc.View()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output.NewBillView(bill))
}

func (h *billingHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.calc.Clear()
	w.WriteHeader(http.StatusNoContent)
}
