package server

import (
	"net/http"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/internal/output"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type tradingHandler struct {
	calc *calculation.TransactionCalculator
}

// NewTradingHandler serves the transaction calculator:
// POST /transactions, GET /transactions/last, POST /transactions/last/recompute.
func NewTradingHandler(calc *calculation.TransactionCalculator, logger *zap.Logger) http.Handler {
	h := &tradingHandler{calc: calc}
	r := newRouter(logger)
	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/last", h.view)
		r.Post("/last/recompute", h.recompute)
	})
	return r
}

func (h *tradingHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.TransactionInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	t, err := h.calc.Create(in)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output.NewTransactionView(t))
}

func (h *tradingHandler) view(w http.ResponseWriter, r *http.Request) {
	t, err := h.calc.View()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output.NewTransactionView(t))
}

func (h *tradingHandler) recompute(w http.ResponseWriter, r *http.Request) {
	t, err := h.calc.Recompute()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output.NewTransactionView(t))
}
