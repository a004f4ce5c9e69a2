package calculation

import (
	"sync"

	"github.com/counterdesk/calculators/internal/domain"
)

// TransactionCalculator holds the last sale transaction.
// All methods are safe for concurrent use.
type TransactionCalculator struct {
	mu      sync.Mutex
	last    *domain.Transaction
	hasLast bool
	Logger  Logger
}

// NewTransactionCalculator creates an empty calculator. A nil logger disables logging.
func NewTransactionCalculator(logger Logger) *TransactionCalculator {
	return &TransactionCalculator{Logger: orNop(logger)}
}

// Create classifies a sale and replaces any stored transaction. On error nothing changes.
func (c *TransactionCalculator) Create(in domain.TransactionInput) (*domain.Transaction, error) {
	t, err := ComputeTransaction(in)
	if err != nil {
		c.log().Debugf("transaction rejected: %v", err)
		return nil, err
	}

	// The stored record is shared with Recompute once published; copy it under the lock.
	c.mu.Lock()
	c.last, c.hasLast = t, true
	out := t.Clone()
	c.mu.Unlock()

	c.log().Infof("transaction %s created (status=%s amount=%s margin=%s)",
		out.InvoiceNo, out.Status, out.ProfitOrLossAmount, out.MarginPercent.StringFixed(2))
	return out, nil
}

// View returns a copy of the stored transaction without recomputing it.
func (c *TransactionCalculator) View() (*domain.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return nil, &domain.EmptyStateError{Entity: "transaction"}
	}
	return c.last.Clone(), nil
}

// Recompute re-derives status, amount and margin of the stored transaction in place.
func (c *TransactionCalculator) Recompute() (*domain.Transaction, error) {
	c.mu.Lock()
	if !c.hasLast {
		c.mu.Unlock()
		return nil, &domain.EmptyStateError{Entity: "transaction"}
	}
	Recalculate(c.last)
	t := c.last.Clone()
	c.mu.Unlock()

	c.log().Debugf("transaction %s recomputed (status=%s)", t.InvoiceNo, t.Status)
	return t, nil
}

// HasTransaction reports whether a transaction is stored.
func (c *TransactionCalculator) HasTransaction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasLast
}

func (c *TransactionCalculator) log() Logger { return orNop(c.Logger) }
