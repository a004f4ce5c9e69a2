package calculation

import (
	"sync"

	"github.com/counterdesk/calculators/internal/domain"
)

// BillCalculator holds at most one bill: the last one created.
// All methods are safe for concurrent use.
type BillCalculator struct {
	mu      sync.Mutex
	last    *domain.Bill
	hasLast bool
	Logger  Logger
}

// NewBillCalculator creates an empty calculator. A nil logger disables logging.
func NewBillCalculator(logger Logger) *BillCalculator {
	return &BillCalculator{Logger: orNop(logger)}
}

// Create computes a bill and replaces any stored one. On error nothing changes.
func (c *BillCalculator) Create(in domain.BillInput) (*domain.Bill, error) {
	bill, err := ComputeBill(in)
	if err != nil {
		c.log().Debugf("bill rejected: %v", err)
		return nil, err
	}

	c.mu.Lock()
	replaced := c.hasLast
	c.last, c.hasLast = bill, true
	out := bill.Clone()
	c.mu.Unlock()

	c.log().Infof("bill %s created (gross=%s discount=%s final=%s replaced=%t)",
		out.BillID, out.GrossAmount, out.DiscountAmount, out.FinalPayable, replaced)
	return out, nil
}

// View returns a copy of the stored bill.
func (c *BillCalculator) View() (*domain.Bill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return nil, &domain.EmptyStateError{Entity: "bill"}
	}
	return c.last.Clone(), nil
}

// Clear drops the stored bill. Clearing an empty calculator is not an error.
func (c *BillCalculator) Clear() {
	c.mu.Lock()
	had := c.hasLast
	c.last, c.hasLast = nil, false
	c.mu.Unlock()
	c.log().Infof("last bill cleared (had bill=%t)", had)
}

// HasBill reports whether a bill is stored.
func (c *BillCalculator) HasBill() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasLast
}

func (c *BillCalculator) log() Logger { return orNop(c.Logger) }
