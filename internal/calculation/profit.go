package calculation

import (
	"strings"

	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// User-facing validation messages for sale transactions.
const (
	MsgInvoiceEmpty   = "Invoice No cannot be empty."
	MsgQuantity       = "Quantity must be greater than 0."
	MsgPurchaseAmount = "Purchase Amount must be greater than 0."
	MsgSellingAmount  = "Selling Amount must be >= 0."
)

// ValidateTransactionInput checks fields in entry order and returns the first failure.
func ValidateTransactionInput(in domain.TransactionInput) error {
	if err := RequireNonBlank(FieldInvoiceNo, in.InvoiceNo, MsgInvoiceEmpty); err != nil {
		return err
	}
	if err := RequirePositiveQuantity(in.Quantity); err != nil {
		return err
	}
	if err := RequirePositive(FieldPurchaseAmount, in.PurchaseAmount, MsgPurchaseAmount); err != nil {
		return err
	}
	return RequireNonNegative(FieldSellingAmount, in.SellingAmount, MsgSellingAmount)
}

// ClassifyProfit compares selling against purchase exactly, with no tolerance.
// The returned amount is never negative.
func ClassifyProfit(purchase, selling decimal.Money) (domain.Status, decimal.Money) {
	switch selling.Cmp(purchase) {
	case 1:
		return domain.StatusProfit, selling.Sub(purchase)
	case -1:
		return domain.StatusLoss, purchase.Sub(selling)
	default:
		return domain.StatusBreakEven, decimal.Zero()
	}
}

// MarginPercent is amount as a percentage of purchase, unrounded.
// A zero purchase yields zero; validation normally rules that out.
func MarginPercent(amount, purchase decimal.Money) shop.Decimal {
	return amount.PercentOf(purchase)
}

// Recalculate reapplies the classification to t's stored amounts in place.
func Recalculate(t *domain.Transaction) {
	t.Status, t.ProfitOrLossAmount = ClassifyProfit(t.PurchaseAmount, t.SellingAmount)
	t.MarginPercent = MarginPercent(t.ProfitOrLossAmount, t.PurchaseAmount)
}

// ComputeTransaction validates the input and classifies the sale.
func ComputeTransaction(in domain.TransactionInput) (*domain.Transaction, error) {
	if err := ValidateTransactionInput(in); err != nil {
		return nil, err
	}
	t := &domain.Transaction{
		InvoiceNo:      strings.TrimSpace(in.InvoiceNo),
		CustomerName:   strings.TrimSpace(in.CustomerName),
		ItemName:       strings.TrimSpace(in.ItemName),
		Quantity:       in.Quantity,
		PurchaseAmount: in.PurchaseAmount,
		SellingAmount:  in.SellingAmount,
	}
	Recalculate(t)
	return t, nil
}
