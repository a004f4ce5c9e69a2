package calculation

import (
	"strings"

	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/pkg/decimal"
)

// Field names used in ValidationError.Field.
const (
	FieldBillID          = "bill_id"
	FieldConsultationFee = "consultation_fee"
	FieldLabCharges      = "lab_charges"
	FieldMedicineCharges = "medicine_charges"
	FieldInvoiceNo       = "invoice_no"
	FieldQuantity        = "quantity"
	FieldPurchaseAmount  = "purchase_amount"
	FieldSellingAmount   = "selling_amount"
)

// RequireNonBlank rejects empty or whitespace-only identifiers.
func RequireNonBlank(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Field: field, Message: message}
	}
	return nil
}

// RequirePositive rejects amounts <= 0.
func RequirePositive(field string, m decimal.Money, message string) error {
	if !m.IsPositive() {
		return &domain.ValidationError{Field: field, Message: message}
	}
	return nil
}

// RequireNonNegative rejects amounts < 0.
func RequireNonNegative(field string, m decimal.Money, message string) error {
	if m.IsNegative() {
		return &domain.ValidationError{Field: field, Message: message}
	}
	return nil
}

// RequirePositiveQuantity rejects quantities <= 0.
func RequirePositiveQuantity(q int) error {
	if q <= 0 {
		return &domain.ValidationError{Field: FieldQuantity, Message: MsgQuantity}
	}
	return nil
}
