package calculation

import (
	"strings"

	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// InsuranceDiscountRate is the share of the gross amount waived for insured patients.
var InsuranceDiscountRate = shop.New(10, -2)

// User-facing validation messages for bills.
const (
	MsgBillIDEmpty      = "Bill Id cannot be empty."
	MsgInvalidNumber    = "Invalid number entered."
	MsgMustBePositive   = "Value must be greater than zero."
	MsgCannotBeNegative = "Value cannot be negative."
)

// ValidateBillInput checks fields in the order they are entered and
// returns the first failure.
func ValidateBillInput(in domain.BillInput) error {
	if err := RequireNonBlank(FieldBillID, in.BillID, MsgBillIDEmpty); err != nil {
		return err
	}
	if err := RequirePositive(FieldConsultationFee, in.ConsultationFee, MsgMustBePositive); err != nil {
		return err
	}
	if err := RequireNonNegative(FieldLabCharges, in.LabCharges, MsgCannotBeNegative); err != nil {
		return err
	}
	return RequireNonNegative(FieldMedicineCharges, in.MedicineCharges, MsgCannotBeNegative)
}

// ComputeBill validates the input and derives gross, discount and final payable.
func ComputeBill(in domain.BillInput) (*domain.Bill, error) {
	if err := ValidateBillInput(in); err != nil {
		return nil, err
	}

	gross := in.ConsultationFee.Add(in.LabCharges).Add(in.MedicineCharges)
	discount := InsuranceDiscount(gross, in.HasInsurance)

	return &domain.Bill{
		BillID:          strings.TrimSpace(in.BillID),
		PatientName:     strings.TrimSpace(in.PatientName),
		HasInsurance:    in.HasInsurance,
		ConsultationFee: in.ConsultationFee,
		LabCharges:      in.LabCharges,
		MedicineCharges: in.MedicineCharges,
		GrossAmount:     gross,
		DiscountAmount:  discount,
		FinalPayable:    gross.Sub(discount),
	}, nil
}

// InsuranceDiscount is 10% of the unrounded gross amount when insured, else zero.
func InsuranceDiscount(gross decimal.Money, insured bool) decimal.Money {
	if !insured {
		return decimal.Zero()
	}
	return gross.Percent(InsuranceDiscountRate)
}
