package domain

import (
	"github.com/counterdesk/calculators/pkg/decimal"
)

// BillInput holds the fields a clinic clerk enters for a new bill
type BillInput struct {
	BillID          string        `yaml:"bill_id" json:"bill_id"`
	PatientName     string        `yaml:"patient_name" json:"patient_name"`
	HasInsurance    bool          `yaml:"has_insurance" json:"has_insurance"`
	ConsultationFee decimal.Money `yaml:"consultation_fee" json:"consultation_fee"`
	LabCharges      decimal.Money `yaml:"lab_charges" json:"lab_charges"`
	MedicineCharges decimal.Money `yaml:"medicine_charges" json:"medicine_charges"`
}

// Bill is a patient bill together with its derived amounts.
// Derived amounts keep full precision; rounding happens only when printed.
type Bill struct {
	BillID          string
	PatientName     string
	HasInsurance    bool
	ConsultationFee decimal.Money
	LabCharges      decimal.Money
	MedicineCharges decimal.Money

	GrossAmount    decimal.Money
	DiscountAmount decimal.Money
	FinalPayable   decimal.Money
}

// Clone returns a copy that shares no state with b
func (b *Bill) Clone() *Bill {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
