package output

import (
	"strconv"

	"github.com/counterdesk/calculators/internal/domain"
)

// BillView is the display form of a bill: money as two-decimal strings.
type BillView struct {
	BillID          string `json:"bill_id" yaml:"bill_id"`
	PatientName     string `json:"patient_name" yaml:"patient_name"`
	HasInsurance    bool   `json:"has_insurance" yaml:"has_insurance"`
	ConsultationFee string `json:"consultation_fee" yaml:"consultation_fee"`
	LabCharges      string `json:"lab_charges" yaml:"lab_charges"`
	MedicineCharges string `json:"medicine_charges" yaml:"medicine_charges"`
	GrossAmount     string `json:"gross_amount" yaml:"gross_amount"`
	DiscountAmount  string `json:"discount_amount" yaml:"discount_amount"`
	FinalPayable    string `json:"final_payable" yaml:"final_payable"`
}

// NewBillView rounds every amount of b for display.
func NewBillView(b *domain.Bill) BillView {
	return BillView{
		BillID:          b.BillID,
		PatientName:     b.PatientName,
		HasInsurance:    b.HasInsurance,
		ConsultationFee: FormatMoney(b.ConsultationFee),
		LabCharges:      FormatMoney(b.LabCharges),
		MedicineCharges: FormatMoney(b.MedicineCharges),
		GrossAmount:     FormatMoney(b.GrossAmount),
		DiscountAmount:  FormatMoney(b.DiscountAmount),
		FinalPayable:    FormatMoney(b.FinalPayable),
	}
}

func (v BillView) header() []string {
	return []string{"BillId", "PatientName", "HasInsurance", "ConsultationFee", "LabCharges", "MedicineCharges", "GrossAmount", "DiscountAmount", "FinalPayable"}
}

func (v BillView) row() []string {
	return []string{v.BillID, v.PatientName, strconv.FormatBool(v.HasInsurance), v.ConsultationFee, v.LabCharges, v.MedicineCharges, v.GrossAmount, v.DiscountAmount, v.FinalPayable}
}

// TransactionView is the display form of a sale transaction.
type TransactionView struct {
	InvoiceNo          string        `json:"invoice_no" yaml:"invoice_no"`
	CustomerName       string        `json:"customer_name" yaml:"customer_name"`
	ItemName           string        `json:"item_name" yaml:"item_name"`
	Quantity           int           `json:"quantity" yaml:"quantity"`
	PurchaseAmount     string        `json:"purchase_amount" yaml:"purchase_amount"`
	SellingAmount      string        `json:"selling_amount" yaml:"selling_amount"`
	Status             domain.Status `json:"status" yaml:"status"`
	ProfitOrLossAmount string        `json:"profit_or_loss_amount" yaml:"profit_or_loss_amount"`
	MarginPercent      string        `json:"margin_percent" yaml:"margin_percent"`
}

// NewTransactionView rounds every amount of t for display.
func NewTransactionView(t *domain.Transaction) TransactionView {
	return TransactionView{
		InvoiceNo:          t.InvoiceNo,
		CustomerName:       t.CustomerName,
		ItemName:           t.ItemName,
		Quantity:           t.Quantity,
		PurchaseAmount:     FormatMoney(t.PurchaseAmount),
		SellingAmount:      FormatMoney(t.SellingAmount),
		Status:             t.Status,
		ProfitOrLossAmount: FormatMoney(t.ProfitOrLossAmount),
		MarginPercent:      FormatPercentage(t.MarginPercent),
	}
}

func (v TransactionView) header() []string {
	return []string{"InvoiceNo", "CustomerName", "ItemName", "Quantity", "PurchaseAmount", "SellingAmount", "Status", "ProfitOrLossAmount", "ProfitMarginPercent"}
}

func (v TransactionView) row() []string {
	return []string{v.InvoiceNo, v.CustomerName, v.ItemName, strconv.Itoa(v.Quantity), v.PurchaseAmount, v.SellingAmount, v.Status.String(), v.ProfitOrLossAmount, v.MarginPercent}
}
