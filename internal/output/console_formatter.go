package output

import (
	"bytes"
	"fmt"

	"github.com/counterdesk/calculators/internal/domain"
)

// ConsoleFormatter renders the fixed text blocks shown by the interactive menus.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatBill(b *domain.Bill) ([]byte, error) {
	v := NewBillView(b)
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "----------- Last Bill -----------")
	fmt.Fprintf(&buf, "BillId: %s\n", v.BillID)
	fmt.Fprintf(&buf, "Patient: %s\n", v.PatientName)
	fmt.Fprintf(&buf, "Insured: %s\n", yesNo(v.HasInsurance))
	fmt.Fprintf(&buf, "Consultation Fee: %s\n", v.ConsultationFee)
	fmt.Fprintf(&buf, "Lab Charges: %s\n", v.LabCharges)
	fmt.Fprintf(&buf, "Medicine Charges: %s\n", v.MedicineCharges)
	fmt.Fprintf(&buf, "Gross Amount: %s\n", v.GrossAmount)
	fmt.Fprintf(&buf, "Discount Amount: %s\n", v.DiscountAmount)
	fmt.Fprintf(&buf, "Final Payable: %s\n", v.FinalPayable)
	fmt.Fprintln(&buf, "--------------------------------")
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatTransaction(t *domain.Transaction) ([]byte, error) {
	v := NewTransactionView(t)
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "-------------- Last Transaction --------------")
	fmt.Fprintf(&buf, "%-20s: %s\n", "Invoice No", v.InvoiceNo)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Customer", v.CustomerName)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Item", v.ItemName)
	fmt.Fprintf(&buf, "%-20s: %d\n", "Quantity", v.Quantity)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Purchase Amount", v.PurchaseAmount)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Selling Amount", v.SellingAmount)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Status", v.Status)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Profit/Loss Amount", v.ProfitOrLossAmount)
	fmt.Fprintf(&buf, "%-20s: %s\n", "Profit Margin (%)", v.MarginPercent)
	fmt.Fprintln(&buf, "----------------------------------------------")
	return buf.Bytes(), nil
}
