package console

import (
	"fmt"
	"io"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/internal/output"
	"github.com/counterdesk/calculators/pkg/decimal"
)

// BillingSession is the MediSure clinic billing menu.
type BillingSession struct {
	Calc      *calculation.BillCalculator
	Formatter output.Formatter
}

// NewBillingSession wires a session around calc. A nil formatter means console output.
func NewBillingSession(calc *calculation.BillCalculator, f output.Formatter) *BillingSession {
	if f == nil {
		f = output.ConsoleFormatter{}
	}
	return &BillingSession{Calc: calc, Formatter: f}
}

// Run shows the menu on out, reading choices from in, until Exit or end of input.
func (s *BillingSession) Run(in io.Reader, out io.Writer) error {
	m := menu{
		title: "================== MediSure Clinic Billing ==================",
		items: []menuItem{
			{label: "Create New Bill (Enter Patient Details)", action: s.create},
			{label: "View Last Bill", action: s.view},
			{label: "Clear Last Bill", action: s.clear},
			{label: "Exit"},
		},
	}
	return m.run(newPrompter(in, out))
}

func (s *BillingSession) create(p *prompter) error {
	in, err := s.readBill(p)
	if err != nil {
		return err
	}
	bill, err := s.Calc.Create(in)
	if err != nil {
		return err
	}
	p.println()
	p.println("Bill created successfully.")
	if _, ok := s.Formatter.(output.ConsoleFormatter); !ok {
		return s.print(p, bill)
	}
	p.println(fmt.Sprintf("Gross Amount: %s", output.FormatMoney(bill.GrossAmount)))
	p.println(fmt.Sprintf("Discount Amount: %s", output.FormatMoney(bill.DiscountAmount)))
	p.println(fmt.Sprintf("Final Payable: %s", output.FormatMoney(bill.FinalPayable)))
	p.println("------------------------------------------------------------")
	p.println()
	return nil
}

// readBill prompts for each field and stops at the first invalid one.
func (s *BillingSession) readBill(p *prompter) (domain.BillInput, error) {
	var in domain.BillInput
	var err error

	if in.BillID, err = p.ask("Enter Bill Id: "); err != nil {
		return in, err
	}
	if err := calculation.RequireNonBlank(calculation.FieldBillID, in.BillID, calculation.MsgBillIDEmpty); err != nil {
		return in, err
	}
	if in.PatientName, err = p.ask("Enter Patient Name: "); err != nil {
		return in, err
	}
	insured, err := p.ask("Is the patient insured? (Y/N): ")
	if err != nil {
		return in, err
	}
	in.HasInsurance = parseYesNo(insured)

	if in.ConsultationFee, err = s.readCharge(p, "Enter Consultation Fee: ", calculation.FieldConsultationFee, true); err != nil {
		return in, err
	}
	if in.LabCharges, err = s.readCharge(p, "Enter Lab Charges: ", calculation.FieldLabCharges, false); err != nil {
		return in, err
	}
	in.MedicineCharges, err = s.readCharge(p, "Enter Medicine Charges: ", calculation.FieldMedicineCharges, false)
	return in, err
}

func (s *BillingSession) readCharge(p *prompter, label, field string, mustBePositive bool) (decimal.Money, error) {
	text, err := p.ask(label)
	if err != nil {
		return decimal.Money{}, err
	}
	amount, err := parseMoneyField(text, field, calculation.MsgInvalidNumber)
	if err != nil {
		return decimal.Money{}, err
	}
	if mustBePositive {
		return amount, calculation.RequirePositive(field, amount, calculation.MsgMustBePositive)
	}
	return amount, calculation.RequireNonNegative(field, amount, calculation.MsgCannotBeNegative)
}

func (s *BillingSession) view(p *prompter) error {
	bill, err := s.Calc.View()
	if err != nil {
		return err
	}
	return s.print(p, bill)
}

func (s *BillingSession) clear(p *prompter) error {
	s.Calc.Clear()
	p.println("Last bill cleared.")
	p.println()
	return nil
}

func (s *BillingSession) print(p *prompter, bill *domain.Bill) error {
	b, err := s.Formatter.FormatBill(bill)
	if err != nil {
		return err
	}
	if _, err := p.out.Write(b); err != nil {
		return err
	}
	p.println()
	return nil
}
