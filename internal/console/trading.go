package console

import (
	"io"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/internal/output"
)

// TradingSession is the QuickMart Traders profit/loss menu.
type TradingSession struct {
	Calc      *calculation.TransactionCalculator
	Formatter output.Formatter
}

// NewTradingSession wires a session around calc. A nil formatter means console output.
func NewTradingSession(calc *calculation.TransactionCalculator, f output.Formatter) *TradingSession {
	if f == nil {
		f = output.ConsoleFormatter{}
	}
	return &TradingSession{Calc: calc, Formatter: f}
}

// Run shows the menu on out, reading choices from in, until Exit or end of input.
func (s *TradingSession) Run(in io.Reader, out io.Writer) error {
	m := menu{
		title: "================== QuickMart Traders ==================",
		items: []menuItem{
			{label: "Create New Transaction (Enter Purchase & Selling Details)", action: s.create},
			{label: "View Last Transaction", action: s.view},
			{label: "Calculate Profit/Loss (Recompute & Print)", action: s.recompute},
			{label: "Exit"},
		},
	}
	return m.run(newPrompter(in, out))
}

func (s *TradingSession) create(p *prompter) error {
	in, err := s.readTransaction(p)
	if err != nil {
		return err
	}
	t, err := s.Calc.Create(in)
	if err != nil {
		return err
	}
	return s.print(p, t)
}

// readTransaction prompts for each field and stops at the first invalid one.
// Unparseable numbers report the same message as out-of-range ones.
func (s *TradingSession) readTransaction(p *prompter) (domain.TransactionInput, error) {
	var in domain.TransactionInput
	var err error

	if in.InvoiceNo, err = p.ask("Enter Invoice No: "); err != nil {
		return in, err
	}
	if err := calculation.RequireNonBlank(calculation.FieldInvoiceNo, in.InvoiceNo, calculation.MsgInvoiceEmpty); err != nil {
		return in, err
	}
	if in.CustomerName, err = p.ask("Enter Customer Name: "); err != nil {
		return in, err
	}
	if in.ItemName, err = p.ask("Enter Item Name: "); err != nil {
		return in, err
	}

	text, err := p.ask("Enter Quantity: ")
	if err != nil {
		return in, err
	}
	if in.Quantity, err = parseQuantity(text, calculation.FieldQuantity, calculation.MsgQuantity); err != nil {
		return in, err
	}
	if err := calculation.RequirePositiveQuantity(in.Quantity); err != nil {
		return in, err
	}

	if text, err = p.ask("Enter Purchase Amount (total): "); err != nil {
		return in, err
	}
	if in.PurchaseAmount, err = parseMoneyField(text, calculation.FieldPurchaseAmount, calculation.MsgPurchaseAmount); err != nil {
		return in, err
	}
	if err := calculation.RequirePositive(calculation.FieldPurchaseAmount, in.PurchaseAmount, calculation.MsgPurchaseAmount); err != nil {
		return in, err
	}

	if text, err = p.ask("Enter Selling Amount (total): "); err != nil {
		return in, err
	}
	if in.SellingAmount, err = parseMoneyField(text, calculation.FieldSellingAmount, calculation.MsgSellingAmount); err != nil {
		return in, err
	}
	return in, calculation.RequireNonNegative(calculation.FieldSellingAmount, in.SellingAmount, calculation.MsgSellingAmount)
}

func (s *TradingSession) view(p *prompter) error {
	t, err := s.Calc.View()
	if err != nil {
		return err
	}
	return s.print(p, t)
}

func (s *TradingSession) recompute(p *prompter) error {
	t, err := s.Calc.Recompute()
	if err != nil {
		return err
	}
	return s.print(p, t)
}

func (s *TradingSession) print(p *prompter, t *domain.Transaction) error {
	b, err := s.Formatter.FormatTransaction(t)
	if err != nil {
		return err
	}
	p.println()
	if _, err := p.out.Write(b); err != nil {
		return err
	}
	p.println()
	return nil
}
