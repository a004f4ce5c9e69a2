package domain

import (
	"github.com/counterdesk/calculators/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// TransactionInput holds the fields entered for a new sale
type TransactionInput struct {
	InvoiceNo      string        `yaml:"invoice_no" json:"invoice_no"`
	CustomerName   string        `yaml:"customer_name" json:"customer_name"`
	ItemName       string        `yaml:"item_name" json:"item_name"`
	Quantity       int           `yaml:"quantity" json:"quantity"`
	PurchaseAmount decimal.Money `yaml:"purchase_amount" json:"purchase_amount"` // total cost price
	SellingAmount  decimal.Money `yaml:"selling_amount" json:"selling_amount"`   // total selling price
}

// Transaction is a sale with its profit/loss classification.
type Transaction struct {
	InvoiceNo      string
	CustomerName   string
	ItemName       string
	Quantity       int
	PurchaseAmount decimal.Money
	SellingAmount  decimal.Money

	Status             Status
	ProfitOrLossAmount decimal.Money // never negative; direction is carried by Status
	MarginPercent      shop.Decimal
}

// Clone returns a copy that shares no state with t
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
