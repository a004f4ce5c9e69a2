package output

import (
	"github.com/counterdesk/calculators/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the display view as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) FormatBill(b *domain.Bill) ([]byte, error) {
	return yaml.Marshal(NewBillView(b))
}

func (y YAMLFormatter) FormatTransaction(t *domain.Transaction) ([]byte, error) {
	return yaml.Marshal(NewTransactionView(t))
}
