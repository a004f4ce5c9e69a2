package output

import (
	"encoding/json"

	"github.com/counterdesk/calculators/internal/domain"
)

// JSONFormatter serializes the display view as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatBill(b *domain.Bill) ([]byte, error) {
	return marshalIndentLine(NewBillView(b))
}

func (j JSONFormatter) FormatTransaction(t *domain.Transaction) ([]byte, error) {
	return marshalIndentLine(NewTransactionView(t))
}

func marshalIndentLine(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
