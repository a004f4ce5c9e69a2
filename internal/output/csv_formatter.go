package output

import (
	"bytes"
	"encoding/csv"

	"github.com/counterdesk/calculators/internal/domain"
)

// CSVFormatter writes a header row followed by the record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) FormatBill(b *domain.Bill) ([]byte, error) {
	v := NewBillView(b)
	return writeCSV(v.header(), v.row())
}

func (c CSVFormatter) FormatTransaction(t *domain.Transaction) ([]byte, error) {
	v := NewTransactionView(t)
	return writeCSV(v.header(), v.row())
}

func writeCSV(rows ...[]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
