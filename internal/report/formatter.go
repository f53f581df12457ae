// Package report renders extracted transactions.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/fredrikluo/nordea-parser/internal/model"
)

// Formatter renders a transaction stream.
type Formatter interface {
	Write(w io.Writer, txns []model.Transaction) error
}

// dateLayout is the output date format.
const dateLayout = "2006-01-02"

// LineFormatter writes one semicolon-separated line per transaction:
// "date;amount;description", or "amount;description" when WithDate is off.
type LineFormatter struct {
	WithDate bool
}

// NewLineFormatter creates a LineFormatter.
func NewLineFormatter(withDate bool) *LineFormatter {
	return &LineFormatter{WithDate: withDate}
}

// Write implements Formatter.
func (f *LineFormatter) Write(w io.Writer, txns []model.Transaction) error {
	for _, txn := range txns {
		var err error
		if f.WithDate {
			_, err = fmt.Fprintf(w, "%s;%s;%s\n", txn.Date.Format(dateLayout), formatAmount(txn.Amount), txn.Description)
		} else {
			_, err = fmt.Fprintf(w, "%s;%s\n", formatAmount(txn.Amount), txn.Description)
		}
		if err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return nil
}

// formatAmount renders d at its parsed scale. Decimal.String trims trailing
// fractional zeros, but a statement amount of "-499,00" must print as
// "-499.00", not "-499".
func formatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
