package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one extracted statement entry.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = charge, positive = refund/income
	Source      string          // producing parser format ("debit", "credit")
}
