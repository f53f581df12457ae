package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fredrikluo/nordea-parser/internal/amount"
	"github.com/fredrikluo/nordea-parser/internal/dateparse"
	"github.com/fredrikluo/nordea-parser/internal/model"
)

// CreditParser parses the free-form credit-card text export: one transaction
// per non-blank line, a localized date phrase followed by the merchant
// description and a trailing amount, e.g.
//
//	29 mai 2025 7ELEVEN7 067 FrNansen 121 -49,00
type CreditParser struct {
	extractor *amount.Extractor
	locale    string
	log       *zap.Logger
}

// NewCreditParser creates a CreditParser. A nil extractor gets the default
// policy, an empty locale the Norwegian month table, a nil logger disables
// diagnostics.
func NewCreditParser(extractor *amount.Extractor, locale string, log *zap.Logger) *CreditParser {
	if extractor == nil {
		extractor = amount.MustExtractor(amount.Options{})
	}
	if locale == "" {
		locale = dateparse.DefaultLocale
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CreditParser{extractor: extractor, locale: locale, log: log}
}

// Format returns the parser name.
func (p *CreditParser) Format() string { return "credit" }

// Parse streams the export line by line. Blank lines are skipped silently;
// lines whose amount or date cannot be parsed are dropped with a logged
// warning, mirroring the debit pipeline.
func (p *CreditParser) Parse(r io.Reader) ([]model.Transaction, error) {
	var txns []model.Transaction
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		txn, err := p.ParseLine(raw)
		if err != nil {
			p.log.Warn("skipping credit line", zap.Int("line", line), zap.Error(err))
			continue
		}
		txns = append(txns, txn)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading credit export: %w", err)
	}
	return txns, nil
}

// ParseLine splits one statement line into date, description and amount. The
// amount is located first; everything left of it is the date phrase (first
// three tokens) and the description (the rest).
func (p *CreditParser) ParseLine(line string) (model.Transaction, error) {
	tok := p.extractor.Extract(line)
	if !tok.Valid() {
		return model.Transaction{}, fmt.Errorf("no amount found in %q", line)
	}

	prefix := strings.TrimSpace(line[:tok.Start])
	parts := strings.Split(prefix, " ")
	if len(parts) < 3 {
		return model.Transaction{}, fmt.Errorf("expected a date before the amount in %q", line)
	}

	date, err := dateparse.Parse(strings.Join(parts[:3], " "), p.locale)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date: %w", err)
	}

	amt, err := decimal.NewFromString(tok.Normalized())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", tok.Normalized(), err)
	}

	// Joining on a single space keeps interior runs of spaces from the
	// original description intact.
	desc := strings.TrimSpace(strings.Join(parts[3:], " "))

	return model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amt,
		Source:      p.Format(),
	}, nil
}
