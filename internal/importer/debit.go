package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/fredrikluo/nordea-parser/internal/model"
)

// DebitOptions describe the debit-card CSV layout. Zero values fall back to
// the current Nordea export.
type DebitOptions struct {
	AmountHeader      string
	DescriptionHeader string
	DateHeader        string
	DateLayout        string // Go reference layout, default "02.01.2006"
	Latin1            bool   // decode ISO-8859-1 legacy exports
}

const (
	defaultAmountHeader      = "Beløp"
	defaultDescriptionHeader = "Tittel"
	defaultDateHeader        = "Dato"
	defaultDateLayout        = "02.01.2006"
)

// DebitParser parses Nordea debit-card CSV exports: semicolon-separated,
// header row with named columns, decimal-comma amounts.
type DebitParser struct {
	opts DebitOptions
	log  *zap.Logger
}

// NewDebitParser creates a DebitParser. A nil logger disables diagnostics.
func NewDebitParser(opts DebitOptions, log *zap.Logger) *DebitParser {
	if opts.AmountHeader == "" {
		opts.AmountHeader = defaultAmountHeader
	}
	if opts.DescriptionHeader == "" {
		opts.DescriptionHeader = defaultDescriptionHeader
	}
	if opts.DateHeader == "" {
		opts.DateHeader = defaultDateHeader
	}
	if opts.DateLayout == "" {
		opts.DateLayout = defaultDateLayout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DebitParser{opts: opts, log: log}
}

// Format returns the parser name.
func (p *DebitParser) Format() string { return "debit" }

// Parse reads the CSV one row at a time. Rows whose date or amount cannot be
// parsed are dropped with a logged warning; only I/O and header problems are
// errors.
func (p *DebitParser) Parse(r io.Reader) ([]model.Transaction, error) {
	if p.opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading debit CSV header: %w", err)
	}
	cols, err := mapColumns(header, p.opts.AmountHeader, p.opts.DescriptionHeader, p.opts.DateHeader)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading debit CSV row %d: %w", row, err)
		}
		if len(rec) <= cols.max {
			p.log.Warn("skipping short debit row", zap.Int("row", row), zap.Int("fields", len(rec)))
			continue
		}

		date, err := time.Parse(p.opts.DateLayout, rec[cols.date])
		if err != nil {
			p.log.Warn("skipping debit row with bad date",
				zap.Int("row", row), zap.String("date", rec[cols.date]), zap.Error(err))
			continue
		}

		// The export writes a decimal comma; decimal wants a dot.
		text := strings.Replace(rec[cols.amount], ",", ".", 1)
		amt, err := decimal.NewFromString(text)
		if err != nil {
			p.log.Warn("skipping debit row with bad amount",
				zap.Int("row", row), zap.String("amount", rec[cols.amount]), zap.Error(err))
			continue
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: rec[cols.desc],
			Amount:      amt,
			Source:      p.Format(),
		})
	}
	return txns, nil
}

// columns are the resolved indexes of the three required fields.
type columns struct {
	amount, desc, date, max int
}

func mapColumns(header []string, amount, desc, date string) (columns, error) {
	find := func(name string) (int, error) {
		for i, field := range header {
			field = strings.TrimPrefix(field, "\ufeff") // exported files often carry a BOM
			if strings.EqualFold(strings.TrimSpace(field), name) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("required column %q not found in CSV header", name)
	}

	var c columns
	var err error
	if c.amount, err = find(amount); err != nil {
		return columns{}, err
	}
	if c.desc, err = find(desc); err != nil {
		return columns{}, err
	}
	if c.date, err = find(date); err != nil {
		return columns{}, err
	}
	c.max = c.amount
	if c.desc > c.max {
		c.max = c.desc
	}
	if c.date > c.max {
		c.max = c.date
	}
	return c, nil
}
