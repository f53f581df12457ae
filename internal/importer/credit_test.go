package importer

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredrikluo/nordea-parser/internal/amount"
)

func TestCreditParser_ParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		date   time.Time
		desc   string
		amount string
	}{
		{
			name:   "standard negative",
			line:   "29 mai 2025 7ELEVEN7 067 FrNansen 121 -49,00",
			date:   time.Date(2025, time.May, 29, 0, 0, 0, 0, time.UTC),
			desc:   "7ELEVEN7 067 FrNansen 121",
			amount: "-49.00",
		},
		{
			name:   "positive with digits in description",
			line:   "01 jan 2024 COOP PRIX 12345 67,89",
			date:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			desc:   "COOP PRIX 12345",
			amount: "67.89",
		},
		{
			name:   "no decimal part",
			line:   "15 jun 2023 REMA 1000 150",
			date:   time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			desc:   "REMA 1000",
			amount: "150",
		},
		{
			name:   "spaced thousands",
			line:   "20 aug 2022 EXTRA Storegata - Kjøp 1 234,50",
			date:   time.Date(2022, time.August, 20, 0, 0, 0, 0, time.UTC),
			desc:   "EXTRA Storegata - Kjøp",
			amount: "1234.50",
		},
		{
			name:   "decimal only",
			line:   "05 jul 2024 Item Only Decimal ,50",
			date:   time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
			desc:   "Item Only Decimal",
			amount: "0.50",
		},
		{
			name:   "decimal only negative",
			line:   "10 sep 2023 Thing -,99",
			date:   time.Date(2023, time.September, 10, 0, 0, 0, 0, time.UTC),
			desc:   "Thing",
			amount: "-0.99",
		},
		{
			name:   "interior spacing preserved",
			line:   "12 mar 2020  Leading  Multiple   Spaces  Desc  123,45",
			date:   time.Date(2020, time.March, 12, 0, 0, 0, 0, time.UTC),
			desc:   "Leading  Multiple   Spaces  Desc",
			amount: "123.45",
		},
	}

	p := NewCreditParser(nil, "", nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := p.ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.date, txn.Date)
			assert.Equal(t, tt.desc, txn.Description)
			assert.True(t, txn.Amount.Equal(decimal.RequireFromString(tt.amount)),
				"amount %s != %s", txn.Amount, tt.amount)
			assert.Equal(t, "credit", txn.Source)
		})
	}
}

func TestCreditParser_ParseLineErrors(t *testing.T) {
	p := NewCreditParser(nil, "", nil)

	_, err := p.ParseLine("no amount on this line")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no amount")

	_, err = p.ParseLine("SHOP 123,45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")

	_, err = p.ParseLine("29 xyz 2025 SHOP 123,45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestCreditParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/creditcard.txt")
	require.NoError(t, err)

	p := NewCreditParser(nil, "", nil)
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// Seven non-blank lines, one of which is not a transaction.
	require.Len(t, txns, 6)

	assert.Equal(t, "MOBILREGNING", txns[0].Description)
	assert.Equal(t, "-499.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, time.Date(2025, time.May, 29, 0, 0, 0, 0, time.UTC), txns[0].Date)

	assert.Equal(t, "SPOTIFY AB", txns[1].Description)
	assert.Equal(t, "BUTIKK KJØP", txns[2].Description)
	assert.True(t, txns[2].Amount.Equal(decimal.NewFromInt(1250)))
	assert.Equal(t, "NETFLIX", txns[3].Description)

	// Trailing digits in the description do not bleed into the amount.
	assert.Equal(t, "MOBILREGNING 121313", txns[4].Description)
	assert.Equal(t, "-499.00", txns[4].Amount.StringFixed(2))
	assert.Equal(t, "MOBILREGNING 121 313", txns[5].Description)
	assert.Equal(t, "23499.00", txns[5].Amount.StringFixed(2))
}

func TestCreditParser_StrictExtractorSkipsUngroupedRuns(t *testing.T) {
	strict := amount.MustExtractor(amount.Options{
		GroupSeparator:     amount.GroupSeparatorSpace,
		RequireIntegerPart: true,
	})
	p := NewCreditParser(strict, "", nil)

	_, err := p.ParseLine("01 jan 2024 SHOP 12345,67")
	assert.Error(t, err)

	txn, err := p.ParseLine("01 jan 2024 SHOP 12 345,67")
	require.NoError(t, err)
	assert.Equal(t, "12345.67", txn.Amount.StringFixed(2))
}

func TestCreditParser_Format(t *testing.T) {
	assert.Equal(t, "credit", NewCreditParser(nil, "", nil).Format())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewDebitParser(DebitOptions{}, nil))
	r.Register(NewCreditParser(nil, "", nil))

	require.NotNil(t, r.Get("debit"))
	require.NotNil(t, r.Get("CREDIT"))
	assert.Nil(t, r.Get("pdf"))

	assert.Panics(t, func() { r.Register(NewCreditParser(nil, "", nil)) })
}
