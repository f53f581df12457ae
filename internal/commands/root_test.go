package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	debitFixture  = "../../testdata/debit.csv"
	creditFixture = "../../testdata/creditcard.txt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_EndToEnd(t *testing.T) {
	out, err := execute(t, debitFixture, creditFixture)
	require.NoError(t, err)

	assert.Equal(t,
		"2024-01-01;-100.50;Payment A\n"+
			"2024-01-05;2000.75;Transfer B\n"+
			"2024-01-10;-30.00;Payment C\n"+
			"2025-05-29;-499.00;MOBILREGNING\n"+
			"2024-01-01;-109.00;SPOTIFY AB\n"+
			"2023-06-15;1250;BUTIKK KJØP\n"+
			"2022-08-20;-159.50;NETFLIX\n"+
			"2025-05-29;-499.00;MOBILREGNING 121313\n"+
			"2025-05-29;23499.00;MOBILREGNING 121 313\n",
		out)
}

func TestRootCommand_NoDate(t *testing.T) {
	out, err := execute(t, "--no-date", debitFixture, creditFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "-100.50;Payment A\n")
	assert.NotContains(t, out, "2024-01-01;")
}

func TestRootCommand_MissingDebitFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.csv"), creditFixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening debit export")
}

func TestRootCommand_MissingCreditFile(t *testing.T) {
	_, err := execute(t, debitFixture, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening credit export")
}

func TestRootCommand_BadLocaleFlag(t *testing.T) {
	_, err := execute(t, "--locale", "sv", debitFixture, creditFixture)
	assert.Error(t, err)
}

func TestRootCommand_WrongArgCount(t *testing.T) {
	_, err := execute(t, debitFixture)
	assert.Error(t, err)
}
