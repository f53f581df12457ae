// Package commands wires the CLI together.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fredrikluo/nordea-parser/internal/amount"
	"github.com/fredrikluo/nordea-parser/internal/buildinfo"
	"github.com/fredrikluo/nordea-parser/internal/config"
	"github.com/fredrikluo/nordea-parser/internal/importer"
	"github.com/fredrikluo/nordea-parser/internal/model"
	"github.com/fredrikluo/nordea-parser/internal/report"
)

// NewRootCommand creates the root CLI command.
func NewRootCommand() *cobra.Command {
	var configPath string
	var locale string
	var noDate bool

	cmd := &cobra.Command{
		Use:     "nordea-parser <debit.csv> <creditcard.txt>",
		Short:   "Extract transactions from Nordea statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.ExactArgs(2),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if locale != "" {
				cfg.Credit.Locale = locale
			}
			if noDate {
				cfg.Output.WithDate = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, args[0], args[1], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to nordea-parser.yaml")
	cmd.Flags().StringVar(&locale, "locale", "", "credit statement locale (overrides config)")
	cmd.Flags().BoolVar(&noDate, "no-date", false, "omit the date column from the output")

	return cmd
}

func run(cfg *config.Config, debitPath, creditPath string, out io.Writer) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	extractor, err := amount.NewExtractor(cfg.AmountOptions())
	if err != nil {
		return err
	}

	reg := importer.NewRegistry()
	reg.Register(importer.NewDebitParser(importer.DebitOptions{
		AmountHeader:      cfg.Debit.AmountHeader,
		DescriptionHeader: cfg.Debit.DescriptionHeader,
		DateHeader:        cfg.Debit.DateHeader,
		DateLayout:        cfg.Debit.DateLayout,
		Latin1:            cfg.Latin1(),
	}, log))
	reg.Register(importer.NewCreditParser(extractor, cfg.Credit.Locale, log))

	var txns []model.Transaction
	for _, in := range []struct {
		format string
		path   string
	}{
		{"debit", debitPath},
		{"credit", creditPath},
	} {
		parsed, err := parseFile(reg.Get(in.format), in.path)
		if err != nil {
			return err
		}
		txns = append(txns, parsed...)
	}

	return report.NewLineFormatter(cfg.Output.WithDate).Write(out, txns)
}

// parseFile opens path and feeds it to p, closing the file on every exit
// path.
func parseFile(p importer.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s export %s: %w", p.Format(), path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s export %s: %w", p.Format(), path, err)
	}
	return txns, nil
}

// newLogger builds a console logger on stderr; diagnostics must not mix with
// the record stream on stdout.
func newLogger() *zap.Logger {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	log, err := c.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
