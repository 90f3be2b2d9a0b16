package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/quickconvert/quickconvert/internal/config"
	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/logging"
	"github.com/quickconvert/quickconvert/internal/rates"
)

const rateFractionDigits = 4

// NewRatesCmd creates the rates command, which prints exchange-rate tables.
func NewRatesCmd() *cobra.Command {
	var (
		symbols []string
		locale  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "rates <BASE>...",
		Short: "Show the latest exchange rates for one or more base currencies",
		Args:  cobra.MinimumNArgs(1),
		Example: `  quickconvert rates USD
  quickconvert rates USD EUR --symbols INR,JPY --locale de`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("invalid --locale %q: %w", locale, err)
			}
			bases := make([]string, 0, len(args))
			for _, a := range args {
				c, lookupErr := convert.LookupCurrency(a)
				if lookupErr != nil {
					return lookupErr
				}
				bases = append(bases, c.Code)
			}
			codes := make([]string, 0, len(symbols))
			for _, s := range symbols {
				c, lookupErr := convert.LookupCurrency(s)
				if lookupErr != nil {
					return lookupErr
				}
				codes = append(codes, c.Code)
			}

			tables, err := fetchTables(cmd, bases)
			if err != nil {
				return err
			}
			return renderRates(cmd, tables, codes, tag, output)
		},
	}

	cmd.Flags().StringSliceVar(&symbols, "symbols", defaultSymbols(), "currencies to show")
	cmd.Flags().StringVar(&locale, "locale", "en", "BCP 47 locale for number formatting")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func defaultSymbols() []string {
	all := convert.WorldCurrencies()
	codes := make([]string, 0, len(all))
	for _, c := range all {
		codes = append(codes, c.Code)
	}
	return codes
}

// fetchTables fetches every base concurrently; the first failure cancels the rest.
func fetchTables(cmd *cobra.Command, bases []string) ([]convert.RateTable, error) {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	if cfg.Rates.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	fetcher, err := newFetcher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tables := make([]convert.RateTable, len(bases))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, base := range bases {
		g.Go(func() error {
			table, fetchErr := fetcher.FetchRates(gCtx, base)
			if fetchErr != nil {
				logging.FromContext(gCtx).Debug().
					Str("component", "cli").
					Str("base", base).
					Err(fetchErr).
					Msg("rate fetch failed")
				return fmt.Errorf("%s rates: %s: %w", base, rates.Message(fetchErr), fetchErr)
			}
			tables[i] = table
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

type ratesJSON struct {
	Base      string             `json:"base"`
	FetchedAt string             `json:"fetched_at"`
	Rates     map[string]float64 `json:"rates"`
}

func renderRates(cmd *cobra.Command, tables []convert.RateTable, codes []string, tag language.Tag, output string) error {
	switch output {
	case outputJSON:
		out := make([]ratesJSON, 0, len(tables))
		for _, t := range tables {
			selected := make(map[string]float64, len(codes))
			for _, code := range codes {
				if r, ok := t.Rate(code); ok {
					selected[code] = r
				}
			}
			out = append(out, ratesJSON{Base: t.Base, FetchedAt: t.FetchedAt.UTC().Format(time.RFC3339), Rates: selected})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case outputTable, "":
		return renderRatesTable(cmd, tables, codes, tag)
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", output, outputTable, outputJSON)
	}
}

func renderRatesTable(cmd *cobra.Command, tables []convert.RateTable, codes []string, tag language.Tag) error {
	p := message.NewPrinter(tag)
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "BASE\t%s\t\n", strings.Join(sorted, "\t"))
	for _, t := range tables {
		cells := make([]string, 0, len(sorted))
		for _, code := range sorted {
			r, ok := t.Rate(code)
			if !ok {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, p.Sprint(number.Decimal(r, number.MaxFractionDigits(rateFractionDigits))))
		}
		fmt.Fprintf(w, "%s\t%s\t\n", t.Base, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
