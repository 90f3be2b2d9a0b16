package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/keypad"
	"github.com/quickconvert/quickconvert/internal/logging"
	"github.com/quickconvert/quickconvert/internal/screen"
)

const (
	outputText  = "text"
	outputJSON  = "json"
	outputTable = "table"
)

// conversionResult is the JSON shape of a conversion.
type conversionResult struct {
	From conversionSide `json:"from"`
	To   conversionSide `json:"to"`
}

type conversionSide struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// NewConvertCmd creates the convert command group.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "One-shot unit and currency conversions",
	}
	cmd.PersistentFlags().StringP("output", "o", outputText, "output format: text or json")
	cmd.AddCommand(newConvertSpeedCmd(), newConvertTemperatureCmd(), newConvertCurrencyCmd())
	return cmd
}

func newConvertSpeedCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "speed <value>",
		Short:   "Convert between km/h, mph, m/s and km/s",
		Args:    cobra.ExactArgs(1),
		Example: `  quickconvert convert speed 36 --from km/h --to m/s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit, err := convert.ParseSpeedUnit(from)
			if err != nil {
				return err
			}
			toUnit, err := convert.ParseSpeedUnit(to)
			if err != nil {
				return err
			}
			state := screen.NewSpeedState()
			state.FromUnit, state.ToUnit = fromUnit, toUnit

			state, err = replayConversion(cmd.Context(), state, speedStrategy(config.GetGlobalConfig()), args[0])
			if err != nil {
				return err
			}
			return printConversion(cmd, state.FromValue, fromUnit.Symbol(), state.ToValue, toUnit.Symbol())
		},
	}
	cmd.Flags().StringVar(&from, "from", convert.KilometersPerHour.Symbol(), "source unit")
	cmd.Flags().StringVar(&to, "to", convert.MilesPerHour.Symbol(), "target unit")
	return cmd
}

func newConvertTemperatureCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "temperature <value>",
		Aliases: []string{"temp"},
		Short:   "Convert between Celsius, Fahrenheit and Kelvin",
		Args:    cobra.ExactArgs(1),
		Example: `  quickconvert convert temperature -- -40 --from C --to F`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit, err := convert.ParseTemperatureUnit(from)
			if err != nil {
				return err
			}
			toUnit, err := convert.ParseTemperatureUnit(to)
			if err != nil {
				return err
			}
			state := screen.NewTemperatureState()
			state.FromUnit, state.ToUnit = fromUnit, toUnit

			state, err = replayConversion(cmd.Context(), state, temperatureStrategy(config.GetGlobalConfig()), args[0])
			if err != nil {
				return err
			}
			return printConversion(cmd, state.FromValue, fromUnit.Symbol(), state.ToValue, toUnit.Symbol())
		},
	}
	cmd.Flags().StringVar(&from, "from", convert.Celsius.Symbol(), "source unit")
	cmd.Flags().StringVar(&to, "to", convert.Fahrenheit.Symbol(), "target unit")
	return cmd
}

func newConvertCurrencyCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "currency <value>",
		Short:   "Convert between currencies using the latest rates",
		Args:    cobra.ExactArgs(1),
		Example: `  quickconvert convert currency 25 --from USD --to EUR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertCurrency(cmd, args[0], from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", convert.DefaultFromCurrency, "source currency (ISO 4217)")
	cmd.Flags().StringVar(&to, "to", convert.DefaultToCurrency, "target currency (ISO 4217)")
	return cmd
}

func runConvertCurrency(cmd *cobra.Command, value, from, to string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	if cfg.Rates.APIKey == "" {
		return ErrNoAPIKey
	}

	fromCur, err := convert.LookupCurrency(from)
	if err != nil {
		return err
	}
	toCur, err := convert.LookupCurrency(to)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(ctx, cfg)
	if err != nil {
		return err
	}

	reducer := currencyReducer(cfg)
	initial := screen.NewCurrencyState()
	initial.FromUnit, initial.ToUnit = fromCur, toCur

	var req *screen.FetchRequest
	store := screen.NewStore(initial, func(s screen.CurrencyState, ev screen.Event) (screen.CurrencyState, error) {
		next, fetch, err := reducer.Reduce(s, ev)
		if fetch != nil {
			req = fetch
		}
		return next, err
	})
	defer store.Subscribe(func(s screen.CurrencyState) {
		logSnapshot(ctx, s.ConversionState, s.Error)
	})()

	apply := func(ev screen.Event) error {
		if _, applyErr := store.Dispatch(ev); applyErr != nil {
			return &ConversionError{Message: applyErr.Error()}
		}
		return nil
	}
	if err = apply(screen.ClearPressed{}); err != nil {
		return err
	}
	if err = replayValue(value, false, apply); err != nil {
		return err
	}

	_, _ = store.Dispatch(screen.RatesRequested{})
	table, fetchErr := fetcher.FetchRates(ctx, req.Base)
	if fetchErr != nil {
		logging.FromContext(ctx).Debug().Err(fetchErr).Str("component", "cli").Msg("rate fetch failed")
		_, _ = store.Dispatch(screen.RatesFailed{Seq: req.Seq, Err: fetchErr})
	} else {
		_, _ = store.Dispatch(screen.RatesLoaded{Seq: req.Seq, Table: table})
	}

	state := store.Snapshot()
	if state.Error != "" {
		return &ConversionError{Message: state.Error}
	}
	if state.ToValue == "" {
		return &ConversionError{Message: fmt.Sprintf("no rate for %s in the %s table", toCur.Code, fromCur.Code)}
	}
	return printConversion(cmd, state.FromValue, fromCur.Code, state.ToValue, toCur.Code)
}

// replayConversion types value into the from field of s.
func replayConversion[U comparable](
	ctx context.Context, s screen.ConversionState[U], strategy screen.Strategy[U], value string,
) (screen.ConversionState[U], error) {
	s.Active = screen.FieldFrom
	store := screen.NewStore(s, func(cur screen.ConversionState[U], ev screen.Event) (screen.ConversionState[U], error) {
		return screen.Reduce(cur, ev, strategy)
	})
	defer store.Subscribe(func(next screen.ConversionState[U]) {
		logSnapshot(ctx, next, "")
	})()

	err := replayValue(value, strategy.AllowsSign(), func(ev screen.Event) error {
		if _, reduceErr := store.Dispatch(ev); reduceErr != nil {
			return &ConversionError{Message: reduceErr.Error()}
		}
		return nil
	})
	s = store.Snapshot()
	if err != nil {
		return s, err
	}
	if s.ToValue == "" {
		return s, &ConversionError{Message: fmt.Sprintf("cannot convert %q", value)}
	}
	return s, nil
}

// logSnapshot traces each published snapshot of a replayed conversion.
func logSnapshot[U comparable](ctx context.Context, s screen.ConversionState[U], errText string) {
	logging.FromContext(ctx).Trace().
		Str("component", "cli").
		Str("from", s.FromValue).
		Str("to", s.ToValue).
		Str("error", errText).
		Msg("snapshot")
}

// replayValue turns a number into keypad events: digits and "." in order,
// then the sign key for a leading "-".
func replayValue(value string, allowSign bool, apply func(screen.Event) error) error {
	digits, negative := strings.CutPrefix(strings.TrimSpace(value), "-")
	if negative && !allowSign {
		return &ConversionError{Message: fmt.Sprintf("negative values are not supported: %q", value)}
	}
	if _, ok := keypad.ParseNumber(digits); !ok {
		return &ConversionError{Message: fmt.Sprintf("invalid number %q", value)}
	}

	for _, r := range digits {
		var ev screen.Event
		switch {
		case r == '.':
			ev = screen.DecimalPressed{}
		case keypad.IsDigit(string(r)):
			ev = screen.DigitPressed{D: string(r)}
		default:
			return &ConversionError{Message: fmt.Sprintf("invalid number %q", value)}
		}
		if err := apply(ev); err != nil {
			return err
		}
	}
	if negative {
		return apply(screen.SignToggled{})
	}
	return nil
}

func printConversion(cmd *cobra.Command, fromValue, fromUnit, toValue, toUnit string) error {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(conversionResult{
			From: conversionSide{Value: fromValue, Unit: fromUnit},
			To:   conversionSide{Value: toValue, Unit: toUnit},
		})
	case outputText, "":
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", fromValue, fromUnit, toValue, toUnit)
		return err
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, outputText, outputJSON)
	}
}
