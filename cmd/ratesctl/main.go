// Command ratesctl reads rates from a running fx_backend through the client
// rate cache.
//
//	ratesctl rates   --base EUR
//	ratesctl convert --from EUR --to USD --amount 12.5
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/fx_wallet_backend/pkg/ratecache"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

const usage = `Usage: ratesctl <command> [flags]

Commands:
  rates     list the rates for a base currency
  convert   convert an amount between two currencies

Run "ratesctl <command> --help" for command flags.
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "ratesctl:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("a command is required")
	}

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	server := fs.String("server", envOr("FX_SERVER_URL", "http://localhost:8080"), "fx_backend base URL")
	timeout := fs.Duration("timeout", 10*time.Second, "HTTP timeout")

	newCache := func() *ratecache.Cache {
		return ratecache.New(ratecache.NewHTTPFetcher(*server, *timeout))
	}

	switch cmd {
	case "rates":
		base := fs.StringP("base", "b", "EUR", "base currency")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		rates, err := newCache().Get(ctx, *base)
		if err != nil {
			return err
		}
		return printRates(out, rates)

	case "convert":
		from := fs.StringP("from", "f", "", "source currency")
		to := fs.StringP("to", "t", "", "target currency")
		amount := fs.StringP("amount", "a", "1", "amount to convert")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *from == "" || *to == "" {
			return errors.New("convert requires --from and --to")
		}
		qty, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("invalid --amount %q: %w", *amount, err)
		}
		return convert(ctx, newCache(), out, *from, *to, qty)

	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil

	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printRates(out io.Writer, rates []ratecache.Rate) error {
	sorted := append([]ratecache.Rate(nil), rates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TargetCurrency < sorted[j].TargetCurrency })

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tRATE\tUPDATED")
	for _, r := range sorted {
		fmt.Fprintf(tw, "%s/%s\t%s\t%s\n", r.BaseCurrency, r.TargetCurrency, r.Rate.String(), r.LastUpdated.Format(time.RFC3339))
	}
	return tw.Flush()
}

// convert prices from the base currency's row set. Informational only.
func convert(ctx context.Context, cache *ratecache.Cache, out io.Writer, from, to string, amount decimal.Decimal) error {
	rates, err := cache.Get(ctx, from)
	if err != nil {
		return err
	}
	r, ok := ratecache.Lookup(rates, to)
	if !ok {
		return fmt.Errorf("no rate from %s to %s", from, to)
	}
	fmt.Fprintf(out, "1 %s = %s %s\n", r.BaseCurrency, r.Rate.String(), r.TargetCurrency)
	fmt.Fprintf(out, "%s %s = %s %s\n", amount.String(), r.BaseCurrency, amount.Mul(r.Rate).Round(4).String(), r.TargetCurrency)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
