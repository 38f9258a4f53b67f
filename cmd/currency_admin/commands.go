package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/currency_admin/internal/adapters/notify"
	"github.com/SscSPs/currency_admin/internal/core/admin"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/SscSPs/currency_admin/internal/utils"
	"github.com/spf13/pflag"
)

// errUsage reports a malformed command line. The message has already been
// printed.
var errUsage = errors.New("usage error")

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "list", summary: "show the currency table", run: (*app).list},
	{name: "stats", summary: "show currency totals and key rates", run: (*app).stats},
	{name: "rates", summary: "show the exchange rate history", run: (*app).rates},
	{name: "export", summary: "write the currency table as CSV", run: (*app).export},
	{name: "create", summary: "add a currency", run: (*app).create},
	{name: "update", summary: "change fields of a currency", run: (*app).update},
	{name: "toggle", summary: "activate or deactivate a currency", run: (*app).toggle},
	{name: "delete", summary: "delete a currency after confirmation", run: (*app).delete},
	{name: "refresh-rates", summary: "record today's rates in the store", run: (*app).refreshRates},
}

// draftFlags maps command line flags to draft fields.
var draftFlags = map[string]string{
	"code":   admin.FieldCode,
	"name":   admin.FieldName,
	"symbol": admin.FieldSymbol,
	"rate":   admin.FieldExchangeRateToUSD,
	"base":   admin.FieldIsBaseCurrency,
	"active": admin.FieldIsActive,
}

type app struct {
	console *admin.Console
	logger  *slog.Logger
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
}

func newApp(store admin.CurrencyStore, logger *slog.Logger, timeout time.Duration, in io.Reader, out, errOut io.Writer) *app {
	notifier := notify.NewTerminal(out, logger)
	return &app{
		console: admin.NewConsole(store, notifier, admin.WithTimeout(timeout), admin.WithLogger(logger)),
		logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(a, ctx, args[1:])
		}
	}
	fmt.Fprintf(a.errOut, "unknown command %q, run currency_admin --help for the list\n", args[0])
	return errUsage
}

func (a *app) flagSet(name, args string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "Usage: currency_admin %s %s\n", name, args)
		fmt.Fprint(a.errOut, fs.FlagUsages())
	}
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

// currencyArg loads the collection and resolves the single id argument.
func (a *app) currencyArg(ctx context.Context, fs *pflag.FlagSet) (domain.Currency, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return domain.Currency{}, errUsage
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.errOut, "invalid currency id %q\n", fs.Arg(0))
		return domain.Currency{}, errUsage
	}
	if err := a.console.Collection.Load(ctx); err != nil {
		return domain.Currency{}, err
	}
	c, ok := a.console.Collection.Currency(id)
	if !ok {
		return domain.Currency{}, fmt.Errorf("currency %d not found", id)
	}
	return c, nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := a.flagSet("list", "[--active]")
	activeOnly := fs.Bool("active", false, "only active currencies")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if err := a.console.Collection.Load(ctx); err != nil {
		return err
	}

	currencies := a.console.Collection.Snapshot().Currencies
	if *activeOnly {
		active := currencies[:0]
		for _, c := range currencies {
			if c.IsActive {
				active = append(active, c)
			}
		}
		currencies = active
	}
	if len(currencies) == 0 {
		fmt.Fprintln(a.out, "No currencies found.")
		return nil
	}
	return a.printTable(currencyTable(currencies))
}

func (a *app) stats(ctx context.Context, args []string) error {
	fs := a.flagSet("stats", "")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if err := a.console.Collection.Load(ctx); err != nil {
		return err
	}

	stats := a.console.Collection.Stats()
	return a.printTable([][]string{
		{"Total Currencies", strconv.Itoa(stats.Total)},
		{"Active Currencies", strconv.Itoa(stats.Active)},
		{"ZWL Rate", stats.ZWLRate.String()},
		{"USD Rate", stats.USDRate.String()},
	})
}

func (a *app) rates(ctx context.Context, args []string) error {
	fs := a.flagSet("rates", "[--limit n]")
	limit := fs.Int("limit", 0, "show at most n observations (0 for all)")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if err := a.console.Collection.Load(ctx); err != nil {
		return err
	}

	snap := a.console.Collection.Snapshot()
	rates := snap.ExchangeRates
	if *limit > 0 && len(rates) > *limit {
		rates = rates[:*limit]
	}
	if len(rates) == 0 {
		fmt.Fprintln(a.out, "No exchange rates recorded.")
		return nil
	}

	codes := make(map[int64]string, len(snap.Currencies))
	for _, c := range snap.Currencies {
		codes[c.ID] = c.Code
	}
	code := func(id int64) string {
		if c, ok := codes[id]; ok {
			return c
		}
		return "#" + strconv.FormatInt(id, 10)
	}

	rows := [][]string{{"ID", "From", "To", "Rate", "Date", "Source"}}
	for _, r := range rates {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			code(r.FromCurrency),
			code(r.ToCurrency),
			utils.FormatWithPrecision(r.Rate, 6),
			r.Date.Format(time.DateOnly),
			r.Source,
		})
	}
	return a.printTable(rows)
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := a.flagSet("export", "[--out file.csv]")
	out := fs.StringP("out", "o", "currencies.csv", `destination file, "-" for standard output`)
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if err := a.console.Collection.Load(ctx); err != nil {
		return err
	}
	currencies := a.console.Collection.Snapshot().Currencies

	w := a.out
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(currencyTable(currencies)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if *out != "-" {
		fmt.Fprintf(a.out, "Exported %d currencies to %s\n", len(currencies), *out)
	}
	return nil
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := a.flagSet("create", "--code XXX --name NAME --symbol SYM [--rate 1.0] [--base] [--active=false]")
	fs.String("code", "", "three letter ISO code")
	fs.String("name", "", "display name")
	fs.String("symbol", "", "currency symbol")
	fs.String("rate", "1.0", "exchange rate to USD")
	fs.Bool("base", false, "mark as the base currency")
	fs.Bool("active", true, "currency is active")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errUsage
	}

	a.console.Draft.OpenForCreate()
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = a.setDraftField(f)
		}
	})
	if err != nil {
		a.console.Draft.Cancel()
		return err
	}
	return a.submitDraft(ctx)
}

func (a *app) update(ctx context.Context, args []string) error {
	fs := a.flagSet("update", "<id> [--code XXX] [--name NAME] [--symbol SYM] [--rate R] [--base=bool] [--active=bool]")
	fs.String("code", "", "three letter ISO code")
	fs.String("name", "", "display name")
	fs.String("symbol", "", "currency symbol")
	fs.String("rate", "", "exchange rate to USD")
	fs.Bool("base", false, "mark as the base currency")
	fs.Bool("active", true, "currency is active")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if fs.NFlag() == 0 {
		fmt.Fprintln(a.errOut, "nothing to update, pass at least one field flag")
		return errUsage
	}
	current, err := a.currencyArg(ctx, fs)
	if err != nil {
		return err
	}

	a.console.Draft.OpenForEdit(current)
	fs.Visit(func(f *pflag.Flag) {
		if err == nil {
			err = a.setDraftField(f)
		}
	})
	if err != nil {
		a.console.Draft.Cancel()
		return err
	}
	return a.submitDraft(ctx)
}

func (a *app) toggle(ctx context.Context, args []string) error {
	fs := a.flagSet("toggle", "<id>")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	current, err := a.currencyArg(ctx, fs)
	if err != nil {
		return err
	}
	return a.console.Lifecycle.ToggleActive(ctx, current.ID, current.IsActive)
}

func (a *app) delete(ctx context.Context, args []string) error {
	fs := a.flagSet("delete", "<id> [--yes]")
	yes := fs.BoolP("yes", "y", false, "do not ask for confirmation")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	current, err := a.currencyArg(ctx, fs)
	if err != nil {
		return err
	}

	a.console.Lifecycle.RequestDelete(current.ID)
	if !*yes && !a.confirm(fmt.Sprintf("Delete %s? This cannot be undone.", utils.FormatCurrencyLabel(current))) {
		a.console.Lifecycle.CancelDelete()
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}
	return a.console.Lifecycle.ConfirmDelete(ctx)
}

func (a *app) refreshRates(ctx context.Context, args []string) error {
	fs := a.flagSet("refresh-rates", "")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	err := a.console.Rates.Trigger(ctx)
	if status := a.console.Rates.Status(); status.Stuck {
		fmt.Fprintf(a.errOut, "The store did not answer within the timeout (last at %s); the refresh may still complete.\n",
			utils.FormatLocalTime(status.LastTimeout))
	}
	return err
}

// setDraftField copies one flag into the open draft. Codes are typed in any
// case and stored upper-case.
func (a *app) setDraftField(f *pflag.Flag) error {
	field, value := draftFlags[f.Name], f.Value.String()
	if field == admin.FieldCode {
		value = strings.ToUpper(strings.TrimSpace(value))
	}
	return a.console.Draft.UpdateField(field, value)
}

func (a *app) submitDraft(ctx context.Context) error {
	err := a.console.Draft.Submit(ctx)
	var verr *admin.ValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Violations))
		for field := range verr.Violations {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		fmt.Fprintln(a.errOut, "The currency is invalid:")
		for _, field := range fields {
			fmt.Fprintf(a.errOut, "  %s: %s\n", field, verr.Violations[field])
		}
	}
	return err
}

// confirm asks a yes/no question on the terminal. Anything but y or yes,
// including end of input, is a no.
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(a.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *app) printTable(rows [][]string) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// currencyTable renders the currency columns with a leading ID column, header
// row first.
func currencyTable(currencies []domain.Currency) [][]string {
	rows := make([][]string, 0, len(currencies)+1)
	rows = append(rows, append([]string{"ID"}, admin.Headers(admin.CurrencyColumns)...))
	for i, row := range admin.RenderRows(admin.CurrencyColumns, currencies) {
		rows = append(rows, append([]string{strconv.FormatInt(currencies[i].ID, 10)}, row...))
	}
	return rows
}

func ignoreHelp(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}
