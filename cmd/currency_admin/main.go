// Command currency_admin is the operator console for the currency store.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/currency_admin/internal/adapters/restclient"
	"github.com/SscSPs/currency_admin/internal/platform/config"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadAdminConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		return 1
	}

	global := pflag.NewFlagSet("currency_admin", pflag.ContinueOnError)
	global.SetInterspersed(false)
	apiURL := global.String("api-url", cfg.APIURL, "currency store API root")
	timeout := global.Duration("timeout", cfg.RequestTimeout, "how long to wait for each store call")
	verbose := global.BoolP("verbose", "v", false, "log at debug level")
	global.Usage = func() { printUsage(os.Stderr, global) }
	if err := global.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	client := restclient.New(*apiURL,
		restclient.WithTokenSource(tokenSource(cfg)),
		restclient.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(client, logger, *timeout, os.Stdin, os.Stdout, os.Stderr)
	err = a.run(ctx, global.Args())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		if len(global.Args()) == 0 {
			printUsage(os.Stderr, global)
		}
		return 2
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
}

// tokenSource prefers a pre-issued token and otherwise mints one with the
// store's shared secret.
func tokenSource(cfg *config.AdminConfig) restclient.TokenSource {
	if cfg.APIToken != "" {
		return restclient.StaticToken(cfg.APIToken)
	}
	return restclient.NewJWTSource(cfg.JWTSecret, cfg.JWTIssuer, cfg.AdminSubject, 0)
}

func printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: currency_admin [global flags] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-14s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fmt.Fprint(w, global.FlagUsages())
}
