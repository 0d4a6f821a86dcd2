package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/selivandex/stock-sentiment/internal/adapters/config"
	"github.com/selivandex/stock-sentiment/pkg/logger"
)

const usage = `Usage: sentiment <command> [flags]

Commands:
  analyze    score headlines, rank keywords and aggregate daily sentiment
  describe   headline length, publisher, weekday, time and domain statistics
  trends     annual and quarterly publication trends with decomposition
  dashboard  chart one indicator for one stock
  stocks     list the stocks in the price table

Run "sentiment <command> -h" for command flags.
`

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		fmt.Fprint(os.Stderr, usage)
		if len(args) == 0 {
			return errors.New("no command given")
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	app := &app{cfg: cfg, out: os.Stdout}

	switch args[0] {
	case "analyze":
		return app.analyze(ctx, args[1:])
	case "describe":
		return app.describe(args[1:])
	case "trends":
		return app.trends(args[1:])
	case "dashboard":
		return app.dashboard(ctx, args[1:])
	case "stocks":
		return app.stocks(args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
