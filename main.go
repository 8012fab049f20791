package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ip-geo-lookup/logger"
	"ip-geo-lookup/lookup"
	"ip-geo-lookup/metrics"
	"ip-geo-lookup/models"
	"ip-geo-lookup/router"
	"ip-geo-lookup/tui"
	"ip-geo-lookup/ui"

	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		apiURL      = flag.String("api-url", "", "Base URL of the lookup service (overrides LOOKUP_API_URL)")
		timeout     = flag.Duration("timeout", models.DefaultConfig.RequestTimeout, "Timeout for a single lookup request")
		logFile     = flag.String("log-file", models.DefaultConfig.LogFile, "Path to the log file")
		logLevel    = flag.String("log-level", models.DefaultConfig.LogLevel, "Log level (debug, info, warn, error)")
		metricsAddr = flag.String("metrics-addr", "", "Serve /metrics and /health on this address (disabled when empty)")
		help        = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		ui.PrintBanner(os.Stderr)
		fmt.Fprintf(os.Stderr, "Type an IPv4 or IPv6 address and press enter to look up its location.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg, err := models.LoadConfig()
	if err != nil {
		ui.PrintStartupError(os.Stderr, err)
		os.Exit(1)
	}

	// Explicit flags win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api-url":
			cfg.APIBaseURL = *apiURL
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	cfg.RequestTimeout = *timeout
	cfg.LogFile = *logFile
	cfg.LogLevel = *logLevel

	if err := cfg.Validate(); err != nil {
		ui.PrintStartupError(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		ui.PrintStartupError(os.Stderr, err)
		os.Exit(1)
	}

	ui.PrintSessionEnd(os.Stdout, cfg)
}

func run(cfg *models.Config) error {
	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info().
		Str("endpoint", cfg.LookupURL()).
		Dur("timeout", cfg.RequestTimeout).
		Str("metrics_addr", cfg.MetricsAddr).
		Msg("Starting IP geo lookup")

	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *router.Server
	if cfg.MetricsAddr != "" {
		srv, err = router.Listen(cfg.MetricsAddr, router.SetupRouter(m, log), log.WithComponent("metrics-server"))
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	formCtx, closeForm := context.WithCancel(gctx)

	if srv != nil {
		g.Go(func() error {
			return srv.Serve(formCtx)
		})
	}

	g.Go(func() error {
		// Leaving the form stops the metrics server too
		defer closeForm()
		return tui.Run(formCtx, tui.Options{
			Client:   lookup.NewClient(cfg, log),
			Endpoint: cfg.LookupURL(),
			Metrics:  m,
			Logger:   log,
		})
	})

	start := time.Now()
	err = g.Wait()
	closeForm()

	if err != nil {
		log.Error().Err(err).Msg("Session ended with error")
		return err
	}

	log.Info().Dur("uptime", time.Since(start)).Msg("Session ended")
	return nil
}
