package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/squatwatch/squatwatch/pkg/config"
	"github.com/squatwatch/squatwatch/pkg/feed"
	"github.com/squatwatch/squatwatch/pkg/monitor"
	"github.com/squatwatch/squatwatch/pkg/notifier"
	"github.com/squatwatch/squatwatch/pkg/repository"
	"github.com/squatwatch/squatwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Email.UserID)

	log.Printf("[INFO] starting squatwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the persistence, feeds, monitor and server together and blocks
// until the context is canceled.
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	store, err := repository.NewStore(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	emailSvc := notifier.NewEmailService(notifier.EmailConfig{
		Endpoint:   cfg.Email.Endpoint,
		ServiceID:  cfg.Email.ServiceID,
		TemplateID: cfg.Email.TemplateID,
		UserID:     cfg.Email.UserID,
		Timeout:    cfg.Email.Timeout,
	})
	dispatcher := notifier.NewDispatcher(emailSvc, cfg.Email.AlertEmail)

	lookupClient := feed.NewLookupClient(cfg.Lookup.APIURL, cfg.Lookup.Timeout)

	mon := monitor.New(monitor.Params{
		Persister:  store,
		Lookuper:   lookupClient,
		Dispatcher: dispatcher,
	})
	if err := mon.Load(ctx); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	certStream := feed.NewCertStream(feed.CertStreamParams{
		URL:            cfg.CertStream.URL,
		ReconnectDelay: cfg.CertStream.ReconnectDelay,
		OnRecord:       mon.HandleRecord,
		OnStatus:       mon.HandleConnStatus,
	})

	srv := server.New(cfg, mon, revision, debug)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mon.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		certStream.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		return srv.Run(gCtx)
	})

	return g.Wait()
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := []string{}
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
