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

	"github.com/feedhaven/feedhaven/pkg/config"
	"github.com/feedhaven/feedhaven/pkg/content"
	"github.com/feedhaven/feedhaven/pkg/feed"
	"github.com/feedhaven/feedhaven/pkg/mail"
	"github.com/feedhaven/feedhaven/pkg/repository"
	"github.com/feedhaven/feedhaven/pkg/scheduler"
	"github.com/feedhaven/feedhaven/pkg/urlguard"
	"github.com/feedhaven/feedhaven/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"feedhaven.yml" description:"config file"`

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

	setupLog(opts.Debug)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config %s: %v", opts.Config, err)
		os.Exit(1)
	}

	// re-init logging with config-known secrets masked
	setupLog(opts.Debug, secrets(cfg)...)

	log.Printf("[INFO] starting feedhaven version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		cancel()
		log.Printf("[ERROR] feedhaven failed: %v", err)
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until ctx is cancelled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Printf("[WARN] failed to close database: %v", cerr)
		}
	}()

	guard := urlguard.New(cfg.Schedule.AllowPrivateNetworks)
	feedParser := feed.NewParser(guard, cfg.Schedule.FetchTimeout, cfg.Schedule.UserAgent)

	retention := time.Duration(cfg.Schedule.RetentionDays) * 24 * time.Hour
	processor := scheduler.NewFeedProcessor(repos.Feed, repos.Article, feedParser, retention)

	mailProcessor := mail.NewProcessor(repos.Feed, repos.Article, mail.NewSanitizer())
	mailService := mail.NewService(repos.Credential, mailProcessor, cfg.Mail.Timeout)

	sched := scheduler.NewScheduler(processor, repos.Feed, mailService, cfg.Schedule.UpdateInterval)

	var enricher server.Enricher
	if cfg.Extraction.Enabled {
		extractor := content.NewHTTPExtractor(guard, cfg.Extraction.Timeout)
		var summarizer content.ArticleSummarizer
		if cfg.LLM.Enabled {
			summarizer = content.NewSummarizer(cfg.GetLLMConfig())
		}
		enricher = content.NewEnricher(repos.Article, extractor, summarizer)
		log.Printf("[INFO] content extraction enabled, summaries: %v", cfg.LLM.Enabled)
	}

	srv := server.New(cfg, sched, repos.Folder, repos.Feed, repos.Article, mailService, enricher, revision, debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	return g.Wait()
}

// secrets collects config values that must never appear in logs
func secrets(cfg *config.Config) []string {
	var secs []string
	if cfg.Server.AuthPass != "" {
		secs = append(secs, cfg.Server.AuthPass)
	}
	if cfg.LLM.APIKey != "" {
		secs = append(secs, cfg.LLM.APIKey)
	}
	return secs
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
