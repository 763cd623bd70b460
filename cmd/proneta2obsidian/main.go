package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SemonoffArt/proneta2obsidian/pkg/config"
	"github.com/SemonoffArt/proneta2obsidian/pkg/convert"
)

// settleDelay lets PRONETA finish writing before a watched export is
// reconverted; saves arrive as bursts of filesystem events.
const settleDelay = 500 * time.Millisecond

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file")
		input      = flag.String("input", "", "PRONETA XML export (overrides config and probed paths)")
		output     = flag.String("output", "", "Vault output directory (overrides config)")
		reportPath = flag.String("report", "", "Write a JSON run report to this path")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error")
		dryRun     = flag.Bool("dry-run", false, "Render notes without writing anything")
		legacySeps = flag.Bool("legacy-separators", false, "Delete separator markers instead of replacing them with underscores")
		watch      = flag.Bool("watch", false, "Keep running and reconvert whenever the export changes")
		quiet      = flag.Bool("quiet", false, "Skip the console summary")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *reportPath != "" {
		cfg.ReportPath = *reportPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *legacySeps {
		cfg.Naming.DropSeparators = true
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr as JSON; stdout stays free for the summary.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	inputPath, err := cfg.ResolveInput()
	if err != nil {
		logger.Error("no input export", "error", err)
		os.Exit(1)
	}

	conv := convert.New(convert.Options{
		Input:     inputPath,
		OutputDir: cfg.OutputDir,
		DryRun:    *dryRun,
		Naming:    cfg.Naming,
	}, logger)

	runOnce := func() bool {
		rep, err := conv.Run()
		if err != nil {
			logger.Error("conversion failed", "error", err)
			return false
		}
		if cfg.ReportPath != "" {
			if err := rep.Save(cfg.ReportPath); err != nil {
				logger.Error("report not saved", "path", cfg.ReportPath, "error", err)
			}
		}
		if !*quiet {
			rep.RenderConsole(os.Stdout)
		}
		return true
	}

	if !*watch {
		if !runOnce() {
			os.Exit(1)
		}
		return
	}

	// In watch mode a failed run is not fatal; the next save of the
	// export gets another attempt.
	runOnce()
	if err := watchLoop(inputPath, logger, func() { runOnce() }); err != nil {
		logger.Error("watch failed", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// watchLoop reconverts on every settled change of the export file
// until an interrupt arrives. The parent directory is watched because
// PRONETA and most editors replace the file on save, which drops
// watches held on the file itself.
func watchLoop(inputPath string, logger *slog.Logger, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	target := filepath.Clean(inputPath)
	var settle <-chan time.Time

	logger.Info("watching export", "input", inputPath)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			settle = time.After(settleDelay)
		case <-settle:
			settle = nil
			logger.Info("export changed, reconverting", "input", inputPath)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-sig:
			logger.Info("stopping watch")
			return nil
		}
	}
}
