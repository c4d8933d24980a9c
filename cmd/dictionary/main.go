package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/miajio/dict/pkg/config"
	"github.com/miajio/dict/pkg/dictionary"
	"github.com/miajio/dict/pkg/logger"
	"github.com/miajio/dict/pkg/menu"
	"github.com/miajio/dict/pkg/metrics"
	"github.com/miajio/dict/pkg/participle"
	"github.com/miajio/dict/pkg/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	explain := flag.String("explain", "", "explain the dictionary words in a sentence and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog := openLogFile(cfg.Logging.File)
	defer closeLog()
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, logOut)
	log := logger.WithComponent("dictionary")

	st, err := openStore(cfg.Storage)
	if err != nil {
		log.Error("failed to open store", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "error", err)
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}

	m := metrics.New()
	opts := []dictionary.Option{
		dictionary.WithRecorder(dictionary.MultiRecorder(logger.NewRecorder(log), m)),
	}
	if cfg.Segment.Enabled || *explain != "" {
		seg, err := participle.New()
		if err != nil {
			log.Error("failed to init segmenter", "error", err)
		} else {
			opts = append(opts, dictionary.WithSegmenter(seg))
		}
	}

	engine := dictionary.New(st, opts...)
	defer func() {
		if err := engine.Close(); err != nil {
			log.Error("failed to close store", "error", err)
		}
		if cfg.Metrics.Textfile != "" {
			if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				log.Error("failed to write metrics", "path", cfg.Metrics.Textfile, "error", err)
			}
		}
	}()

	n := engine.Load()
	log.Info("dictionary ready", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "words", n)

	if *explain != "" {
		for _, entry := range engine.Explain(*explain) {
			fmt.Println(dictionary.FormatLine(entry.Word, entry.Meaning))
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		fmt.Printf("Loaded %d words.\n\n", n)
		done <- menu.New(engine, os.Stdin, os.Stdout).Run()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		log.Info("interrupted, saving dictionary")
		err = engine.Save()
	}
	if err != nil {
		log.Error("dictionary not saved", "error", err)
	}
	log.Info("dictionary stopped")
}

func openStore(cfg config.StorageConfig) (dictionary.Store, error) {
	switch cfg.Driver {
	case config.DriverBadger:
		return store.OpenBadger(cfg.Path, cfg.GCInterval)
	default:
		return store.NewFile(cfg.Path), nil
	}
}

// openLogFile 日志写入文件，打开失败时退回标准错误
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}
