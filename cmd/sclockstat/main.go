package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/hiroyaonoe/sclockstat/pkg/log"
	"github.com/hiroyaonoe/sclockstat/pkg/sclockstat"
	"github.com/hiroyaonoe/sclockstat/pkg/version"
	"golang.org/x/sys/unix"
)

func main() {
	unix.Umask(0o077) // https://github.com/golang/go/issues/11822#issuecomment-123850227

	var (
		versionFlag bool
		helpFlag    bool
		logLevelStr string
		logSource   bool
		headerStr   string
		outputPath  string
		failFast    bool
	)
	flag.BoolVar(&versionFlag, "version", false, "Print the version")
	flag.BoolVar(&helpFlag, "help", false, "Print help information")
	flag.StringVar(&logLevelStr, "log-level", "info", "Set the log level (debug, info, warn, error)")
	flag.BoolVar(&logSource, "log-source", false, "Include source information in log output")
	flag.StringVar(&headerStr, "header", "auto", "Column header that ends the log prelude (auto, legacy, elapsed)")
	flag.StringVar(&outputPath, "output", "", "Write the CSV report to this file instead of stdout")
	flag.BoolVar(&failFast, "fail-fast", false, "Stop at the first log file that fails")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if versionFlag {
		fmt.Println(version.Version)
		os.Exit(0)
	}

	if helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var logLevel slog.Level
	switch logLevelStr {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	format, err := sclockstat.ParseHeaderFormat(headerStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one log directory is needed")
		flag.Usage()
		os.Exit(2)
	}

	opts := sclockstat.Options{Format: format, FailFast: failFast}
	os.Exit(run(logLevel, logSource, flag.Arg(0), outputPath, opts))
}

func run(logLevel slog.Level, logSource bool, dir, outputPath string, opts sclockstat.Options) int {
	// stdout carries the report, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: logSource,
		Level:     logLevel,
	}))
	slog.SetDefault(logger)
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = log.ContextWithLogger(ctx, logger)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)
	go func() {
		select {
		case <-quit:
			logger.InfoContext(ctx, "Received signal, stopping after current file")
			cancel()
		case <-ctx.Done():
		}
	}()

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.ErrorContext(ctx, "Cannot create output file", "path", outputPath, "error", err)
			return 1
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.ErrorContext(ctx, "Cannot close output file", "path", outputPath, "error", err)
			}
		}()
		out = f
	}

	logger.DebugContext(ctx, "Starting aggregation", "version", version.Version, "dir", dir, "header", opts.Format.String(), "failFast", opts.FailFast)
	if _, err := sclockstat.NewAggregator(out, opts).Run(ctx, dir); err != nil {
		logger.ErrorContext(ctx, "Aggregation finished with errors", "error", err)
		return 1
	}
	return 0
}
