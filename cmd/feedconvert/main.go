package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"Pindexa/internal/feedbuild"
	"Pindexa/internal/logging"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: feedconvert [flags] [matched_predictions.csv] [predictions.json]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logging.New(*logLevel, "text")

	csvPath := "matched_predictions.csv"
	outPath := "public/data/predictions.json"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		outPath = flag.Arg(1)
	}

	if err := run(csvPath, outPath, logger); err != nil {
		logger.Error("feed conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(csvPath, outPath string, logger *slog.Logger) error {
	in, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open %s (run the prediction pipeline first): %w", csvPath, err)
	}
	defer in.Close()

	feed, err := feedbuild.Convert(in, time.Now())
	if err != nil {
		return fmt.Errorf("convert %s: %w", csvPath, err)
	}

	if err := feedbuild.WriteFile(outPath, feed); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("feed written", "predictions", feed.TotalPredictions, "path", outPath)
	return nil
}
