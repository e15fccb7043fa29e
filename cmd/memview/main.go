// Package main is the entry point for the memview inspection tool.
//
// It builds a memory view over a chunked input file (or a built-in
// sample), optionally discards bytes from the front, and writes a
// requested range, or everything that remains, to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AdrianWangs/memview/config"
	"github.com/AdrianWangs/memview/internal/chunker"
	"github.com/AdrianWangs/memview/pkg/logger"
	"github.com/AdrianWangs/memview/pkg/memview"
)

func main() {
	// Parse command line flags
	var (
		configFile string
		input      string
		segBytes   int
		discard    uint64
		offset     uint64
		length     int64
		logLevel   string
	)

	flag.StringVar(&configFile, "config", "", "Path to config file")
	flag.StringVar(&input, "input", "", "Input file to view (built-in sample if empty)")
	flag.IntVar(&segBytes, "segment", 0, "Segment size in bytes (overrides config)")
	flag.Uint64Var(&discard, "discard", 0, "Bytes to discard from the front")
	flag.Uint64Var(&offset, "offset", 0, "Logical offset to read from")
	flag.Int64Var(&length, "length", -1, "Bytes to read (-1 for everything remaining)")
	flag.StringVar(&logLevel, "log", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	if configFile != "" {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.LoadFromEnv()
	}

	// Override with command line flags if provided
	if segBytes != 0 {
		cfg.SegmentBytes = segBytes
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Initialize logger
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		logger.UseJSONFormat()
	}

	if err := run(cfg, input, discard, offset, length); err != nil {
		logger.WithError(err).Error("memview failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, input string, discard, offset uint64, length int64) error {
	segs, err := loadSegments(cfg, input)
	if err != nil {
		return err
	}

	view, err := memview.New(segs...)
	if err != nil {
		return err
	}
	defer view.Release()

	logger.WithFields(logger.Fields{
		"segments": view.NumSegments(),
		"bytes":    view.Size(),
	}).Info("view built")

	if discard > 0 {
		view.DiscardFront(discard)
		logger.Infof("discarded %d bytes from the front, %d remaining",
			discard, view.Size())
	}

	if offset > view.Size() {
		return fmt.Errorf("offset %d past end of %d-byte view", offset, view.Size())
	}

	if length < 0 {
		// Stream everything remaining straight from the segments.
		reader := memview.NewReader(view)
		if _, err := reader.Seek(int64(offset), io.SeekStart); err != nil {
			return err
		}
		n, err := reader.WriteTo(os.Stdout)
		logger.Debugf("streamed %d bytes", n)
		return err
	}

	buf := make([]byte, length)
	if err := view.ReadAt(offset, buf); err != nil {
		return err
	}
	_, err = os.Stdout.Write(buf)
	return err
}

func loadSegments(cfg *config.Config, input string) ([]memview.Segment, error) {
	if input != "" {
		return chunker.ReadFileSegments(input, cfg.SegmentBytes)
	}

	// Built-in sample: three discontiguous buffers exposed as one
	// 11-byte address space.
	return []memview.Segment{
		memview.StringSegment("hello"),
		memview.StringSegment("world"),
		memview.StringSegment("!"),
	}, nil
}
