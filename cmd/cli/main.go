package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seo_url_checker/internal/adaptors"
	"seo_url_checker/internal/domain/models"
	"seo_url_checker/internal/ioformats"
	"seo_url_checker/internal/service"
)

type options struct {
	url         string
	input       string
	output      string
	format      string
	timeout     time.Duration
	concurrency int
	verbose     bool

	titleMin       int
	titleMax       int
	descMin        int
	descMax        int
	canonicalExact bool
}

var opts options

// exitCode reflects the worst overall verdict: 0 ok, 1 warn, 2 fail.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "seocheck [flags]",
	Short: "Check on-page SEO signals for one or many URLs",
	Long: `seocheck fetches each URL and grades a fixed set of on-page SEO
signals: HTTP status, canonical self-reference, robots directives, and meta
title/description length. Bulk input is a CSV with a url, link, or links
column; rows are analyzed concurrently and reported in input order.`,
	Example: `  seocheck -u https://example.com
  seocheck -i urls.csv -o results.csv
  seocheck -i urls.csv --format ndjson -o -
  seocheck -u example.com --timeout 5s --title-min 20`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if opts.url == "" && opts.input == "" {
			return fmt.Errorf("target required: use -u or -i")
		}
		if opts.url != "" && opts.input != "" {
			return fmt.Errorf("-u and -i are mutually exclusive")
		}
		if opts.format != "csv" && opts.format != "ndjson" {
			return fmt.Errorf("--format must be one of: csv, ndjson")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	f.StringVarP(&opts.url, "url", "u", "", "Single URL to analyze")
	f.StringVarP(&opts.input, "input", "i", "", "CSV file with a url/link/links column")
	f.StringVarP(&opts.output, "output", "o", "-", "Output file (- for stdout)")
	f.StringVar(&opts.format, "format", "csv", "Output format: csv or ndjson")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-URL fetch timeout")
	f.IntVarP(&opts.concurrency, "concurrency", "c", 8, "Concurrent analyses in bulk mode")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	f.IntVar(&opts.titleMin, "title-min", 30, "Minimum recommended title length")
	f.IntVar(&opts.titleMax, "title-max", 60, "Maximum recommended title length")
	f.IntVar(&opts.descMin, "desc-min", 70, "Minimum recommended description length")
	f.IntVar(&opts.descMax, "desc-max", 160, "Maximum recommended description length")
	f.BoolVar(&opts.canonicalExact, "canonical-exact", false, "Compare canonical URLs by exact string instead of normalized equality")
}

func run(ctx context.Context) error {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	urls := []string{opts.url}
	if opts.input != "" {
		var err error
		urls, err = ioformats.ReadURLsFromFile(opts.input)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	thresholds := service.Thresholds{
		TitleMin:       opts.titleMin,
		TitleMax:       opts.titleMax,
		DescriptionMin: opts.descMin,
		DescriptionMax: opts.descMax,
		CanonicalExact: opts.canonicalExact,
	}
	analyzer := service.NewAnalyzer(logger, adaptors.NewWebClient(opts.timeout, logger), thresholds)
	runner := service.NewBulkRunner(logger, analyzer, opts.concurrency)

	result := runner.Run(ctx, urls)

	if err := writeResult(result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d analyzed: %d ok, %d warn, %d fail\n",
		result.Summary.Total, result.Summary.OK, result.Summary.Warn, result.Summary.Fail)

	switch {
	case result.Summary.Fail > 0:
		exitCode = 2
	case result.Summary.Warn > 0:
		exitCode = 1
	}
	return nil
}

func writeResult(result *models.BulkResult) error {
	var w io.Writer = os.Stdout
	if opts.output != "-" && opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if opts.format == "ndjson" {
		return ioformats.WriteNDJSON(w, result)
	}
	return ioformats.WriteCSV(w, result)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(3)
	}
	os.Exit(exitCode)
}
