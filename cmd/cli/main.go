package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"powergas-profit/internal/compare"
	"powergas-profit/internal/config"
	"powergas-profit/internal/profit"
	"powergas-profit/internal/report"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "trip":
		cmdTrip(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli trip --config examples/config.yaml")
	fmt.Println("  cli compare --scenarios examples/scenarios.yaml --out results/comparison.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - trip computes the profit breakdown for one delivery trip")
	fmt.Println("  - compare ranks what-if sourcing scenarios and names the dominant cost driver")
}

func cmdTrip(args []string) {
	fs := flag.NewFlagSet("trip", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML trip config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	trip, err := cfg.Trip.ToModel()
	if err != nil {
		fatal(err)
	}
	res, err := profit.Compute(trip)
	if err != nil {
		fatal(err)
	}

	fmt.Print(report.RenderTrip(res))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	scenariosPath := fs.String("scenarios", "", "Path to YAML scenarios file")
	outPath := fs.String("out", "", "Optional output CSV path for the ranked table")
	reportPath := fs.String("report", "", "Optional path to also write the text report")
	lenient := fs.Bool("lenient", false, "Skip invalid scenarios instead of rejecting the batch")
	verbose := fs.Bool("v", false, "Verbose logging")
	_ = fs.Parse(args)

	if *scenariosPath == "" {
		fmt.Println("--scenarios is required")
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer l.Sync()
		logger = l
	}

	entries, err := config.LoadScenarios(*scenariosPath)
	if err != nil {
		fatal(err)
	}

	rep, err := compare.Compare(logger, entries, compare.Options{Lenient: *lenient})
	if err != nil {
		fatal(err)
	}

	text := report.RenderComparison(rep, time.Now())
	fmt.Print(text)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := report.WriteRankedCSV(*outPath, rep); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rep.Ranked), *outPath)
	}
	if *reportPath != "" {
		if err := os.MkdirAll(filepath.Dir(*reportPath), 0o755); err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*reportPath, []byte(text), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("Report saved to: %s\n", *reportPath)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
