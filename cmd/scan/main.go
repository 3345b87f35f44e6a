package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ossf/sourcerisk/internal/config"
	"github.com/ossf/sourcerisk/internal/featureflags"
	"github.com/ossf/sourcerisk/internal/log"
	"github.com/ossf/sourcerisk/internal/resultstore"
	"github.com/ossf/sourcerisk/internal/staticanalysis"
	"github.com/ossf/sourcerisk/internal/staticanalysis/probes"
	"github.com/ossf/sourcerisk/internal/utils"
	api "github.com/ossf/sourcerisk/pkg/api/staticanalysis"
	"github.com/ossf/sourcerisk/pkg/pkgidentifier"
)

var (
	configFile   = flag.String("config", "", "YAML config file (default "+config.DefaultFile+" if it exists)")
	purl         = flag.String("package", "", "package URL of the scanned package, e.g. pkg:npm/left-pad@1.3.0")
	upload       = flag.String("upload", "", "bucket URL for uploading scan results")
	features     = flag.String("features", "", "override features that are enabled/disabled by default")
	listFeatures = flag.Bool("list-features", false, "list available features that can be toggled")
	listProbes   = flag.Bool("list-probes", false, "list the probes run on each literal")
	concurrency  = flag.Int("concurrency", 0, "maximum number of files scanned at once")
	jsonOutput   = flag.Bool("json", false, "print the scan record as JSON")
	help         = flag.Bool("help", false, "print help on available options")
	extensions   = utils.CommaSeparatedFlags("extensions", nil,
		"file extensions to scan, separated by commas (default "+fmt.Sprint(staticanalysis.DefaultExtensions)+")")
	exclude = utils.CommaSeparatedFlags("exclude", nil,
		"glob patterns of files and directories to skip, separated by commas")
)

func printFeatureFlags(w io.Writer) {
	fmt.Fprintf(w, "Feature List\n\n")
	fmt.Fprintf(w, "%-30s %s\n", "Name", "Default")
	fmt.Fprintf(w, "----------------------------------------\n")

	// print features in sorted order
	state := featureflags.State()
	sortedFeatures := maps.Keys(state)
	slices.Sort(sortedFeatures)

	// print Off/On rather than 'false' and 'true'
	stateStrings := map[bool]string{false: "Off", true: "On"}
	for _, feature := range sortedFeatures {
		fmt.Fprintf(w, "%-30s %s\n", feature, stateStrings[state[feature]])
	}
	fmt.Fprintln(w)
}

func printProbes(w io.Writer, runner *probes.Runner) {
	fmt.Fprintln(w, "Probes:")
	for _, name := range runner.Names() {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, record *api.Record) {
	for _, f := range record.Results.Files {
		for _, warning := range f.Warnings {
			value := "null"
			if warning.Value != nil {
				value = fmt.Sprintf("%q", *warning.Value)
			}
			fmt.Fprintf(w, "%s:%v: %s %s\n", f.Filename, warning.Location.Start, warning.Kind, value)
		}
	}

	counts := record.Results.CountWarnings()
	kinds := maps.Keys(counts)
	slices.Sort(kinds)

	fmt.Fprintf(w, "\n%d files scanned\n", len(record.Results.Files))
	for _, kind := range kinds {
		fmt.Fprintf(w, "%-20s %d\n", kind, counts[kind])
	}
}

// scanOptions merges command line flags over the config file settings.
func scanOptions(cfg config.Config) staticanalysis.ScanOptions {
	opts := cfg.ScanOptions()
	if len(extensions.Values) > 0 {
		opts.Extensions = extensions.Values
	}
	if len(exclude.Values) > 0 {
		opts.Exclude = append(opts.Exclude, exclude.Values...)
	}
	if *concurrency > 0 {
		opts.Concurrency = *concurrency
	}
	return opts
}

func run(ctx context.Context, targets []string) error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyFeatures(); err != nil {
		return err
	}
	if err := featureflags.Update(*features); err != nil {
		return err
	}

	if *listFeatures {
		printFeatureFlags(os.Stdout)
		return nil
	}
	runner := probes.Default()
	if *listProbes {
		printProbes(os.Stdout, runner)
		return nil
	}

	if len(targets) == 0 {
		flag.Usage()
		return fmt.Errorf("no paths to scan")
	}

	var pkg pkgidentifier.PkgIdentifier
	if *purl != "" {
		if pkg, err = pkgidentifier.FromPurl(*purl); err != nil {
			return err
		}
		ctx = log.ContextWithAttrs(ctx, log.LabelAttr("package", pkg.Purl()))
	}

	opts := scanOptions(cfg)
	results := api.Results{}
	for _, target := range targets {
		files, err := staticanalysis.ScanPath(ctx, target, runner, opts)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", target, err)
		}
		results.Files = append(results.Files, files...)
	}
	record := api.CreateRecord(&results, pkg)

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return err
		}
	} else {
		printSummary(os.Stdout, record)
	}

	bucket := *upload
	if bucket == "" {
		bucket = cfg.Upload
	}
	if bucket != "" {
		rs := resultstore.New(bucket, resultstore.ConstructPath())
		key, err := rs.Save(ctx, record)
		if err != nil {
			return fmt.Errorf("uploading results to %v: %w", rs, err)
		}
		slog.InfoContext(ctx, "Results uploaded", "bucket", bucket, "path", key)
	}
	return nil
}

func main() {
	log.Initialize(os.Getenv("LOGGER_ENV"))

	extensions.InitFlag()
	exclude.InitFlag()
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, utils.RemoveDuplicates(flag.Args())); err != nil {
		slog.ErrorContext(ctx, "Scan failed", "error", err)
		os.Exit(1)
	}
}
