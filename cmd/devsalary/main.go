package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/devsalary/internal/stats"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 devsalary Usage Examples 📋")
	fmt.Println("\n1. Compare average salaries in Moscow on hh.ru and SuperJob (token from .env):")
	fmt.Println("   devsalary")

	fmt.Println("\n2. Only query hh.ru for Go and Rust in Saint Petersburg:")
	fmt.Println("   devsalary -source hh -city spb -languages \"Go,Rust\"")

	fmt.Println("\n3. Request exactly the number of pages hh.ru reports, with debug logging:")
	fmt.Println("   devsalary -hh-exact-pages -debug")

	fmt.Println("\n4. Save the report as JSON and HTML, without the banner:")
	fmt.Println("   devsalary -json report.json -html report.html -silence")

	fmt.Println("\n5. Read settings from a YAML file and go through a proxy:")
	fmt.Println("   devsalary -config devsalary.yaml -proxy http://localhost:8080")

	fmt.Printf("\nSupported cities: %v\n", config.CityNames())
}

// options holds the command line flags that are not configuration overrides
type options struct {
	jsonPath   string
	htmlPath   string
	debug      bool
	noProgress bool
}

func main() {
	// Command line flags
	source := flag.String("source", "", "Source to query (hh, superjob). If not specified, queries both.")
	city := flag.String("city", "", "City to search in (default Москва, or CITY from the environment)")
	languages := flag.String("languages", "", "Comma-separated list of programming languages")
	configPath := flag.String("config", "", "Path to a YAML config file (default devsalary.yaml if present)")
	envPath := flag.String("env", "", "Path to a .env file (default .env if present)")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	exactPages := flag.Bool("hh-exact-pages", false, "Stop at the last page hh.ru reports instead of requesting one more")
	jsonPath := flag.String("json", "", "Write the report as JSON to this file")
	htmlPath := flag.String("html", "", "Write the report as HTML to this file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	noProgress := flag.Bool("no-progress", false, "Hide the progress bar")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(config.Overrides{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
		City:       *city,
		Languages:  *languages,
		Source:     *source,
		Proxy:      *proxyURL,
		ExactPages: *exactPages,
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{
		jsonPath:   *jsonPath,
		htmlPath:   *htmlPath,
		debug:      *debug,
		noProgress: *noProgress,
	}
	if err := run(ctx, cfg, opts, os.Stdout, os.Stderr); err != nil {
		pterm.Error.Printf("report failed: %v\n", err)
		if errors.Is(err, config.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run builds one report per configured source and prints them. Nothing is
// printed or written unless every source succeeds.
func run(ctx context.Context, cfg *config.Config, opts options, stdout, stderr io.Writer) error {
	logger := ui.NewLogger(stderr, opts.debug)

	sources, err := buildSources(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("collecting salary statistics", logger.Args(
		"city", cfg.City.Name,
		"languages", len(cfg.Languages),
		"sources", len(sources),
	))

	var reports []*models.Report
	for _, src := range sources {
		var progressOut io.Writer
		if !opts.noProgress {
			progressOut = stderr
		}
		progress := ui.StartProgress(progressOut, src.Name(), len(cfg.Languages))

		report, err := stats.BuildReport(ctx, src, cfg.Languages,
			stats.WithCity(cfg.City.Name),
			stats.WithLogger(logger),
			stats.WithProgress(func(models.LanguageStatistics) { progress.Increment() }),
		)
		progress.Finish()
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	for _, report := range reports {
		if err := ui.RenderReport(stdout, report); err != nil {
			return err
		}
	}

	if opts.jsonPath != "" {
		if err := ui.WriteJSONFile(opts.jsonPath, reports); err != nil {
			return err
		}
		logger.Info("report saved", logger.Args("path", opts.jsonPath))
	}
	if opts.htmlPath != "" {
		if err := ui.WriteHTMLFile(opts.htmlPath, reports); err != nil {
			return err
		}
		logger.Info("report saved", logger.Args("path", opts.htmlPath))
	}
	return nil
}

// buildSources creates the API clients for the selected sources in report order
func buildSources(cfg *config.Config, logger *pterm.Logger) ([]scraper.Source, error) {
	var sources []scraper.Source
	for _, id := range cfg.Sources {
		switch id {
		case utils.SourceHH:
			src, err := scraper.NewHHSource(scraper.HHConfig{
				BaseURL:           cfg.HH.BaseURL,
				AreaID:            cfg.City.HHAreaID,
				RolePrefix:        cfg.RolePrefix,
				PerPage:           cfg.HH.PerPage,
				ExactPages:        cfg.HH.ExactPages,
				UserAgent:         cfg.HH.UserAgent,
				RequestsPerSecond: cfg.HH.RequestsPerSecond,
				ProxyURL:          cfg.Proxy,
				Timeout:           cfg.Timeout,
			}, logger)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", config.ErrConfig, err)
			}
			sources = append(sources, src)
		case utils.SourceSuperJob:
			src, err := scraper.NewSuperJobSource(scraper.SuperJobConfig{
				BaseURL:           cfg.SuperJob.BaseURL,
				APIToken:          cfg.SuperJob.APIToken,
				Town:              cfg.City.SuperJobTown,
				RolePrefix:        cfg.RolePrefix,
				Count:             cfg.SuperJob.Count,
				RequestsPerSecond: cfg.SuperJob.RequestsPerSecond,
				ProxyURL:          cfg.Proxy,
				Timeout:           cfg.Timeout,
			}, logger)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", config.ErrConfig, err)
			}
			sources = append(sources, src)
		default:
			return nil, fmt.Errorf("%w: invalid source %q", config.ErrConfig, id)
		}
	}
	return sources, nil
}
