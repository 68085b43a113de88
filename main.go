package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentimap/internal/config"
	"sentimap/internal/dataset"
	"sentimap/internal/geo"
	"sentimap/internal/logging"
	"sentimap/internal/model"
	"sentimap/internal/report"
	"sentimap/internal/tui"
	"sentimap/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

// watchSettle is how long a dataset file has to stay quiet after a write
// before a reload is triggered. Editors often emit several events per save.
const watchSettle = 500 * time.Millisecond

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "sentimap",
		Repository: "sentimap",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/sentimap/sentimap/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sentimap [options]\n\n")
		fmt.Fprintf(os.Stderr, "sentimap renders a geographic sentiment dashboard from a CSV dataset.\n")
		fmt.Fprintf(os.Stderr, "Countries are colored by their aggregated sentiment; hover, select and\n")
		fmt.Fprintf(os.Stderr, "zoom to explore per-region detail. Without flags it starts the TUI.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sentimap                          # TUI with the embedded demo dataset\n")
		fmt.Fprintf(os.Stderr, "  sentimap --url https://x.io/s.csv # TUI over a remote dataset\n")
		fmt.Fprintf(os.Stderr, "  sentimap -f data.csv --web        # Browser dashboard, reloads on save\n")
		fmt.Fprintf(os.Stderr, "  sentimap -r -o report.txt         # Save the text report to a file\n")
		fmt.Fprintf(os.Stderr, "  sentimap --json                   # Output the analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  sentimap --chart top.png          # Export a bar chart of top countries\n")
	}

	urlFlag := pflag.String("url", "", "Load the dataset from an HTTP(S) URL")
	fileFlag := pflag.StringP("file", "f", "", "Load the dataset from a local CSV file")
	demoFlag := pflag.Bool("demo", false, "Use the embedded demo dataset")
	webFlag := pflag.BoolP("web", "w", false, "Serve the browser dashboard instead of the TUI")
	listenFlag := pflag.String("listen", "", "Listen address for --web (overrides config)")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a text report (CLI mode)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output raw analysis data as JSON")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	chartFlag := pflag.String("chart", "", "Write a PNG bar chart of the top countries to this path")
	pdfFlag := pflag.String("pdf", "", "Write a one-page PDF summary to this path")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Debug logging; include per-region rows in reports")
	configFlag := pflag.StringP("config", "c", "", "Path to a config file (default ~/.config/sentimap/config.yaml)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("sentimap version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	src := resolveSource(cfg, *urlFlag, *fileFlag, *demoFlag)

	if *webFlag {
		listen := *listenFlag
		if listen == "" {
			listen = cfg.Server.Listen
		}
		runWebMode(src, listen, *verboseFlag)
		return
	}

	if *reportFlag {
		runReportMode(src, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(src, *verboseFlag)
		return
	}

	if *chartFlag != "" || *pdfFlag != "" {
		runExportMode(src, *chartFlag, *pdfFlag, *verboseFlag)
		return
	}

	// Default: TUI
	runTuiMode(cfg, src)
}

// resolveSource picks the dataset source by precedence: explicit flags beat
// the config file, and --demo beats everything. An empty Source means the
// embedded demo dataset.
func resolveSource(cfg *config.Config, url, file string, demo bool) dataset.Source {
	switch {
	case demo:
		return dataset.Source{}
	case url != "":
		return dataset.Source{URL: url}
	case file != "":
		return dataset.Source{Path: file}
	case cfg.Dataset.URL != "":
		return dataset.Source{URL: cfg.Dataset.URL}
	case cfg.Dataset.File != "":
		return dataset.Source{Path: cfg.Dataset.File}
	default:
		return dataset.Source{}
	}
}

func loadAnalysis(src dataset.Source, logger *zap.Logger) (report.Analysis, error) {
	loader := dataset.NewLoader(logger)
	records, err := loader.Load(context.Background(), src)
	if err != nil {
		return report.Analysis{}, err
	}
	return report.Build(src.String(), records, dataset.Aggregate(records), geo.NewCatalog()), nil
}

func runReportMode(src dataset.Source, outputFile string, verbose bool) {
	logger, err := logging.New(verbose, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	analysis, err := loadAnalysis(src, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	text := report.Generate(analysis, report.Options{
		Verbose: verbose,
		Color:   outputFile == "",
	})

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(text), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(text)
	}
}

func runJsonMode(src dataset.Source, verbose bool) {
	logger, err := logging.New(verbose, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	analysis, err := loadAnalysis(src, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(analysis)
}

func runExportMode(src dataset.Source, chartPath, pdfPath string, verbose bool) {
	logger, err := logging.New(verbose, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	analysis, err := loadAnalysis(src, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	if chartPath != "" {
		if err := report.WriteChart(chartPath, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chart saved to %s\n", chartPath)
	}

	if pdfPath != "" {
		if err := report.WritePDF(pdfPath, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF saved to %s\n", pdfPath)
	}
}

func runWebMode(src dataset.Source, listen string, verbose bool) {
	logger, err := logging.New(verbose, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog := geo.NewCatalog()
	loader := dataset.NewLoader(logger)
	srv := web.NewServer(loader, catalog, src, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if src.Path != "" {
		w, werr := dataset.NewWatcher(src.Path, watchSettle, logger, func() {
			// Load failures are logged by the server and surface as an
			// error state on the dashboard.
			_ = srv.Reload(context.Background())
		})
		if werr != nil {
			logger.Warn("dataset watch unavailable", zap.Error(werr))
		} else {
			defer w.Close()
		}
	}

	if err := srv.Run(ctx, listen); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runTuiMode(cfg *config.Config, src dataset.Source) {
	logger, err := logging.New(false, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog := geo.NewCatalog()
	loader := dataset.NewLoader(logger)
	hoverDelay := time.Duration(cfg.UI.HoverDelayMS) * time.Millisecond

	m := tui.InitialModel(catalog, loader, src, logger, hoverDelay)

	if src.Path != "" {
		w, werr := dataset.NewWatcher(src.Path, watchSettle, logger, func() {
			select {
			case m.Events <- tui.MsgDatasetChanged{}:
			default:
			}
		})
		if werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: dataset watch unavailable: %v\n", werr)
		} else {
			defer w.Close()
		}
	}

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
