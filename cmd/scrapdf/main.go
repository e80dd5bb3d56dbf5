package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/pyhub-apps/scrapdf-golang/internal/config"
	"github.com/pyhub-apps/scrapdf-golang/internal/logging"
	"github.com/pyhub-apps/scrapdf-golang/pkg/extraction"
	"github.com/pyhub-apps/scrapdf-golang/pkg/ocr/tesseract"
	"github.com/pyhub-apps/scrapdf-golang/pkg/pdf"
	"github.com/pyhub-apps/scrapdf-golang/pkg/raster"
	"github.com/pyhub-apps/scrapdf-golang/pkg/raster/fitz"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	password := flag.String("password", "", "password for encrypted documents")
	useOCR := flag.Bool("ocr", false, "extract with OCR instead of embedded text")
	fallback := flag.Bool("fallback", false, "switch to OCR from the first page without embedded text")
	showMetadata := flag.Bool("metadata", false, "print document metadata before the pages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: scrapdf [flags] <pdf-file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.MustNew(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	opts := []extraction.Option{
		extraction.WithPassword(*password),
		extraction.WithLogger(logger),
		extraction.WithBackend(pdf.Backend(cfg.Backend)),
		extraction.WithTempDir(cfg.TempDir),
		extraction.WithRenderer(newRenderer(cfg)),
		extraction.WithRecognizer(tesseract.New(
			tesseract.WithLanguages(cfg.Languages...),
			tesseract.WithDPI(cfg.DPI),
		)),
	}

	strategy := extraction.StrategyText
	if *useOCR {
		strategy = extraction.StrategyOCR
	}

	next, err := run(strategy, pdfPath, 1, *showMetadata, opts)
	var extractErr *extraction.Error
	if *fallback && strategy == extraction.StrategyText &&
		errors.As(err, &extractErr) && extractErr.Code == extraction.CodeParsingFailed {
		logger.Warn("no embedded text, falling back to OCR",
			zap.String("path", pdfPath),
			zap.Int("page", extractErr.Page),
		)
		_, err = run(extraction.StrategyOCR, pdfPath, next, false, opts)
	}
	if err != nil {
		logger.Error("extraction failed", zap.String("path", pdfPath), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run prints every page numbered from and above. It returns the number of
// the first page that was not printed.
func run(strategy extraction.Strategy, path string, from int, showMetadata bool, opts []extraction.Option) (int, error) {
	e, err := extraction.New(strategy, path, opts...)
	if err != nil {
		return from, err
	}
	defer e.Close()

	if showMetadata {
		printMetadata(e.Metadata())
	}

	next := from
	for page, err := range extraction.Pages(e) {
		if err != nil {
			return next, err
		}
		if page.Page < from {
			continue
		}
		fmt.Printf("=== Page %d ===\n", page.Page)
		fmt.Println(page.Text)
		next = page.Page + 1
	}
	return next, nil
}

func printMetadata(m extraction.Metadata) {
	if m == nil {
		fmt.Println("No metadata found")
		fmt.Println()
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, m[k])
	}
	fmt.Println()
}

func newRenderer(cfg *config.Config) raster.Renderer {
	if cfg.Renderer == "fitz" {
		return fitz.New(float64(cfg.DPI))
	}
	return raster.NewPDFCPU()
}
