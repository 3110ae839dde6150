package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/jaeseopark/lens-barrel-preview/internal/batch"
	"github.com/jaeseopark/lens-barrel-preview/internal/camera"
	"github.com/jaeseopark/lens-barrel-preview/internal/config"
	"github.com/jaeseopark/lens-barrel-preview/internal/layout"
	"github.com/jaeseopark/lens-barrel-preview/internal/lenslist"
	"github.com/jaeseopark/lens-barrel-preview/internal/sheet"
	"github.com/jaeseopark/lens-barrel-preview/internal/theme"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	lensFile := flag.String("lenses", "", "Lens list file, XML or JSON (default: auto-detect)")
	cameraFile := flag.String("camera", "", "Camera config file (default: camera.json)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	tagFilter := flag.String("tag", "", "Render only lenses carrying this tag")
	testN := flag.Int("test", 0, "Render only first N lenses for testing")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	cardWidth := flag.Int("card-width", 0, "Card width in pixels (default: 300)")
	lensScale := flag.Float64("scale", 0, "Millimeter to pixel scale (default: 1.0)")
	format := flag.String("format", "", "Output format, webp or png (default: webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		LensList:  *lensFile,
		Camera:    *cameraFile,
		OutputDir: *outputDir,
		CardWidth: *cardWidth,
		LensScale: *lensScale,
		Workers:   *workers,
		Format:    *format,
	})

	// Load lens list
	lenses, err := lenslist.Parse(cfg.LensList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lens list: %v\n", err)
		os.Exit(1)
	}
	if err := lenslist.Validate(lenses); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Filter by tag
	if *tagFilter != "" {
		lenses = lenslist.FilterByTag(lenses, *tagFilter)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(lenses) {
		lenses = lenses[:*testN]
	}

	if len(lenses) == 0 {
		fmt.Println("No lenses to render.")
		os.Exit(0)
	}

	// Load camera config
	cam, err := camera.Load(cfg.CameraFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading camera config: %v\n", err)
		os.Exit(1)
	}
	// Seed the shared photo cache so a broken image warns once up front
	// instead of failing silently inside the pool.
	bodies := camera.NewCache()
	if cam.Image != "" {
		if _, err := bodies.Resolve(cam.Image); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (cards render without a body)\n", err)
		}
	}

	// Theme
	th, err := theme.Custom(cfg.CardColor, cfg.SheetColor, cfg.TagColors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// One card height for the whole batch, set by the longest lens
	lengths := make([]float64, len(lenses))
	for i, l := range lenses {
		lengths[i] = l.Length
	}
	cardHeight := layout.ComputeSharedCardHeight(lengths, cfg.LensScale, cfg.CardWidth)

	// Print summary
	mode := ""
	if *tagFilter != "" {
		mode = fmt.Sprintf(" (tag: %s)", *tagFilter)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	formatName := "WebP"
	if cfg.Format == "png" {
		formatName = "PNG"
	}

	fmt.Printf("Lens Barrel Preview → %s%s\n", formatName, mode)
	fmt.Printf("Lenses: %d, Workers: %d, Card: %dx%d px\n", len(lenses), cfg.Workers, cfg.CardWidth, cardHeight)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Camera:      cam,
		Bodies:      bodies,
		OutputDir:   cfg.OutputDir,
		CardWidth:   cfg.CardWidth,
		CardHeight:  cardHeight,
		LensScale:   cfg.LensScale,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Format:      cfg.Format,
		Theme:       th,
	}

	results := batch.Run(batchCfg, lenses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(lenses))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	os.MkdirAll(cfg.OutputDir, 0755)

	// Compose the contact sheet from the finished cards
	cards := make([]*image.NRGBA, len(results))
	for i, r := range results {
		cards[i] = r.Card
	}
	sheetImg := sheet.Compose(cards, cfg.CardWidth, cardHeight, cfg.Gutter, cfg.SheetMaxWidth, th.Sheet)
	sheetPath := filepath.Join(cfg.OutputDir, "sheet."+cfg.Format)
	if err := batch.WriteImage(sheetPath, sheetImg, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sheet write failed: %v\n", err)
	} else {
		fmt.Printf("Sheet: %s\n", sheetPath)
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, lenses, results, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

type Result = batch.Result
