// Package batch renders a lens catalog into per-lens card images using a
// worker pool, and writes the accompanying manifest.
package batch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/jaeseopark/lens-barrel-preview/internal/camera"
	"github.com/jaeseopark/lens-barrel-preview/internal/lenslist"
	"github.com/jaeseopark/lens-barrel-preview/internal/postprocess"
	"github.com/jaeseopark/lens-barrel-preview/internal/raster"
	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
	"github.com/jaeseopark/lens-barrel-preview/internal/theme"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Camera      *camera.Config
	Bodies      *camera.Cache // shared photo cache, nil skips the body layer
	OutputDir   string
	CardWidth   int
	CardHeight  int
	LensScale   float64
	Supersample int
	Workers     int
	Format      string // "webp" or "png"
	Theme       *theme.Theme
}

// Result holds the outcome of processing one lens.
type Result struct {
	Name    string
	Index   int
	Success bool
	Error   string
	Card    *image.NRGBA       // final card, reused for the contact sheet
	Outline []silhouette.Point // barrel outline in card coordinates
}

// Run renders all lenses using a worker pool. The returned results are
// in lens order regardless of completion order. A worker count below 1
// runs a single worker.
func Run(cfg Config, lenses []lenslist.Lens) []Result {
	total := len(lenses)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f cards/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	lensChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range lensChan {
				results[idx] = processLens(cfg, lenses[idx], idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range lenses {
		lensChan <- i
	}
	close(lensChan)

	wg.Wait()
	close(done)

	return results
}

func processLens(cfg Config, lens lenslist.Lens, idx int) Result {
	poly := silhouette.ComputePolygon(lens.Diameter, lens.Length, cfg.Camera.Mount,
		cfg.LensScale, float64(cfg.CardWidth), float64(cfg.CardHeight))

	var body *image.NRGBA
	if cfg.Bodies != nil {
		// Load failures surface where the cache is seeded; the card
		// renders without the photo.
		body, _ = cfg.Bodies.Resolve(cfg.Camera.Image)
	}

	img := raster.RenderCard(raster.CardSpec{
		Polygon:     poly,
		Tags:        lens.Tags,
		Width:       cfg.CardWidth,
		Height:      cfg.CardHeight,
		Supersample: cfg.Supersample,
		Body:        body,
		Transform:   cfg.Camera.Transform,
		Theme:       cfg.Theme,
	})
	img = postprocess.Downsample(img, cfg.CardWidth, cfg.CardHeight)

	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	raster.DrawLabel(img, lens.Name, th.Label)

	outPath := filepath.Join(cfg.OutputDir, CardFileName(idx, lens.Name, cfg.Format))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: lens.Name, Index: idx, Error: err.Error()}
	}
	if err := WriteImage(outPath, img, cfg.Format); err != nil {
		return Result{Name: lens.Name, Index: idx, Error: err.Error()}
	}

	return Result{
		Name:    lens.Name,
		Index:   idx,
		Success: true,
		Card:    img,
		Outline: poly,
	}
}

// WriteImage encodes an image to path as WebP or PNG.
func WriteImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return fmt.Errorf("batch: encode %s: %w", path, err)
	}
	return nil
}

// CardFileName returns the output file name for one card. Names are
// slugged; the 1-based index prefix keeps files in catalog order.
func CardFileName(index int, name, format string) string {
	slug := sanitize(name)
	if slug == "" {
		return fmt.Sprintf("%03d.%s", index+1, format)
	}
	return fmt.Sprintf("%03d_%s.%s", index+1, slug, format)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
