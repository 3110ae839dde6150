package batch

import (
	"encoding/json"
	"os"

	"github.com/jaeseopark/lens-barrel-preview/internal/lenslist"
	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
)

// ManifestEntry represents one card in the output manifest.
type ManifestEntry struct {
	Index    int          `json:"index"`
	Name     string       `json:"name"`
	Diameter float64      `json:"diameter_mm"`
	Length   float64      `json:"length_mm"`
	Tags     []string     `json:"tags,omitempty"`
	Image    string       `json:"image"`
	Vertices [][2]float64 `json:"vertices,omitempty"`
}

// WriteManifest writes manifest.json next to the rendered cards. Every
// lens gets an entry; failed renders keep their geometry but point at an
// image file that was never written.
func WriteManifest(path string, lenses []lenslist.Lens, results []Result, format string) error {
	entries := make([]ManifestEntry, len(lenses))
	for i, l := range lenses {
		entries[i] = ManifestEntry{
			Index:    i,
			Name:     l.Name,
			Diameter: l.Diameter,
			Length:   l.Length,
			Tags:     l.Tags,
			Image:    CardFileName(i, l.Name, format),
		}
		if i < len(results) {
			entries[i].Vertices = vertices(results[i].Outline)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func vertices(poly []silhouette.Point) [][2]float64 {
	if len(poly) == 0 {
		return nil
	}
	v := make([][2]float64, len(poly))
	for i, p := range poly {
		v[i] = [2]float64{p.X, p.Y}
	}
	return v
}
