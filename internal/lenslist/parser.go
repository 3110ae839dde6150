package lenslist

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// xmlLensList matches the LensList.xml schema.
type xmlLensList struct {
	Lenses []xmlLens `xml:"Lens"`
}

type xmlLens struct {
	Name     string `xml:"Name,attr"`
	Diameter string `xml:"Diameter,attr"`
	Length   string `xml:"Length,attr"`
	Tags     string `xml:"Tags,attr"`
}

type jsonLens struct {
	Name     string   `json:"name"`
	Diameter float64  `json:"diameter"`
	Length   float64  `json:"length"`
	Tags     []string `json:"tags"`
}

// Parse reads a lens catalog file. A .json extension selects a JSON array;
// anything else is treated as LensList XML.
func Parse(path string) ([]Lens, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lenslist: read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSON(raw, path)
	}
	return parseXML(raw, path)
}

func parseXML(raw []byte, path string) ([]Lens, error) {
	var list xmlLensList
	if err := xml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("lenslist: parse %s: %w", path, err)
	}

	var lenses []Lens
	for _, l := range list.Lenses {
		diameter, err := strconv.ParseFloat(l.Diameter, 64)
		if err != nil {
			continue
		}
		length, err := strconv.ParseFloat(l.Length, 64)
		if err != nil {
			continue
		}
		lenses = append(lenses, Lens{
			Name:     l.Name,
			Diameter: diameter,
			Length:   length,
			Tags:     splitTags(l.Tags),
		})
	}

	return lenses, nil
}

func parseJSON(raw []byte, path string) ([]Lens, error) {
	var list []jsonLens
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("lenslist: parse %s: %w", path, err)
	}

	lenses := make([]Lens, len(list))
	for i, l := range list {
		lenses[i] = Lens{
			Name:     l.Name,
			Diameter: l.Diameter,
			Length:   l.Length,
			Tags:     l.Tags,
		}
	}
	return lenses, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Validate rejects catalogs the geometry engine would only render
// degenerately. The engine itself is total over its numeric domain; this is
// the fail-fast layer in front of it.
func Validate(lenses []Lens) error {
	if len(lenses) == 0 {
		return fmt.Errorf("lenslist: no lenses to render")
	}
	for i, l := range lenses {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("lens %d", i)
		}
		if !(l.Diameter > 0) || math.IsInf(l.Diameter, 0) {
			return fmt.Errorf("lenslist: %s: diameter must be a positive finite number, got %v", name, l.Diameter)
		}
		if !(l.Length > 0) || math.IsInf(l.Length, 0) {
			return fmt.Errorf("lenslist: %s: length must be a positive finite number, got %v", name, l.Length)
		}
	}
	return nil
}

// FilterByTag keeps only lenses carrying the tag. Matching is
// case-insensitive; an empty tag keeps everything.
func FilterByTag(lenses []Lens, tag string) []Lens {
	if tag == "" {
		return lenses
	}
	var filtered []Lens
	for _, l := range lenses {
		for _, t := range l.Tags {
			if strings.EqualFold(t, tag) {
				filtered = append(filtered, l)
				break
			}
		}
	}
	return filtered
}
