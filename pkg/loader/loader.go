// Package loader reads the per-year events document produced by the
// spreadsheet sync and prepares it for the layout pipeline: defaults for
// missing configuration, safe fills for missing record fields, and id
// assignment.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

// DocumentName is the canonical file name inside a year directory.
const DocumentName = "events.json"

// FindDocPath locates the events document for a year under the data
// directory, e.g. <dir>/2026/events.json. A document directly in dir is
// accepted as a fallback.
func FindDocPath(dir string, year int) (string, error) {
	candidates := []string{
		filepath.Join(dir, strconv.Itoa(year), DocumentName),
		filepath.Join(dir, DocumentName),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() && info.Size() > 0 {
			return path, nil
		}
	}
	return "", fmt.Errorf("no events document for %d under %s", year, dir)
}

// Load reads and prepares an events document. Records missing non-critical
// fields are filled with the documented defaults; records are never
// rejected.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse events document: %w", err)
	}

	ApplyConfigDefaults(&doc.Config)
	fillEventDefaults(&doc)
	return &doc, nil
}

// fillEventDefaults mirrors the spreadsheet sync's fallbacks: missing type
// and ring get safe defaults, center placement unless a second ring forces
// the boundary line, and every record gets an id.
func fillEventDefaults(doc *model.Document) {
	for i := range doc.Events {
		e := &doc.Events[i]
		if e.Type == "" {
			e.Type = model.TypeBeslut
		}
		if e.Ring == "" {
			e.Ring = model.RingPlanering
		}
		if e.Placement == "" {
			if e.Ring2 != "" {
				e.Placement = model.PlacementLine
			} else {
				e.Placement = model.PlacementCenter
			}
		}
		if e.Placement == model.PlacementCenter {
			e.Ring2 = ""
		}
		if e.ID == "" {
			e.ID = "ev_" + uuid.NewString()
		}
	}
}

// UnknownRings reports ring names in the document that the wheel cannot
// resolve. The layout engine silently defaults these to the first ring;
// the caller can surface the list so data mistakes are not masked.
func UnknownRings(doc *model.Document) []string {
	seen := make(map[model.Ring]bool)
	var out []string
	for _, e := range doc.Events {
		for _, r := range []model.Ring{e.Ring, e.Ring2} {
			if r == "" || r.IsValid() || seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, string(r))
		}
	}
	return out
}

// LoadOverrides applies a wheel.yaml geometry override file on top of the
// document configuration. Only fields present in the file change.
func LoadOverrides(path string, cfg *model.WheelConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read override file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse override file: %w", err)
	}
	return nil
}
