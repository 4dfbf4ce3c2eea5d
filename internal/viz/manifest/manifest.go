// Package manifest records which charts a visualization run wrote.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

const FileName = "manifest.json"

type Kind string

const (
	KindRadar Kind = "radar"
	KindBox   Kind = "box"
	KindBar   Kind = "bar"
)

// Chart is one written image. Path is slash separated and relative to the
// manifest directory.
type Chart struct {
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
	Path   string `json:"path"`
	Method string `json:"method,omitempty"`
	Metric string `json:"metric,omitempty"`
}

type Manifest struct {
	RunID       uuid.UUID      `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Context     record.Context `json:"context"`
	Format      string         `json:"format"`
	Metrics     []string       `json:"metrics"`
	Methods     []string       `json:"methods"`
	Sources     []string       `json:"sources"`
	Charts      []Chart        `json:"charts"`
}

func New(ctx record.Context, format string, metrics, methods []string) *Manifest {
	return &Manifest{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Context:     ctx,
		Format:      format,
		Metrics:     append([]string(nil), metrics...),
		Methods:     append([]string(nil), methods...),
	}
}

func (m *Manifest) Add(c Chart) {
	m.Charts = append(m.Charts, c)
}

// ChartsOf returns the charts of one kind in insertion order.
func (m *Manifest) ChartsOf(kind Kind) []Chart {
	var out []Chart
	for _, c := range m.Charts {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Write stores the manifest as dir/manifest.json.
func (m *Manifest) Write(dir string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return p, nil
}

func Load(p string) (*Manifest, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", p, err)
	}
	return &m, nil
}

// Entry is a manifest found under a result root.
type Entry struct {
	// Dir is the manifest directory relative to the root, slash separated.
	Dir      string    `json:"dir"`
	Manifest *Manifest `json:"manifest"`
}

// Find loads every manifest below root, sorted by directory. A manifest that
// cannot be parsed fails the whole listing.
func Find(root string) ([]Entry, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, "**/"+FileName)
	if err != nil {
		return nil, fmt.Errorf("find manifests in %s: %w", root, err)
	}
	sort.Strings(matches)

	entries := make([]Entry, 0, len(matches))
	for _, match := range matches {
		m, err := Load(filepath.Join(root, filepath.FromSlash(match)))
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Dir: path.Dir(match), Manifest: m})
	}
	return entries, nil
}
