// Package layout derives the output directory tree of a render run.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
)

const (
	MethodDir = "method"
	BoxDir    = "metric_box"
	BarDir    = "metric_bar"

	barSuffix = "_bar"
	dirPerm   = 0o755
)

// Layout maps a context under a result root to chart paths. Paths carry no
// image extension; the renderer appends one.
type Layout struct {
	Root    string
	Context record.Context
}

func New(root string, ctx record.Context) Layout {
	return Layout{Root: root, Context: ctx}
}

// Dir is <root>/<filename>/<embedding_model>/k=<k>&threshold=<threshold>.
func (l Layout) Dir() string {
	return filepath.Join(
		l.Root,
		l.Context.Filename,
		l.Context.EmbeddingModel,
		fmt.Sprintf("k=%s&threshold=%s", l.Context.KValue, l.Context.Threshold),
	)
}

func (l Layout) MethodPath(escapedMethod string) string {
	return filepath.Join(l.Dir(), MethodDir, escapedMethod)
}

func (l Layout) BoxPath(metric string) string {
	return filepath.Join(l.Dir(), BoxDir, metric)
}

func (l Layout) BarPath(metric string) string {
	return filepath.Join(l.Dir(), BarDir, metric+barSuffix)
}

// Ensure creates the three chart directories. It is safe to call repeatedly.
func (l Layout) Ensure() error {
	for _, sub := range []string{MethodDir, BoxDir, BarDir} {
		dir := filepath.Join(l.Dir(), sub)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	return nil
}

// Rel returns path relative to the context directory, slash separated.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Dir(), path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
