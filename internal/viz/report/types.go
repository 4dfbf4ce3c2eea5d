// Package report summarizes per-method means of a visualization run.
package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
)

type Report struct {
	Meta    Meta          `json:"meta"`
	Metrics []string      `json:"metrics"`
	Methods []MethodEntry `json:"methods"`
}

type Meta struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Context     record.Context  `json:"context"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// MethodEntry holds the numbers of one chunking method.
type MethodEntry struct {
	Method string `json:"method"`
	// Means are per-question means keyed by metric, in [0,1].
	Means map[string]float64 `json:"means"`
	// Scores are the record-level scores divided by 100.
	Scores map[string]float64 `json:"scores"`
	// Spread describes the per-question distribution behind each mean.
	Spread map[string]Spread `json:"spread"`
}
