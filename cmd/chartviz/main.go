// Command chartviz renders radar, box and bar charts of chunking-method
// retrieval results and serves them for browsing.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("chartviz failed", "error", err)
		os.Exit(1)
	}
}
