package aggregate

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
)

var ErrContextMismatch = errors.New("result files disagree on output context")

// ResolveContext picks the output context for aggregate charts. An explicit
// context wins; otherwise every record must share the same one.
func ResolveContext(explicit record.Context, records []*record.Record) (record.Context, error) {
	if !explicit.IsZero() {
		return explicit, nil
	}
	if len(records) == 0 {
		return record.Context{}, errors.New("no records to derive a context from")
	}

	first := records[0]
	want := first.Context()
	for _, rec := range records[1:] {
		if got := rec.Context(); got != want {
			return record.Context{}, fmt.Errorf("%w: %s has %q, %s has %q",
				ErrContextMismatch, first.Source, want.String(), rec.Source, got.String())
		}
	}
	return want, nil
}
