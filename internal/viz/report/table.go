package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Chunking Method Summary ===\n")
	fmt.Fprintf(tw, "Context: %s\n", r.Meta.Context)
	if r.Meta.RunID != "" {
		fmt.Fprintf(tw, "Run: %s\n", r.Meta.RunID)
	}
	fmt.Fprintln(tw)

	writeMeansTable(tw, r)
	writeSpreadTable(tw, r)
	writeScoresTable(tw, r)

	tw.Flush()
}

func writeMeansTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-question means (%d methods)\n\n", len(r.Methods))

	header := append([]string{"Method"}, r.Metrics...)
	header = append(header, "Questions")
	writeHeader(tw, header)

	for _, m := range r.Methods {
		row := []string{m.Method}
		for _, metric := range r.Metrics {
			row = append(row, fmt.Sprintf("%.4f", m.Means[metric]))
		}
		row = append(row, fmtQuestions(m.Spread, r.Metrics))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeSpreadTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-question spread (median [q1-q3])\n\n")

	writeHeader(tw, append([]string{"Method"}, r.Metrics...))

	for _, m := range r.Methods {
		row := []string{m.Method}
		for _, metric := range r.Metrics {
			sp := m.Spread[metric]
			row = append(row, fmt.Sprintf("%.4f [%.4f-%.4f]", sp.Median, sp.Q1, sp.Q3))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeScoresTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Reported scores (/100)\n\n")

	writeHeader(tw, append([]string{"Method"}, r.Metrics...))

	for _, m := range r.Methods {
		row := []string{m.Method}
		for _, metric := range r.Metrics {
			row = append(row, fmt.Sprintf("%.4f", m.Scores[metric]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

// fmtQuestions prints one count when every metric has the same number of
// questions, otherwise the min-max range.
func fmtQuestions(spread map[string]Spread, metrics []string) string {
	if len(metrics) == 0 {
		return "-"
	}
	lo, hi := spread[metrics[0]].Count, spread[metrics[0]].Count
	for _, m := range metrics[1:] {
		lo, hi = min(lo, spread[m].Count), max(hi, spread[m].Count)
	}
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
