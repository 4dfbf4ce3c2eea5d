package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Observation is one row of the long-form score table behind a box plot.
type Observation struct {
	Group string
	Index int
	Score float64
}

// LongForm flattens per-group score lists into (group, index, score) rows,
// preserving group order and order within each group.
func LongForm(groups []string, lists [][]float64) []Observation {
	var rows []Observation
	for i, g := range groups {
		for j, s := range lists[i] {
			rows = append(rows, Observation{Group: g, Index: j, Score: s})
		}
	}
	return rows
}

// groupObservations collects scores per distinct group in first-seen order.
func groupObservations(rows []Observation) ([]string, []plotter.Values) {
	pos := make(map[string]int)
	var names []string
	var values []plotter.Values
	for _, r := range rows {
		i, ok := pos[r.Group]
		if !ok {
			i = len(names)
			pos[r.Group] = i
			names = append(names, r.Group)
			values = append(values, nil)
		}
		values[i] = append(values[i], r.Score)
	}
	return names, values
}

// DrawBox draws one box-and-whisker per group of per-question scores.
func (r *Renderer) DrawBox(groups []string, lists [][]float64, metric, path string) error {
	if err := checkLengths("box", len(groups), len(lists)); err != nil {
		return err
	}
	for i, l := range lists {
		if len(l) == 0 {
			return fmt.Errorf("box: group %q: %w", groups[i], plotter.ErrNoData)
		}
	}

	names, values := groupObservations(LongForm(groups, lists))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s of Different Chunking Methods", metric)
	p.X.Label.Text = "Chunking Method"
	p.Y.Label.Text = "Score"

	for i, vs := range values {
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), vs)
		if err != nil {
			return fmt.Errorf("box %q: %w", names[i], err)
		}
		b.FillColor = boxFillColor
		p.Add(b)
	}

	p.NominalX(names...)
	rotateTickLabels(&p.X)

	return r.save(p, r.opts.Box, path)
}
