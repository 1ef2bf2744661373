package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

const (
	DefaultWidth  = 70
	DefaultHeight = 12
)

func PlotTrajectory(tr *integrators.Trajectory, width, height int) string {
	xs := make([]float64, len(tr.Points))
	for i, p := range tr.Points {
		xs[i] = p.X
	}
	return plot([][]float64{xs}, width, height, "x(t), t in [0, "+Number(tr.Final().T)+"]")
}

// PlotTrajectory2 draws position and velocity on shared axes.
func PlotTrajectory2(tr *integrators.Trajectory2, width, height int) string {
	xs := make([]float64, len(tr.Points))
	vs := make([]float64, len(tr.Points))
	for i, p := range tr.Points {
		xs[i], vs[i] = p.X, p.V
	}
	return plot([][]float64{xs, vs}, width, height, "x(t) cyan, v(t) magenta, t in [0, "+Number(tr.Final().T)+"]")
}

// Sample evaluates f at n evenly spaced points of [lo, hi]. Points where f
// fails are NaN and are drawn as gaps.
func Sample(f numeric.Func, lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	ys := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range ys {
		y, err := f(lo + float64(i)*step)
		if err != nil || math.IsInf(y, 0) {
			y = math.NaN()
		}
		ys[i] = y
	}
	return ys
}

// PlotTable draws every column after the first of a saved run's table,
// taking the first column as the abscissa.
func PlotTable(header []string, rows [][]float64, width, height int) string {
	if len(header) < 2 || len(rows) < 2 {
		return Subtle.Render("(nothing to plot)")
	}
	series := make([][]float64, len(header)-1)
	for j := range series {
		series[j] = make([]float64, len(rows))
		for i, row := range rows {
			if j+1 < len(row) {
				series[j][i] = row[j+1]
			}
		}
	}
	caption := strings.Join(header[1:], ", ") + " over " + header[0] + " in [" +
		Number(rows[0][0]) + ", " + Number(rows[len(rows)-1][0]) + "]"
	return plot(series, width, height, caption)
}

func PlotFunction(f numeric.Func, lo, hi float64, width, height int, caption string) string {
	return plot([][]float64{Sample(f, lo, hi, width)}, width, height, caption)
}

func plot(series [][]float64, width, height int, caption string) string {
	for _, s := range series {
		if !anyFinite(s) {
			return Subtle.Render("(nothing to plot)")
		}
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
	)
}

func anyFinite(s []float64) bool {
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
