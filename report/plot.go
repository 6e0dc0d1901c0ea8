package report

import (
	"errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
)

// ErrNoDistances is returned by PlotDistances when there is nothing to plot.
var ErrNoDistances = errors.New("no primer distances to plot")

// PlotDistances saves a histogram of distances to filename. The image format
// is chosen from the file extension (png, svg, pdf, ...).
func PlotDistances(filename string, distances []int, bins int) error {
	if len(distances) == 0 {
		return ErrNoDistances
	}
	if bins < 1 {
		bins = 1
	}

	v := make(plotter.Values, len(distances))
	for i := range distances {
		v[i] = float64(distances[i])
	}

	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 255, G: 178, B: 0, A: 255}

	pl := plot.New()
	pl.Title.Text = "Primer distances"
	pl.X.Label.Text = "Distance (bp)"
	pl.Y.Label.Text = "Count"
	pl.Add(h)

	return pl.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
