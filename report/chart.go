package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

const chartTitle = "Training loss"

// LossLine builds an echarts line chart of the recorded losses. Epochs with
// a non-finite loss are left out.
func (h *History) LossLine() *charts.Line {
	epochs, losses := h.finite()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chartTitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: "epoch"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MSE"}),
	)

	data := make([]opts.LineData, 0, len(losses))
	for _, l := range losses {
		data = append(data, opts.LineData{Value: l})
	}
	line.SetXAxis(epochs).AddSeries("loss", data)
	return line
}

// RenderHTML writes a standalone HTML page with the loss chart.
func (h *History) RenderHTML(w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(h.LossLine())
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "render loss chart")
	}
	return nil
}

// LossPlot builds a gonum plot of the recorded losses.
func (h *History) LossPlot() (*plot.Plot, error) {
	epochs, losses := h.finite()
	if len(losses) == 0 {
		return nil, errors.NewEmptyInputError("History.LossPlot")
	}

	pts := make(plotter.XYs, len(losses))
	for i := range losses {
		pts[i].X = float64(epochs[i])
		pts[i].Y = losses[i]
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "MSE"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "build loss line")
	}
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// SavePNG draws the loss curve to path, sized width × height inches. The
// extension of path selects the image format, so .svg and .pdf work too.
func (h *History) SavePNG(path string, width, height float64) error {
	p, err := h.LossPlot()
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save loss plot %s", path)
	}
	return nil
}
