package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Plot builds a gonum plot for the chart.
func Plot(c Chart) (*plot.Plot, error) {
	if len(c.Categories) == 0 || len(c.Series) == 0 {
		return nil, fmt.Errorf("chart %q has no bars", c.Title)
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0
	p.Y.Max = float64(niceMax(c.MaxValue()))
	p.NominalX(c.Categories...)
	if c.Legend {
		p.Legend.Top = true
		p.Legend.Left = true
	}

	slot := vg.Points(120)
	barWidth := slot * vg.Length(c.BarFraction) / vg.Length(len(c.Series))
	for si, series := range c.Series {
		if len(series.Values) != len(c.Categories) {
			return nil, fmt.Errorf("series %q has %d values for %d categories", series.Name, len(series.Values), len(c.Categories))
		}
		offset := barWidth*vg.Length(si) - barWidth*vg.Length(len(c.Series)-1)/2
		var legendBars *plotter.BarChart
		for i, value := range series.Values {
			// One BarChart per bar so each bar can carry its own color.
			bars, err := plotter.NewBarChart(plotter.Values{float64(value)}, barWidth)
			if err != nil {
				return nil, fmt.Errorf("bar chart: %w", err)
			}
			bars.XMin = float64(i)
			bars.Offset = offset
			bars.Color = series.ColorAt(i)
			bars.LineStyle.Width = 0
			p.Add(bars)
			if legendBars == nil {
				legendBars = bars
			}
		}
		if c.Legend && legendBars != nil {
			p.Legend.Add(series.Name, legendBars)
		}

		labels, err := valueLabels(series, offset)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return p, nil
}

func valueLabels(series Series, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(series.Values))
	texts := make([]string, len(series.Values))
	for i, value := range series.Values {
		xys[i] = plotter.XY{X: float64(i), Y: float64(value)}
		texts[i] = strconv.Itoa(value)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("bar labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(2)}
	return labels, nil
}

// WritePNG renders the chart as PNG.
func WritePNG(w io.Writer, c Chart) error {
	p, err := Plot(c)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(vg.Length(c.WidthIn)*vg.Inch, vg.Length(c.HeightIn)*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("png writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders the chart to a PNG file.
func SavePNG(path string, c Chart) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := WritePNG(file, c); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
