package chart

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

const (
	pixelsPerInch = 100
	marginLeft    = 80.0
	marginRight   = 30.0
	marginTop     = 60.0
	marginBottom  = 70.0
	yTickCount    = 5
)

// niceMax rounds the tallest bar up to a tick-friendly axis maximum.
func niceMax(max int) int {
	if max <= 0 {
		return 1
	}
	step := niceStep(float64(max) / yTickCount)
	return int(math.Ceil(float64(max)/step) * step)
}

// niceStep picks the smallest 1, 2 or 5 x 10^k step at or above raw.
func niceStep(raw float64) float64 {
	if raw <= 1 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*magnitude {
			return m * magnitude
		}
	}
	return 10 * magnitude
}

// geometry holds the plot area of an SVG chart in pixels.
type geometry struct {
	width, height float64
	left, top     float64
	plotW, plotH  float64
	yMax          float64
}

func layout(c Chart) geometry {
	width := c.WidthIn * pixelsPerInch
	height := c.HeightIn * pixelsPerInch
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	return geometry{
		width:  width,
		height: height,
		left:   marginLeft,
		top:    marginTop,
		plotW:  width - marginLeft - marginRight,
		plotH:  height - marginTop - marginBottom,
		yMax:   float64(niceMax(c.MaxValue())),
	}
}

func (g geometry) y(value float64) float64 {
	return g.top + g.plotH - value/g.yMax*g.plotH
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// writeNode writes the literal and escaped fragments of one element in order.
func writeNode(buf *templruntime.Buffer, fragments ...string) error {
	for _, fragment := range fragments {
		if _, err := buf.WriteString(fragment); err != nil {
			return err
		}
	}
	return nil
}

// SVG renders the chart as an inline SVG element.
func SVG(c Chart) templ.Component {
	return templruntime.GeneratedTemplate(func(input templruntime.GeneratedComponentInput) (err error) {
		w, ctx := input.Writer, input.Context
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		buf, isBuffer := templruntime.GetBuffer(w)
		if !isBuffer {
			defer func() {
				if bufErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = bufErr
				}
			}()
		}

		g := layout(c)
		err = writeNode(buf, `<svg xmlns="http://www.w3.org/2000/svg" class="chart" width="`, px(g.width),
			`" height="`, px(g.height), `" viewBox="0 0 `, px(g.width), " ", px(g.height), `" role="img">`, "\n")
		if err != nil {
			return err
		}
		err = writeNode(buf, `<text class="title" x="`, px(g.width/2), `" y="`, px(g.top/2),
			`" text-anchor="middle" font-size="18">`, templ.EscapeString(c.Title), "</text>\n")
		if err != nil {
			return err
		}

		step := g.yMax / yTickCount
		for i := 0; i <= yTickCount; i++ {
			value := step * float64(i)
			y := g.y(value)
			err = writeNode(buf, `<line class="grid" x1="`, px(g.left), `" y1="`, px(y),
				`" x2="`, px(g.left+g.plotW), `" y2="`, px(y), `" stroke="#DDDDDD"/>`, "\n")
			if err != nil {
				return err
			}
			err = writeNode(buf, `<text class="tick" x="`, px(g.left-6), `" y="`, px(y+4),
				`" text-anchor="end" font-size="12">`, trimFloat(value), "</text>\n")
			if err != nil {
				return err
			}
		}

		slot := g.plotW / float64(max(len(c.Categories), 1))
		barW := slot * c.BarFraction / float64(max(len(c.Series), 1))
		for i, category := range c.Categories {
			groupLeft := g.left + slot*float64(i) + (slot-barW*float64(len(c.Series)))/2
			for si, series := range c.Series {
				if i >= len(series.Values) {
					continue
				}
				x := groupLeft + barW*float64(si)
				y := g.y(float64(series.Values[i]))
				err = writeNode(buf, `<rect class="bar" data-series="`, templ.EscapeString(series.Name),
					`" x="`, px(x), `" y="`, px(y), `" width="`, px(barW), `" height="`, px(g.top+g.plotH-y),
					`" fill="`, hexColor(series.ColorAt(i)), `"/>`, "\n")
				if err != nil {
					return err
				}
				err = writeNode(buf, `<text class="value" x="`, px(x+barW/2), `" y="`, px(y-4),
					`" text-anchor="middle" font-size="12">`, strconv.Itoa(series.Values[i]), "</text>\n")
				if err != nil {
					return err
				}
			}
			err = writeNode(buf, `<text class="category" x="`, px(g.left+slot*float64(i)+slot/2), `" y="`, px(g.top+g.plotH+20),
				`" text-anchor="middle" font-size="13">`, templ.EscapeString(category), "</text>\n")
			if err != nil {
				return err
			}
		}

		err = writeNode(buf, `<line class="axis" x1="`, px(g.left), `" y1="`, px(g.top+g.plotH),
			`" x2="`, px(g.left+g.plotW), `" y2="`, px(g.top+g.plotH), `" stroke="#333333"/>`, "\n")
		if err != nil {
			return err
		}
		err = writeNode(buf, `<text class="xlabel" x="`, px(g.left+g.plotW/2), `" y="`, px(g.height-20),
			`" text-anchor="middle" font-size="14">`, templ.EscapeString(c.XLabel), "</text>\n")
		if err != nil {
			return err
		}
		midY := px(g.top + g.plotH/2)
		err = writeNode(buf, `<text class="ylabel" x="20.0" y="`, midY,
			`" text-anchor="middle" font-size="14" transform="rotate(-90 20.0 `, midY, `)">`,
			templ.EscapeString(c.YLabel), "</text>\n")
		if err != nil {
			return err
		}

		if c.Legend {
			for si, series := range c.Series {
				y := g.top + 10 + float64(si)*20
				err = writeNode(buf, `<rect class="legend" x="`, px(g.left+10), `" y="`, px(y),
					`" width="12" height="12" fill="`, hexColor(series.ColorAt(0)), `"/>`, "\n")
				if err != nil {
					return err
				}
				err = writeNode(buf, `<text class="legend" x="`, px(g.left+28), `" y="`, px(y+10),
					`" font-size="12">`, templ.EscapeString(series.Name), "</text>\n")
				if err != nil {
					return err
				}
			}
		}
		_, err = buf.WriteString("</svg>")
		return err
	})
}

// WriteSVG renders a standalone SVG document.
func WriteSVG(ctx context.Context, w io.Writer, c Chart) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	if err := SVG(c).Render(ctx, w); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
