// Package chart turns aggregate counts into bar charts. A Chart describes the
// bars once; PNG output is drawn with gonum/plot and SVG/HTML output with templ
// components.
package chart

import (
	"image/color"

	"annostat/internal/aggregate"
)

// Series is one set of bars, one value per category.
type Series struct {
	Name   string
	Values []int
	// Colors holds either one color for every bar or one color per category.
	Colors []color.RGBA
}

// ColorAt returns the fill color of the bar for category i.
func (s Series) ColorAt(i int) color.RGBA {
	switch {
	case len(s.Colors) == 0:
		return color.RGBA{A: 0xff}
	case len(s.Colors) == 1:
		return s.Colors[0]
	case i < len(s.Colors):
		return s.Colors[i]
	default:
		return s.Colors[len(s.Colors)-1]
	}
}

// Chart is a grouped bar chart.
type Chart struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series
	Legend     bool
	// BarFraction is the share of each category slot covered by its bars.
	BarFraction float64
	// WidthIn and HeightIn give the figure size in inches.
	WidthIn  float64
	HeightIn float64
}

// MaxValue returns the tallest bar.
func (c Chart) MaxValue() int {
	max := 0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}
	return max
}

var (
	colorEquivalent    = rgb(0x00, 0x80, 0x00)
	colorNotEquivalent = rgb(0xFF, 0x00, 0x00)
	colorCompiles      = rgb(0x1E, 0x90, 0xFF)
	colorCodeExists    = rgb(0xFF, 0x63, 0x47)
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Equivalence builds the equivalent vs. not-equivalent chart.
func Equivalence(counts aggregate.EquivalenceCounts, title string) Chart {
	return Chart{
		Title:      title,
		XLabel:     "Answer Comparison",
		YLabel:     "Number of Questions",
		Categories: []string{"Equivalent", "Not Equivalent"},
		Series: []Series{{
			Name:   "Answers",
			Values: []int{counts.Equivalent, counts.NotEquivalent},
			Colors: []color.RGBA{colorEquivalent, colorNotEquivalent},
		}},
		BarFraction: 0.8,
		WidthIn:     8,
		HeightIn:    6,
	}
}

// Compilation builds the per-source compiles vs. code-exists chart.
func Compilation(counts aggregate.CompilationCounts) Chart {
	sources := aggregate.Sources()
	categories := make([]string, 0, len(sources))
	compiles := make([]int, 0, len(sources))
	exists := make([]int, 0, len(sources))
	for _, source := range sources {
		c := counts.For(source)
		categories = append(categories, source.Label())
		compiles = append(compiles, c.Compiles)
		exists = append(exists, c.HasCode)
	}
	return Chart{
		Title:      "Code Compilation and Existence Analysis",
		XLabel:     "Source",
		YLabel:     "Count",
		Categories: categories,
		Series: []Series{
			{Name: "Code Compiles - Yes", Values: compiles, Colors: []color.RGBA{colorCompiles}},
			{Name: "Code Exists - Yes", Values: exists, Colors: []color.RGBA{colorCodeExists}},
		},
		Legend:      true,
		BarFraction: 0.7,
		WidthIn:     10,
		HeightIn:    7,
	}
}
