package chart

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"annostat/internal/aggregate"
)

// TestEquivalenceChartModel verifies bar values and colors.
func TestEquivalenceChartModel(t *testing.T) {
	c := Equivalence(aggregate.EquivalenceCounts{Equivalent: 4, NotEquivalent: 6}, "comparison_analysis_x.json")
	if len(c.Series) != 1 || len(c.Series[0].Values) != 2 {
		t.Fatalf("unexpected series: %+v", c.Series)
	}
	if c.Series[0].Values[0] != 4 || c.Series[0].Values[1] != 6 {
		t.Fatalf("unexpected values: %v", c.Series[0].Values)
	}
	if hexColor(c.Series[0].ColorAt(0)) != "#008000" || hexColor(c.Series[0].ColorAt(1)) != "#FF0000" {
		t.Fatalf("unexpected colors")
	}
	if c.MaxValue() != 6 {
		t.Fatalf("unexpected max: %d", c.MaxValue())
	}
}

// TestCompilationChartModel verifies source order and series order.
func TestCompilationChartModel(t *testing.T) {
	c := Compilation(aggregate.CompilationCounts{
		ChatGPT:       aggregate.SourceCounts{HasCode: 9, Compiles: 7},
		StackOverflow: aggregate.SourceCounts{HasCode: 5, Compiles: 2},
	})
	if strings.Join(c.Categories, ",") != "ChatGPT,StackOverflow" {
		t.Fatalf("unexpected categories: %v", c.Categories)
	}
	if c.Series[0].Name != "Code Compiles - Yes" || c.Series[0].Values[0] != 7 || c.Series[0].Values[1] != 2 {
		t.Fatalf("unexpected compile series: %+v", c.Series[0])
	}
	if c.Series[1].Name != "Code Exists - Yes" || c.Series[1].Values[0] != 9 || c.Series[1].Values[1] != 5 {
		t.Fatalf("unexpected exists series: %+v", c.Series[1])
	}
}

// TestNiceMax verifies axis rounding.
func TestNiceMax(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 3: 3, 7: 8, 12: 15, 48: 50, 51: 60, 230: 250, 1001: 1500}
	for in, want := range cases {
		if got := niceMax(in); got != want {
			t.Fatalf("niceMax(%d) = %d, want %d", in, got, want)
		}
		if niceMax(in) < in {
			t.Fatalf("niceMax(%d) below input", in)
		}
	}
}

// TestNiceStep verifies tick steps come from the 1/2/5 x 10^k ladder.
func TestNiceStep(t *testing.T) {
	cases := map[float64]float64{0.5: 1, 1: 1, 2.1: 5, 2.4: 5, 3: 5, 10.2: 20, 46: 50, 200: 200, 200.2: 500, 999: 1000}
	for in, want := range cases {
		if got := niceStep(in); got != want {
			t.Fatalf("niceStep(%v) = %v, want %v", in, got, want)
		}
	}
}

// TestSVGRendersBars verifies one rect per bar and escaped labels.
func TestSVGRendersBars(t *testing.T) {
	c := Compilation(aggregate.CompilationCounts{
		ChatGPT: aggregate.SourceCounts{HasCode: 3, Compiles: 1},
	})
	c.Title = "A < B"
	var buf bytes.Buffer
	if err := WriteSVG(context.Background(), &buf, c); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, `<rect class="bar"`); got != 4 {
		t.Fatalf("expected 4 bars, got %d", got)
	}
	if !strings.Contains(out, "A &lt; B") {
		t.Fatalf("expected escaped title")
	}
	if !strings.Contains(out, "Code Exists - Yes") {
		t.Fatalf("expected legend")
	}
	var again bytes.Buffer
	_ = WriteSVG(context.Background(), &again, c)
	if again.String() != out {
		t.Fatalf("svg output is not deterministic")
	}
}

// TestSVGEmptyCounts verifies zero bars still render.
func TestSVGEmptyCounts(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(context.Background(), &buf, Equivalence(aggregate.EquivalenceCounts{}, "empty")); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	if strings.Contains(buf.String(), "NaN") {
		t.Fatalf("unexpected NaN in svg")
	}
}

// TestRenderHTML verifies the page includes summaries and charts.
func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(context.Background(), "Annotation summary", []PageEntry{{
		Title:   "short_q_openai_answer.json",
		Summary: "Total questions: 3\n",
		Charts:  []Chart{Equivalence(aggregate.EquivalenceCounts{Equivalent: 1, NotEquivalent: 2}, "t")},
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{"<h2>short_q_openai_answer.json</h2>", "Total questions: 3", "<svg"} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %s", token)
		}
	}
	empty, err := RenderHTML(context.Background(), "x", nil)
	if err != nil || !strings.Contains(empty, "No corpora were processed.") {
		t.Fatalf("unexpected empty page: %v", err)
	}
}

// TestSavePNG verifies a PNG file is produced.
func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	if err := SavePNG(path, Equivalence(aggregate.EquivalenceCounts{Equivalent: 2, NotEquivalent: 1}, "t")); err != nil {
		t.Fatalf("save png: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("expected png signature")
	}
}

// TestPlotRejectsMismatchedSeries verifies series length validation.
func TestPlotRejectsMismatchedSeries(t *testing.T) {
	c := Chart{Categories: []string{"a", "b"}, Series: []Series{{Name: "s", Values: []int{1}}}}
	if _, err := Plot(c); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := Plot(Chart{}); err == nil {
		t.Fatalf("expected error for empty chart")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestRenderPropagatesWriteErrors verifies writer failures surface from both components.
func TestRenderPropagatesWriteErrors(t *testing.T) {
	c := Equivalence(aggregate.EquivalenceCounts{Equivalent: 1}, "t")
	if err := SVG(c).Render(context.Background(), failingWriter{}); err == nil {
		t.Fatalf("expected svg write error")
	}
	page := ReportPage("x", []PageEntry{{Title: "a", Charts: []Chart{c}}})
	if err := page.Render(context.Background(), failingWriter{}); err == nil {
		t.Fatalf("expected page write error")
	}
}

// TestReportPageCancelled verifies a cancelled context stops rendering.
func TestReportPageCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := ReportPage("x", nil).Render(ctx, &buf)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// TestRenderHTMLEscapesEntries verifies titles, summaries, and series names are escaped.
func TestRenderHTMLEscapesEntries(t *testing.T) {
	c := Equivalence(aggregate.EquivalenceCounts{Equivalent: 1}, "t")
	c.Series[0].Name = `"quoted" <b>`
	html, err := RenderHTML(context.Background(), "<Report>", []PageEntry{{
		Title:   "<script>alert(1)</script>",
		Summary: "a & b",
		Charts:  []Chart{c},
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{
		"<title>&lt;Report&gt;</title>",
		"<h2>&lt;script&gt;alert(1)&lt;/script&gt;</h2>",
		"a &amp; b",
		`data-series="&#34;quoted&#34; &lt;b&gt;"`,
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %s", token)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("unescaped script tag in report")
	}
}
