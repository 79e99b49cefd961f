package runner

import (
	"path/filepath"
	"strings"
)

// OutputPaths names the artifacts written beside a corpus file.
type OutputPaths struct {
	Dir  string
	Base string
}

// NewOutputPaths derives output names from the corpus path.
func NewOutputPaths(corpusPath string) OutputPaths {
	return OutputPaths{
		Dir:  filepath.Dir(corpusPath),
		Base: filepath.Base(corpusPath),
	}
}

// withExt swaps every ".json" in the file name for ext, or appends ext when
// the name has none.
func (o OutputPaths) withExt(ext string) string {
	if strings.Contains(o.Base, ".json") {
		return strings.ReplaceAll(o.Base, ".json", ext)
	}
	return o.Base + ext
}

// Summary returns the summary_<name>.txt path.
func (o OutputPaths) Summary() string {
	return filepath.Join(o.Dir, "summary_"+o.withExt(".txt"))
}

// EquivalenceChart returns the plot_<name>.<format> path.
func (o OutputPaths) EquivalenceChart(format string) string {
	return filepath.Join(o.Dir, "plot_"+o.withExt("."+format))
}

// CompilationChart returns the compilation_analysis_<name>.<format> path.
func (o OutputPaths) CompilationChart(format string) string {
	return filepath.Join(o.Dir, "compilation_analysis_"+o.withExt("."+format))
}

// EquivalenceTitle is the chart title for the corpus.
func (o OutputPaths) EquivalenceTitle() string {
	return "comparison_analysis_" + o.Base
}
