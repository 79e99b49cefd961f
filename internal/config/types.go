package config

// Config describes which corpora a run reads and what it writes.
type Config struct {
	Version     int          `yaml:"version"`
	Equivalence CorpusSet    `yaml:"equivalence"`
	Compilation CorpusSet    `yaml:"compilation"`
	Output      OutputConfig `yaml:"output"`
	Workers     int          `yaml:"workers"`
}

// CorpusSet lists corpus files explicitly and through directory scans.
type CorpusSet struct {
	Files       []string          `yaml:"files"`
	Directories []DirectoryConfig `yaml:"directories"`
}

// DirectoryConfig selects files in a directory by suffix and substring.
type DirectoryConfig struct {
	Path     string `yaml:"path"`
	Suffix   string `yaml:"suffix"`
	Contains string `yaml:"contains"`
}

// OutputConfig controls the artifacts produced beside and across corpora.
type OutputConfig struct {
	Charts     []string `yaml:"charts"`
	HTMLReport string   `yaml:"html_report"`
	HistoryDB  string   `yaml:"history_db"`
	Results    string   `yaml:"results"`
}

// Chart formats.
const (
	ChartPNG = "png"
	ChartSVG = "svg"
)

// DefaultWorkers bounds how many corpora are processed at once.
const DefaultWorkers = 4

// Default returns the corpus layout of the annotation project: two
// question-length splits, the per-term TF-IDF directory and the code corpus.
func Default() Config {
	cfg := Config{
		Version: 1,
		Equivalence: CorpusSet{
			Files: []string{
				"q_shorter_than/short_q_openai_answer.json",
				"q_longer_than/long_q_openai_answer.json",
			},
			Directories: []DirectoryConfig{{
				Path:     "q_for_tfidf_term",
				Suffix:   ".json",
				Contains: "openai",
			}},
		},
		Compilation: CorpusSet{
			Files: []string{"qa_with_codes/qa_with_codes_openai_answer.json"},
		},
		Output: OutputConfig{
			Charts: []string{ChartPNG},
		},
		Workers: DefaultWorkers,
	}
	return cfg
}
