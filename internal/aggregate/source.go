package aggregate

import "fmt"

// Source identifies where an evaluated answer came from.
type Source int

const (
	SourceChatGPT Source = iota
	SourceStackOverflow
	sourceCount
)

var sourceKeys = [sourceCount]string{
	SourceChatGPT:       "Answer ChatGpt",
	SourceStackOverflow: "Answer StackOverflow",
}

var sourceLabels = [sourceCount]string{
	SourceChatGPT:       "ChatGPT",
	SourceStackOverflow: "StackOverflow",
}

// Sources returns every source in report order.
func Sources() []Source {
	return []Source{SourceChatGPT, SourceStackOverflow}
}

// Key is the corpus field under "Code and Compile Information" for the source.
func (s Source) Key() string {
	if !s.valid() {
		return ""
	}
	return sourceKeys[s]
}

// Label is the display name used in reports and charts.
func (s Source) Label() string {
	if !s.valid() {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceLabels[s]
}

func (s Source) String() string {
	return s.Label()
}

func (s Source) valid() bool {
	return s >= 0 && s < sourceCount
}
