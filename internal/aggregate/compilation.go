package aggregate

import "annostat/internal/record"

// SourceCounts tallies code presence and compile success for one source.
type SourceCounts struct {
	HasCode  int `json:"has_code"`
	Compiles int `json:"compiles"`
}

// CompilationCounts holds SourceCounts for every source.
type CompilationCounts struct {
	ChatGPT       SourceCounts `json:"chatgpt"`
	StackOverflow SourceCounts `json:"stackoverflow"`
}

// For returns the counts for source.
func (c CompilationCounts) For(source Source) SourceCounts {
	switch source {
	case SourceChatGPT:
		return c.ChatGPT
	case SourceStackOverflow:
		return c.StackOverflow
	default:
		return SourceCounts{}
	}
}

func (c *CompilationCounts) slot(source Source) *SourceCounts {
	switch source {
	case SourceChatGPT:
		return &c.ChatGPT
	case SourceStackOverflow:
		return &c.StackOverflow
	default:
		return nil
	}
}

// Tuple returns (chatgpt_compiles, stackoverflow_compiles, chatgpt_has_code,
// stackoverflow_has_code), the order chart renderers expect.
func (c CompilationCounts) Tuple() [4]int {
	return [4]int{
		c.ChatGPT.Compiles,
		c.StackOverflow.Compiles,
		c.ChatGPT.HasCode,
		c.StackOverflow.HasCode,
	}
}

// compileAccepted holds the compile values treated as success. The trailing
// period variant appears in the annotated corpora.
var compileAccepted = map[string]bool{
	"Yes":  true,
	"Yes.": true,
}

// Compilation counts, per source, records whose answer contains code and,
// among those, records whose code compiles. A compile flag on a record without
// code is ignored, so Compiles never exceeds HasCode.
func Compilation(records []record.Record) CompilationCounts {
	var counts CompilationCounts
	for _, rec := range records {
		for _, source := range Sources() {
			info := rec.CodeInfo(source.Key())
			if info.Code() != judgmentYes {
				continue
			}
			slot := counts.slot(source)
			slot.HasCode++
			if compileAccepted[info.Compile()] {
				slot.Compiles++
			}
		}
	}
	return counts
}

// CompilationOf checks that value is an array of objects before counting.
func CompilationOf(value record.JSONValue) (CompilationCounts, error) {
	records, err := record.Records(value)
	if err != nil {
		return CompilationCounts{}, err
	}
	return Compilation(records), nil
}
