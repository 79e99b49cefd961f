package record

import (
	"fmt"
	"strings"
)

// InputShapeError reports a corpus that is not an array of objects.
type InputShapeError struct {
	Path   string
	Index  int
	Got    Kind
	Reason string
}

func (e *InputShapeError) Error() string {
	var b strings.Builder
	b.WriteString("input shape")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, " [record %d]", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// Records converts a decoded corpus into records. The corpus must be an array
// whose elements are all objects.
func Records(value JSONValue) ([]Record, error) {
	if value.Kind != KindArray {
		return nil, &InputShapeError{
			Index:  -1,
			Got:    value.Kind,
			Reason: fmt.Sprintf("expected an array of records, got %s", value.Kind),
		}
	}
	records := make([]Record, 0, len(value.Array))
	for i, item := range value.Array {
		if item.Kind != KindObject {
			return nil, &InputShapeError{
				Index:  i,
				Got:    item.Kind,
				Reason: fmt.Sprintf("expected an object, got %s", item.Kind),
			}
		}
		records = append(records, New(item))
	}
	return records, nil
}
