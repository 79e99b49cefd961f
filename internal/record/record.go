// Package record models annotation records loaded from JSON corpora.
//
// Every field a record may carry is optional. Accessors fall back to the
// documented defaults instead of failing, so the only error this package
// produces for well-formed JSON is an InputShapeError when the corpus is not
// an array of objects.
package record

// Corpus field names.
const (
	FieldEquivalence = "Are the two answers equivalent?"
	FieldCodeCompile = "Code and Compile Information"
	FieldCode        = "code"
	FieldCompile     = "compile"
)

// DefaultEquivalence is reported when a record carries no equivalence judgment.
const DefaultEquivalence = "No"

// Record is one annotation unit of a corpus.
type Record struct {
	value JSONValue
}

// New wraps a JSON object as a Record. Non-object values behave as an empty record.
func New(value JSONValue) Record {
	return Record{value: value}
}

// FromMap builds a Record from decoded members, mostly for tests and fixtures.
func FromMap(members map[string]JSONValue) Record {
	return Record{value: Object(members)}
}

// Value returns the underlying JSON object.
func (r Record) Value() JSONValue {
	return r.value
}

// EquivalenceJudgment returns the equivalence label, or DefaultEquivalence when
// the field is absent or not a string.
func (r Record) EquivalenceJudgment() string {
	return r.value.Field(FieldEquivalence).StringOr(DefaultEquivalence)
}

// CodeInfo returns the code/compile judgment recorded for source. Missing
// levels of the nested mapping yield an empty CodeInfo.
func (r Record) CodeInfo(source string) CodeInfo {
	return CodeInfo{value: r.value.Field(FieldCodeCompile).Field(source)}
}

// CodeInfo is the per-source code existence and compile judgment.
type CodeInfo struct {
	value JSONValue
}

// Code returns the "code" judgment or "" when absent.
func (c CodeInfo) Code() string {
	return c.value.Field(FieldCode).StringOr("")
}

// Compile returns the "compile" judgment or "" when absent.
func (c CodeInfo) Compile() string {
	return c.value.Field(FieldCompile).StringOr("")
}
