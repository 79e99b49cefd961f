package aggregate

import "annostat/internal/record"

// judgmentYes is matched exactly: no trimming and no case folding.
const judgmentYes = "Yes"

// EquivalenceCounts tallies equivalence judgments over a corpus.
type EquivalenceCounts struct {
	Equivalent    int `json:"equivalent"`
	NotEquivalent int `json:"not_equivalent"`
}

// Total is the number of records that were counted.
func (c EquivalenceCounts) Total() int {
	return c.Equivalent + c.NotEquivalent
}

// Tuple returns (equivalent, not_equivalent).
func (c EquivalenceCounts) Tuple() [2]int {
	return [2]int{c.Equivalent, c.NotEquivalent}
}

// Equivalence counts records judged equivalent. Anything other than an exact
// "Yes", including a missing field, counts as not equivalent.
func Equivalence(records []record.Record) EquivalenceCounts {
	var counts EquivalenceCounts
	for _, rec := range records {
		if rec.EquivalenceJudgment() == judgmentYes {
			counts.Equivalent++
		} else {
			counts.NotEquivalent++
		}
	}
	return counts
}

// EquivalenceOf checks that value is an array of objects before counting.
func EquivalenceOf(value record.JSONValue) (EquivalenceCounts, error) {
	records, err := record.Records(value)
	if err != nil {
		return EquivalenceCounts{}, err
	}
	return Equivalence(records), nil
}
