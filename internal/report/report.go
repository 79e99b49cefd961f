// Package report compares the counts of two runs corpus by corpus.
package report

import (
	"sort"

	"annostat/internal/aggregate"
	"annostat/internal/runner"
)

// Rate is a percentage that may be missing from one side of a comparison.
type Rate struct {
	Value float64
	Valid bool
}

// Delta returns head minus base when both sides are present.
func (r Rate) Delta(head Rate) Rate {
	if !r.Valid || !head.Valid {
		return Rate{}
	}
	return Rate{Value: head.Value - r.Value, Valid: true}
}

// Rates are the percentages tracked per corpus.
type Rates struct {
	Equivalent Rate
	// Compiles is compiles/has-code per answer source.
	Compiles map[aggregate.Source]Rate
}

// Row compares one corpus present in either run.
type Row struct {
	Path string
	Base Rates
	Head Rates
	// InBase and InHead report which runs contain the corpus.
	InBase bool
	InHead bool
}

// Comparison lines up two runs by corpus path.
type Comparison struct {
	BaseRunID string
	HeadRunID string
	Rows      []Row
}

// Compare pairs corpora by path; rows are sorted by path.
func Compare(base, head runner.Results) Comparison {
	byPath := make(map[string]*Row)
	order := make([]string, 0, len(base.Corpora)+len(head.Corpora))
	row := func(path string) *Row {
		if existing, ok := byPath[path]; ok {
			return existing
		}
		created := &Row{Path: path}
		byPath[path] = created
		order = append(order, path)
		return created
	}
	for _, corpus := range base.Corpora {
		r := row(corpus.Path)
		r.InBase = true
		r.Base = ratesOf(corpus)
	}
	for _, corpus := range head.Corpora {
		r := row(corpus.Path)
		r.InHead = true
		r.Head = ratesOf(corpus)
	}
	sort.Strings(order)

	comparison := Comparison{BaseRunID: base.RunID, HeadRunID: head.RunID}
	for _, path := range order {
		comparison.Rows = append(comparison.Rows, *byPath[path])
	}
	return comparison
}

func ratesOf(corpus runner.CorpusResult) Rates {
	rates := Rates{Compiles: make(map[aggregate.Source]Rate)}
	if eq := corpus.Equivalence; eq != nil {
		rates.Equivalent = ratio(eq.Equivalent, eq.Total())
	}
	if comp := corpus.Compilation; comp != nil {
		for _, source := range aggregate.Sources() {
			c := comp.For(source)
			rates.Compiles[source] = ratio(c.Compiles, c.HasCode)
		}
	}
	return rates
}

func ratio(count, total int) Rate {
	if total <= 0 {
		return Rate{}
	}
	return Rate{Value: float64(count) / float64(total) * 100, Valid: true}
}
