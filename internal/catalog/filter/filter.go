// Package filter turns catalog query parameters into a store-agnostic predicate tree.
//
// Stores translate the tree into their own query language; the in-memory store
// evaluates it directly with Matches.
package filter

import (
	"strings"
	"unicode"
)

// Criteria are the optional narrowing parameters of a property query.
type Criteria struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

// Predicate is a node of the filter tree.
type Predicate interface {
	predicate()
}

// MatchAll matches every document.
type MatchAll struct{}

// Text is a free-text search over the indexed name and address fields.
type Text struct {
	Term string
}

// Op is a comparison operator for Range.
type Op string

const (
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Range compares a numeric field against a bound.
type Range struct {
	Field string
	Op    Op
	Value float64
}

// And matches when every child matches.
type And struct {
	Children []Predicate
}

func (MatchAll) predicate() {}
func (Text) predicate()     {}
func (Range) predicate()    {}
func (And) predicate()      {}

// PriceField is the stored field compared by price bounds.
const PriceField = "price"

// Build maps criteria to a predicate tree. Name and address are combined into
// one text term, so supplying both searches their joined words rather than
// each field separately. No criteria yields MatchAll.
func Build(c Criteria) Predicate {
	var preds []Predicate
	if c.Name != "" || c.Address != "" {
		if term := strings.TrimSpace(c.Name + " " + c.Address); term != "" {
			preds = append(preds, Text{Term: term})
		}
	}
	if c.MinPrice != nil {
		preds = append(preds, Range{Field: PriceField, Op: OpGte, Value: *c.MinPrice})
	}
	if c.MaxPrice != nil {
		preds = append(preds, Range{Field: PriceField, Op: OpLte, Value: *c.MaxPrice})
	}

	switch len(preds) {
	case 0:
		return MatchAll{}
	case 1:
		return preds[0]
	default:
		return And{Children: preds}
	}
}

// Document is what Matches needs to know about a stored item.
type Document interface {
	SearchText() []string
	Number(field string) (float64, bool)
}

// Matches evaluates p against doc. Text predicates match when any word of the
// term equals a word of the document's search text, ignoring case.
func Matches(p Predicate, doc Document) bool {
	switch p := p.(type) {
	case MatchAll:
		return true
	case Text:
		return matchesText(p.Term, doc.SearchText())
	case Range:
		v, ok := doc.Number(p.Field)
		if !ok {
			return false
		}
		switch p.Op {
		case OpGte:
			return v >= p.Value
		case OpLte:
			return v <= p.Value
		}
		return false
	case And:
		for _, child := range p.Children {
			if !Matches(child, doc) {
				return false
			}
		}
		return true
	}
	return false
}

func matchesText(term string, fields []string) bool {
	words := make(map[string]struct{})
	for _, f := range fields {
		for _, w := range Tokenize(f) {
			words[w] = struct{}{}
		}
	}
	for _, w := range Tokenize(term) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// Tokenize splits s into lower-cased words of letters and digits.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
