package core

import "strings"

// Query is an immutable search query: an ordered sequence of terms, an
// optional exact-phrase flag and an optional channel constraint. Refinement
// returns a new Query; nothing mutates in place.
type Query struct {
	terms   []string
	exact   bool
	channel string
}

// NewQuery builds a Query from raw input. A "channel:<name>" token anywhere
// in the input is lifted into the channel constraint instead of being kept
// as a literal term; the encoder puts it back in the form the endpoint
// expects.
func NewQuery(raw string) Query {
	var q Query
	for _, tok := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(tok, "channel:"); ok && name != "" {
			q.channel = name
			continue
		}
		q.terms = append(q.terms, tok)
	}
	return q
}

// NewExactQuery builds a Query whose terms are matched as one exact phrase.
func NewExactQuery(raw string) Query {
	q := NewQuery(strings.Trim(raw, `"`))
	q.exact = true
	return q
}

// Refine returns a new Query with the extra terms appended in order. Terms
// are never deduplicated: refinement is additive.
func (q Query) Refine(extra string) Query {
	refined := Query{
		terms:   append(append([]string(nil), q.terms...), strings.Fields(extra)...),
		exact:   q.exact,
		channel: q.channel,
	}
	return refined
}

// WithChannel returns a copy of the query constrained to a channel.
func (q Query) WithChannel(name string) Query {
	q.channel = name
	return q
}

// Terms returns a copy of the ordered term list.
func (q Query) Terms() []string {
	return append([]string(nil), q.terms...)
}

// Exact reports whether the terms form one exact phrase.
func (q Query) Exact() bool {
	return q.exact
}

// Channel returns the channel constraint, empty when unset.
func (q Query) Channel() string {
	return q.channel
}

// String returns the terms joined with single spaces.
func (q Query) String() string {
	return strings.Join(q.terms, " ")
}

// IsEmpty reports whether there is nothing to search for: no terms and no
// channel constraint.
func (q Query) IsEmpty() bool {
	return len(q.terms) == 0 && q.channel == ""
}
