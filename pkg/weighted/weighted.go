// Package weighted parses prompt text annotated with inline emphasis markup.
//
// A term is either a parenthesized group, e.g. "(blue sky)", or a bare word,
// e.g. "cat". A term followed immediately by a modifier is annotated:
//
//	cat++          weight 1.1^2
//	(blue sky)--   weight 0.9^2
//	(blue sky)1.5  weight 1.5
//
// Parse removes the markup, unescapes "\(" and "\)" and reports every
// annotated term together with its weight and its location in the cleaned
// text. The package holds no state; all functions are safe for concurrent use.
package weighted

import (
	"strings"
	"unicode/utf8"
)

// Phrase is a single annotated term resolved against the cleaned text.
type Phrase struct {
	// Text is the term with surrounding whitespace trimmed.
	Text string `json:"text" yaml:"text"`
	// Weight is the resolved weight rounded to 15 decimal places.
	Weight float64 `json:"weight" yaml:"weight"`
	// Position is the offset of Text in the cleaned text, in characters.
	Position int `json:"position" yaml:"position"`
	// Offset is the offset of Text in the cleaned text, in bytes.
	Offset int `json:"offset" yaml:"offset"`
}

// Result is the outcome of Parse. Phrases, Weights, Positions and Offsets
// are index aligned and never nil.
type Result struct {
	// CleanedText is the input with all markup removed and escapes resolved.
	CleanedText string
	// Phrases holds the annotated terms in source order.
	Phrases []string
	// Weights holds the resolved weight of each phrase.
	Weights []float64
	// Positions holds the character offset of each phrase in CleanedText.
	// They are measured after escapes collapse, so every escape pair before
	// a phrase moves it one character left of where it sits in the input:
	// for `\(x\) cat++` the position of "cat" is 4, not 6.
	Positions []int
	// Offsets holds the byte offset of each phrase in CleanedText, shifted
	// for collapsed escapes the same way as Positions.
	Offsets []int
}

// Len returns the number of annotated phrases.
func (r Result) Len() int { return len(r.Phrases) }

// Phrase returns the i-th phrase. It panics if i is out of range.
func (r Result) Phrase(i int) Phrase {
	return Phrase{
		Text:     r.Phrases[i],
		Weight:   r.Weights[i],
		Position: r.Positions[i],
		Offset:   r.Offsets[i],
	}
}

// Resolved returns all phrases as Phrase values.
func (r Result) Resolved() []Phrase {
	out := make([]Phrase, r.Len())
	for i := range out {
		out[i] = r.Phrase(i)
	}

	return out
}

// Parse scans text left to right and resolves every annotated term.
//
// Unannotated text is copied through unchanged. Parse never fails: text
// without markup yields CleanedText == Unescape(text) and no phrases.
func Parse(text string) Result {
	res := Result{
		Phrases:   []string{},
		Weights:   []float64{},
		Positions: []int{},
		Offsets:   []int{},
	}

	var b strings.Builder
	b.Grow(len(text))

	// cursor counts characters written to b so far.
	cursor, last := 0, 0
	for _, span := range Find(text) {
		literal := text[last:span.Start]
		b.WriteString(literal)
		cursor += utf8.RuneCountInString(literal)

		term := strings.TrimFunc(span.Term, isSpace)
		res.Phrases = append(res.Phrases, term)
		res.Weights = append(res.Weights, weightOf(span.Modifier))
		res.Positions = append(res.Positions, cursor)
		res.Offsets = append(res.Offsets, b.Len())

		b.WriteString(term)
		cursor += utf8.RuneCountInString(term)
		last = span.End
	}
	b.WriteString(text[last:])

	res.CleanedText = unescape(b.String(), res.Positions, res.Offsets)

	return res
}

// Unescape replaces every "\(" with "(" and every "\)" with ")".
func Unescape(s string) string {
	return unescape(s, nil, nil)
}

// unescape collapses escaped parentheses in s. Every collapsed pair removes
// one character and one byte, so positions and offsets recorded against s
// are shifted by the number of pairs collapsed before them. Both slices must
// be sorted and are modified in place.
func unescape(s string, positions, offsets []int) string {
	if !strings.Contains(s, `\(`) && !strings.Contains(s, `\)`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	next, removed := 0, 0
	shift := func(upTo int) {
		for next < len(offsets) && offsets[next] <= upTo {
			positions[next] -= removed
			offsets[next] -= removed
			next++
		}
	}

	for i := 0; i < len(s); i++ {
		shift(i)
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '(' || s[i+1] == ')') {
			b.WriteByte(s[i+1])
			removed++
			i++

			continue
		}
		b.WriteByte(s[i])
	}
	shift(len(s))

	return b.String()
}
