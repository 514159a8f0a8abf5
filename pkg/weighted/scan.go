package weighted

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Form tells which syntax introduced an annotated term.
type Form int

const (
	// FormParenthesized is a term written as "(some words)" followed by a modifier.
	FormParenthesized Form = iota + 1
	// FormBareWord is a single run of word characters followed by a modifier.
	FormBareWord
)

// String returns a human-readable name of the form.
func (f Form) String() string {
	switch f {
	case FormParenthesized:
		return "parenthesized"
	case FormBareWord:
		return "bare-word"
	default:
		return "unknown"
	}
}

// Span is an annotated term as it appears in the source text.
type Span struct {
	// Form is the syntax the term was written in.
	Form Form
	// Term is the raw term text, without parentheses and not trimmed.
	Term string
	// Modifier is the raw modifier: a run of '+'/'-' or a decimal literal.
	Modifier string
	// Start and End are the byte offsets of the whole match in the source.
	// The boundary character following the modifier is not included.
	Start, End int
}

// boundaryPunct lists the punctuation allowed right after a modifier.
const boundaryPunct = ",.;:!?)"

// Find returns the annotated spans of text in source order. Matches are
// leftmost-first and never overlap; at a given position the parenthesized
// form is preferred over the bare-word form.
func Find(text string) []Span {
	var spans []Span

	s := scanner{src: text}
	for i := 0; i < len(text); {
		if span, ok := s.matchAt(i); ok {
			spans = append(spans, span)
			i = span.End

			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}

	return spans
}

// scanner matches annotated spans in src. All indexes are byte offsets.
type scanner struct {
	src string
}

func (s scanner) matchAt(i int) (Span, bool) {
	if span, ok := s.parenthesized(i); ok {
		return span, true
	}

	return s.bareWord(i)
}

// parenthesized matches "(term)modifier" at i. The opening parenthesis must
// not be escaped and the term must be non-empty and free of parentheses.
func (s scanner) parenthesized(i int) (Span, bool) {
	src := s.src
	if src[i] != '(' || (i > 0 && src[i-1] == '\\') {
		return Span{}, false
	}

	closing := i + 1
	for closing < len(src) && src[closing] != '(' && src[closing] != ')' {
		closing++
	}
	if closing == len(src) || src[closing] == '(' || closing == i+1 {
		return Span{}, false
	}

	end, ok := s.modifier(closing + 1)
	if !ok {
		return Span{}, false
	}

	return Span{
		Form:     FormParenthesized,
		Term:     src[i+1 : closing],
		Modifier: src[closing+1 : end],
		Start:    i,
		End:      end,
	}, true
}

// bareWord matches "word modifier" at i. The word must start on a word
// boundary and extends over every following word character.
func (s scanner) bareWord(i int) (Span, bool) {
	src := s.src
	r, size := utf8.DecodeRuneInString(src[i:])
	if !isWord(r) {
		return Span{}, false
	}
	if i > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(src[:i]); isWord(prev) {
			return Span{}, false
		}
	}

	wordEnd := i + size
	for wordEnd < len(src) {
		r, size = utf8.DecodeRuneInString(src[wordEnd:])
		if !isWord(r) {
			break
		}
		wordEnd += size
	}

	end, ok := s.modifier(wordEnd)
	if !ok {
		return Span{}, false
	}

	return Span{
		Form:     FormBareWord,
		Term:     src[i:wordEnd],
		Modifier: src[wordEnd:end],
		Start:    i,
		End:      end,
	}, true
}

// modifier matches a modifier starting at i and returns its end. The
// alternatives are tried in order and each must be followed by a boundary:
//
//  1. a run of '+' and '-' characters;
//  2. a decimal literal: optional sign, digits, optional '.' and digits,
//     with at least one digit after the dot or, without a dot, at least one
//     digit overall. Digits are any Unicode decimal digits (category Nd).
//
// When the fractional form is not followed by a boundary, the integer part
// alone is still accepted if the '.' after it is one.
func (s scanner) modifier(i int) (int, bool) {
	src := s.src

	run := i
	for run < len(src) && isSign(src[run]) {
		run++
	}
	if run > i && s.boundary(run) {
		return run, true
	}

	digits := i
	if digits < len(src) && isSign(src[digits]) {
		digits++
	}
	intEnd := s.digits(digits)

	if intEnd < len(src) && src[intEnd] == '.' {
		fracEnd := s.digits(intEnd + 1)
		if fracEnd > intEnd+1 && s.boundary(fracEnd) {
			return fracEnd, true
		}
	}

	if intEnd > digits && s.boundary(intEnd) {
		return intEnd, true
	}

	return 0, false
}

// digits returns the end of the run of decimal digits starting at i.
func (s scanner) digits(i int) int {
	for i < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[i:])
		if !unicode.IsDigit(r) {
			break
		}
		i += size
	}

	return i
}

// boundary reports whether a modifier may end at i without consuming the
// character found there.
func (s scanner) boundary(i int) bool {
	if i >= len(s.src) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s.src[i:])

	return isSpace(r) || strings.ContainsRune(boundaryPunct, r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace reports Unicode white space, including the ASCII information
// separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isSign(b byte) bool { return b == '+' || b == '-' }

// digitValue returns the value of the decimal digit r. Unicode encodes every
// decimal digit set as a contiguous run from zero to nine, so the value is the
// distance to the start of the run modulo ten.
func digitValue(r rune) int {
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}

	return int(r-start) % 10
}
