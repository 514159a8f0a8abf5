package weighted

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-faster/errors"
)

const (
	// BoostFactor is the weight multiplier contributed by each '+'.
	BoostFactor = 1.1
	// ReduceFactor is the weight multiplier contributed by each '-'.
	ReduceFactor = 0.9

	// roundingPlaces is the number of decimal places weights are rounded to.
	roundingPlaces = 15
)

// ErrInvalidModifier is returned by ResolveWeight for strings that are not
// modifiers.
var ErrInvalidModifier = errors.New("invalid weight modifier")

// ResolveWeight returns the weight encoded by modifier. The modifier must be
// a run of '+'/'-' characters or a decimal literal, as accepted after a term.
func ResolveWeight(modifier string) (float64, error) {
	s := scanner{src: modifier}
	if end, ok := s.modifier(0); !ok || end != len(modifier) {
		return 0, errors.Wrapf(ErrInvalidModifier, "%q", modifier)
	}

	return weightOf(modifier), nil
}

// weightOf resolves a modifier already accepted by the scanner. Modifiers
// starting with a sign are sign runs: their weight depends on the first
// character and the length in characters only.
func weightOf(modifier string) float64 {
	var w float64
	switch modifier[0] {
	case '+':
		w = math.Pow(BoostFactor, float64(utf8.RuneCountInString(modifier)))
	case '-':
		w = math.Pow(ReduceFactor, float64(utf8.RuneCountInString(modifier)))
	default:
		// the grammar only lets unsigned decimal literals through, so the
		// only possible error is ErrRange, reported with ±Inf.
		w, _ = strconv.ParseFloat(asciiDigits(modifier), 64)
	}

	return round(w)
}

// asciiDigits rewrites the decimal digits of a literal as ASCII digits so
// that literals written in any script parse the same way.
func asciiDigits(literal string) string {
	ascii := true
	for i := 0; i < len(literal); i++ {
		if literal[i] >= utf8.RuneSelf {
			ascii = false

			break
		}
	}
	if ascii {
		return literal
	}

	var b strings.Builder
	b.Grow(len(literal))
	for _, r := range literal {
		if r >= utf8.RuneSelf && unicode.IsDigit(r) {
			r = '0' + rune(digitValue(r))
		}
		b.WriteRune(r)
	}

	return b.String()
}

// round rounds w to roundingPlaces decimal places using the shortest
// correctly rounded decimal representation.
func round(w float64) float64 {
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return w
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(w, 'f', roundingPlaces, 64), 64)
	if err != nil {
		return w
	}

	return r
}
