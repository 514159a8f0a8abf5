package domain

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encode writes r as a JSON object. Non-finite weights are written as null.
func (r ParseResult) Encode(e *jx.Encoder) {
	e.ObjStart()

	e.FieldStart("cleanedText")
	e.Str(r.CleanedText)

	e.FieldStart("phrases")
	e.ArrStart()
	for _, p := range r.Phrases {
		e.Str(p)
	}
	e.ArrEnd()

	e.FieldStart("weights")
	e.ArrStart()
	for _, w := range r.Weights {
		if math.IsInf(w, 0) || math.IsNaN(w) {
			e.Null()

			continue
		}
		e.Float64(w)
	}
	e.ArrEnd()

	e.FieldStart("positions")
	encodeInts(e, r.Positions)

	e.FieldStart("offsets")
	encodeInts(e, r.Offsets)

	e.ObjEnd()
}

func encodeInts(e *jx.Encoder, v []int) {
	e.ArrStart()
	for _, n := range v {
		e.Int(n)
	}
	e.ArrEnd()
}

// Decode reads r from a JSON object written by Encode. A null weight decodes
// as +Inf, the only non-finite weight the scanner produces.
func (r *ParseResult) Decode(d *jx.Decoder) error {
	*r = ParseResult{
		Phrases:   []string{},
		Weights:   []float64{},
		Positions: []int{},
		Offsets:   []int{},
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "cleanedText":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"cleanedText\"")
			}
			r.CleanedText = v
		case "phrases":
			if err := d.Arr(func(d *jx.Decoder) error {
				v, err := d.Str()
				if err != nil {
					return err
				}
				r.Phrases = append(r.Phrases, v)

				return nil
			}); err != nil {
				return errors.Wrap(err, "decode field \"phrases\"")
			}
		case "weights":
			if err := d.Arr(func(d *jx.Decoder) error {
				if d.Next() == jx.Null {
					if err := d.Null(); err != nil {
						return err
					}
					r.Weights = append(r.Weights, math.Inf(1))

					return nil
				}
				v, err := d.Float64()
				if err != nil {
					return err
				}
				r.Weights = append(r.Weights, v)

				return nil
			}); err != nil {
				return errors.Wrap(err, "decode field \"weights\"")
			}
		case "positions":
			v, err := decodeInts(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"positions\"")
			}
			r.Positions = v
		case "offsets":
			v, err := decodeInts(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"offsets\"")
			}
			r.Offsets = v
		default:
			return d.Skip()
		}

		return nil
	})
}

func decodeInts(d *jx.Decoder) ([]int, error) {
	out := []int{}
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Int()
		if err != nil {
			return err
		}
		out = append(out, v)

		return nil
	})

	return out, err
}

// Validate checks that the result slices are index aligned.
func (r ParseResult) Validate() error {
	n := len(r.Phrases)
	if len(r.Weights) != n || len(r.Positions) != n || len(r.Offsets) != n {
		return errors.Errorf("misaligned result: %d phrases, %d weights, %d positions, %d offsets",
			n, len(r.Weights), len(r.Positions), len(r.Offsets))
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	r.Encode(&e)

	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	if err := r.Decode(d); err != nil {
		return err
	}

	return r.Validate()
}
