package v1handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"promptparser/pkg/domain"
	"promptparser/pkg/serrors"

	ferrors "github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// TextRequest is the body of POST /v1/parse and POST /v1/prompts.
type TextRequest struct {
	Text string
}

// Decode reads a TextRequest. The text field is required; unknown fields are ignored.
func (req *TextRequest) Decode(d *jx.Decoder) error {
	seen := false
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "text":
			v, err := d.Str()
			if err != nil {
				return ferrors.Wrap(err, "decode field \"text\"")
			}
			req.Text = v
			seen = true
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return err
	}
	if !seen {
		return ferrors.New("field \"text\" is required")
	}

	return nil
}

// decodeTextRequest reads and validates the request body.
func decodeTextRequest(r *http.Request) (TextRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return TextRequest{}, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", maxErr.Limit)
		}

		return TextRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	var req TextRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		return TextRequest{}, serrors.With(serrors.ErrBadRequest, "invalid request body: %s", err)
	}

	return req, nil
}

func encodePrompt(e *jx.Encoder, p *domain.Prompt) {
	e.ObjStart()

	e.FieldStart("id")
	e.Str(p.ID.String())
	e.FieldStart("text")
	e.Str(p.Text)
	e.FieldStart("status")
	e.Str(string(p.Status))
	if p.Status == domain.PromptStatusCompleted {
		e.FieldStart("result")
		p.Result.Encode(e)
	}
	e.FieldStart("attempts")
	e.UInt(p.Attempts)
	e.FieldStart("createdAt")
	e.Str(p.CreatedAt.Format(time.RFC3339Nano))
	if !p.UpdatedAt.IsZero() {
		e.FieldStart("updatedAt")
		e.Str(p.UpdatedAt.Format(time.RFC3339Nano))
	}

	e.ObjEnd()
}

func encodePromptList(e *jx.Encoder, prompts []domain.Prompt, nextCursor string) {
	e.ObjStart()

	e.FieldStart("items")
	e.ArrStart()
	for i := range prompts {
		encodePrompt(e, &prompts[i])
	}
	e.ArrEnd()

	e.FieldStart("nextCursor")
	if nextCursor == "" {
		e.Null()
	} else {
		e.Str(nextCursor)
	}

	e.ObjEnd()
}

// writeJSON writes the encoder content with the given status code.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
