package controller

import (
	"net/http"

	"github.com/go-faster/jx"
)

// WriteError writes a JSON error body of the form {"code": ..., "message": ...}
// with the given status code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	e := jx.Encoder{}
	e.ObjStart()
	e.FieldStart("code")
	e.Str(code)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
