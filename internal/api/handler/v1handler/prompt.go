package v1handler

import (
	"net/http"
	"strconv"

	"promptparser/pkg/domain"
	"promptparser/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// Parse handles POST /v1/parse. It scans the text synchronously and stores nothing.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTextRequest(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	res, err := h.deps.Parser.Parse(r.Context(), req.Text)
	if err != nil {
		respondError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	res.Encode(e)
	writeJSON(w, http.StatusOK, e)
}

// CreatePrompt handles POST /v1/prompts. The prompt is stored as pending and
// parsed in the background.
func (h *Handler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTextRequest(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	prompt, err := h.deps.Parser.Submit(r.Context(), GetUserIDFromContext(r.Context()), req.Text)
	if err != nil {
		respondError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	encodePrompt(e, prompt)
	w.Header().Set("Location", "/v1/prompts/"+prompt.ID.String())
	writeJSON(w, http.StatusAccepted, e)
}

// ListPrompts handles GET /v1/prompts?status=&cursor=&limit=.
func (h *Handler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit uint
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit %q", v))

			return
		}
		limit = uint(n)
	}

	prompts, next, err := h.deps.Parser.UserPrompts(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.PromptStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	encodePromptList(e, prompts, next)
	writeJSON(w, http.StatusOK, e)
}

// GetPrompt handles GET /v1/prompts/{id}.
func (h *Handler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id, err := promptIDFromPath(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	prompt, err := h.deps.Parser.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	encodePrompt(e, prompt)
	writeJSON(w, http.StatusOK, e)
}

// DeletePrompt handles DELETE /v1/prompts/{id}.
func (h *Handler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	id, err := promptIDFromPath(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Parser.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func promptIDFromPath(r *http.Request) (domain.PromptID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.PromptID{}, serrors.With(serrors.ErrBadRequest, "invalid prompt id")
	}

	return domain.PromptID(id), nil
}
