package v1handler

import (
	"context"
	"errors"
	"net/http"

	"promptparser/internal/parser"
	"promptparser/pkg/controller"
	"promptparser/pkg/logger"
	"promptparser/pkg/serrors"

	"go.uber.org/zap"
)

// Deps groups the services used by the v1 handlers.
type Deps struct {
	Parser parser.Parser
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register adds the v1 routes to mux. Routes under /v1/prompts require a
// bearer token verified by sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/parse", h.Parse)
	mux.HandleFunc("POST /v1/prompts", sec.Authenticate("CreatePrompt", h.CreatePrompt))
	mux.HandleFunc("GET /v1/prompts", sec.Authenticate("ListPrompts", h.ListPrompts))
	mux.HandleFunc("GET /v1/prompts/{id}", sec.Authenticate("GetPrompt", h.GetPrompt))
	mux.HandleFunc("DELETE /v1/prompts/{id}", sec.Authenticate("DeletePrompt", h.DeletePrompt))
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status code.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to an HTTP status code and error body. Errors without a
// known kind are logged and reported as internal errors without details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}

	m, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = m.message
	}

	return &ErrorStatusCode{
		StatusCode: m.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

// respondError writes err as a JSON error response.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	controller.WriteError(w, res.StatusCode, res.Response.Code, res.Response.Message)
}
