package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"promptparser/internal/config"
	"promptparser/pkg/domain"
	"promptparser/pkg/logger"
	"promptparser/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserIDKey is the context key under which the authenticated domain.UserID is stored.
	UserIDKey CtxKey = "UserID"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key used to verify RS256 tokens.
	// When empty, every authenticated route answers 401.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// BearerAuth holds the token taken from the Authorization header.
type BearerAuth struct {
	Token string
}

type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// HandleBearerAuth verifies the token and stores its subject as the user ID in
// the returned context. The subject must be a UUID.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName string,
	t BearerAuth) (context.Context, error) {
	if s.key == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "authentication is not configured")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()), zap.String("operation", operationName))

	return ctx, nil
}

// Authenticate wraps next so it only runs for requests carrying a valid
// "Authorization: Bearer <token>" header.
func (s SecHandler) Authenticate(operationName string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			respondError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), operationName, BearerAuth{Token: token})
		if err != nil {
			respondError(w, r, err)

			return
		}

		next(w, r.WithContext(ctx))
	}
}

// GetUserIDFromContext returns the user ID stored by HandleBearerAuth, or the
// zero UserID when the request is not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
