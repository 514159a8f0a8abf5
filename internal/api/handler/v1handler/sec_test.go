package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promptparser/internal/api/handler/v1handler"
	"promptparser/pkg/domain"
	"promptparser/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(1*time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: tkn})
	require.NoError(t, err)

	// verify user id stored in context
	v := ctx.Value(v1handler.UserIDKey)
	require.NotNil(t, v, "expected userID in context")
	got, ok := v.(domain.UserID)
	require.True(t, ok, "userID in context has wrong type: %T", v)
	require.Equal(t, domain.UserID(uid), got)
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: tkn})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: tkn})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	// non-UUID subject
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: tkn})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: signed})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_NotConfigured(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), "GetPrompt", v1handler.BearerAuth{Token: "x"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	var got domain.UserID
	h := sh.Authenticate("GetPrompt", func(w http.ResponseWriter, r *http.Request) {
		got = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{name: "valid token", header: "Bearer " + tkn, status: http.StatusNoContent},
		{name: "missing header", status: http.StatusUnauthorized, message: "missing bearer token"},
		{name: "wrong scheme", header: "Basic " + tkn, status: http.StatusUnauthorized, message: "missing bearer token"},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized, message: "missing bearer token"},
		{name: "garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized, message: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = domain.UserID{}
			req := httptest.NewRequest(http.MethodGet, "/v1/prompts/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				require.Equal(t, domain.UserID(uid), got)
			} else {
				require.Equal(t, domain.UserID{}, got)
				require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"`+tt.message+`"}`, rec.Body.String())
			}
		})
	}
}

func TestGetUserIDFromContext_Unauthenticated(t *testing.T) {
	require.Equal(t, domain.UserID{}, v1handler.GetUserIDFromContext(context.Background()))
}
