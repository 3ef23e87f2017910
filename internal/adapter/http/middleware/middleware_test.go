package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.ErrorCode
}

func signedRequest(body string, ts int64, sig string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(body))
	if sig != "" {
		req.Header.Set(HeaderSignature, sig)
	}
	if ts != 0 {
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	}
	return req
}

func webhookRouter(sigSvc ports.SignatureService, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.POST("/webhooks/payments", WebhookSignature("whsec", sigSvc, zerolog.Nop()), handler)
	return r
}

func TestWebhookSignature_MissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := webhookRouter(mocks.NewMockSignatureService(ctrl), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(`{}`, 0, ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_002", errorCode(t, w))
}

func TestWebhookSignature_EmptySecretRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := gin.New()
	r.POST("/webhooks/payments", WebhookSignature("", mocks.NewMockSignatureService(ctrl), zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(`{}`, time.Now().Unix(), "anything"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookSignature_StaleTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := webhookRouter(mocks.NewMockSignatureService(ctrl), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, ts := range []int64{
		time.Now().Add(-10 * time.Minute).Unix(),
		time.Now().Add(10 * time.Minute).Unix(),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedRequest(`{}`, ts, "abc"))
		assert.Equal(t, "SEC_003", errorCode(t, w))
	}
}

func TestWebhookSignature_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	ts := time.Now().Unix()
	sigSvc.EXPECT().BuildCanonicalString(ts, `{"a":1}`).Return("canonical")
	sigSvc.EXPECT().Verify("whsec", "canonical", "bad").Return(false)

	called := false
	r := webhookRouter(sigSvc, func(c *gin.Context) { called = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(`{"a":1}`, ts, "bad"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestWebhookSignature_BodyRestoredForHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	ts := time.Now().Unix()
	sigSvc.EXPECT().BuildCanonicalString(ts, `{"a":1}`).Return("canonical")
	sigSvc.EXPECT().Verify("whsec", "canonical", "good").Return(true)

	r := webhookRouter(sigSvc, func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.String(http.StatusOK, string(b))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(`{"a":1}`, ts, "good"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"a":1}`, w.Body.String())
}

func TestCarrierToken(t *testing.T) {
	r := gin.New()
	r.POST("/webhooks/carrier", CarrierToken("ghn-token"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "other", http.StatusUnauthorized},
		{"prefix only", "ghn", http.StatusUnauthorized},
		{"valid", "ghn-token", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", nil)
			if tc.token != "" {
				req.Header.Set(HeaderCarrierToken, tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := gin.New()
	r.GET("/admin/x", JWTAuth(mocks.NewMockTokenService(ctrl)), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/admin/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("expired").Return(nil, assert.AnError)

	r := gin.New()
	r.GET("/admin/x", JWTAuth(tokenSvc), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin/x", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", errorCode(t, w))
}

func TestJWTAuth_AdminRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	adminID := uuid.New()
	tokenSvc.EXPECT().Validate("admin-token").Return(&ports.TokenClaims{ActorID: adminID, Role: RoleAdmin}, nil)
	tokenSvc.EXPECT().Validate("support-token").Return(&ports.TokenClaims{ActorID: uuid.New(), Role: "support"}, nil)

	r := gin.New()
	r.GET("/admin/x", JWTAuth(tokenSvc), RequireAdmin(), func(c *gin.Context) {
		id, ok := ActorID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/x", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminID.String(), w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/x", nil)
	req.Header.Set("Authorization", "Bearer support-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_005", errorCode(t, w))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(5))
	r.POST("/test", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too large")
			return
		}
		c.String(http.StatusOK, string(b))
	})
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte("12345"))))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte(strings.Repeat("A", 100)))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_001", errorCode(t, w))
}
