package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiken-app/shiken/internal/application/subscription/usecases"
	"github.com/shiken-app/shiken/internal/interfaces/http/handlers/testutil"
)

const testWebhookSecret = "wh-secret"

type mockProcessWebhookUC struct {
	err    error
	gotCmd usecases.ProcessWebhookCommand
	called bool
}

func (m *mockProcessWebhookUC) Execute(ctx context.Context, cmd usecases.ProcessWebhookCommand) error {
	m.called = true
	m.gotCmd = cmd
	return m.err
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookContext(body []byte, signature string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func validWebhookBody() []byte {
	return []byte(`{
		"meta": {"event_name": "subscription_created", "custom_data": {"user_id": "42"}},
		"data": {"id": "312608", "attributes": {"status": "active"}}
	}`)
}

func TestWebhookHandler_Success(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, testWebhookSecret, testutil.NewMockLogger())

	body := validWebhookBody()
	c, w := newWebhookContext(body, signBody(testWebhookSecret, body))

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, mockUC.called)
	assert.Equal(t, "subscription_created", mockUC.gotCmd.EventName)
	assert.Equal(t, "42", mockUC.gotCmd.UserID)
	assert.Equal(t, "312608", mockUC.gotCmd.ExternalID)
	assert.Equal(t, "active", mockUC.gotCmd.ProviderStatus)
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, testWebhookSecret, testutil.NewMockLogger())

	body := validWebhookBody()
	c, w := newWebhookContext(body, signBody("other-secret", body))

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called, "state must be untouched on a bad signature")
}

func TestWebhookHandler_MissingSignature(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, testWebhookSecret, testutil.NewMockLogger())

	c, w := newWebhookContext(validWebhookBody(), "")

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestWebhookHandler_TamperedBody(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, testWebhookSecret, testutil.NewMockLogger())

	sig := signBody(testWebhookSecret, validWebhookBody())
	tampered := []byte(`{
		"meta": {"event_name": "subscription_created", "custom_data": {"user_id": "1"}},
		"data": {"id": "312608", "attributes": {"status": "active"}}
	}`)
	c, w := newWebhookContext(tampered, sig)

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestWebhookHandler_MissingSecretFailsClosed(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, "", testutil.NewMockLogger())

	body := validWebhookBody()
	c, w := newWebhookContext(body, signBody("", body))

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestWebhookHandler_UnparseablePayload(t *testing.T) {
	mockUC := &mockProcessWebhookUC{}
	handler := NewWebhookHandler(mockUC, testWebhookSecret, testutil.NewMockLogger())

	body := []byte(`not json`)
	c, w := newWebhookContext(body, signBody(testWebhookSecret, body))

	handler.HandleBillingWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}
