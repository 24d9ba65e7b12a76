package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	secret := "wh-secret"
	body := []byte(`{"meta":{"event_name":"subscription_created"}}`)

	assert.True(t, VerifySignature(secret, body, sign(secret, body)))
}

func TestVerifySignature_ReplayOfSameBodyStillVerifies(t *testing.T) {
	secret := "wh-secret"
	body := []byte(`{"data":{"id":"1"}}`)
	sig := sign(secret, body)

	// The signature scheme has no nonce; idempotency lives in the handlers.
	assert.True(t, VerifySignature(secret, body, sig))
	assert.True(t, VerifySignature(secret, body, sig))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	secret := "wh-secret"
	body := []byte(`{"amount":100}`)
	sig := sign(secret, body)

	assert.False(t, VerifySignature(secret, []byte(`{"amount":999}`), sig))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{}`)
	assert.False(t, VerifySignature("right", body, sign("wrong", body)))
}

func TestVerifySignature_FailsClosed(t *testing.T) {
	body := []byte(`{}`)
	assert.False(t, VerifySignature("", body, sign("", body)), "missing secret rejects everything")
	assert.False(t, VerifySignature("secret", body, ""), "missing signature header")
	assert.False(t, VerifySignature("secret", body, "not-hex"))
}
