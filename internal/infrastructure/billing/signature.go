package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks a webhook body against the X-Signature header.
// Lemon Squeezy signs the raw request body with HMAC-SHA256 over the shared
// webhook secret and sends the hex digest. Comparison is constant-time.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
