package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of message keyed by secretKey.
// message must be the canonical query exactly as it goes on the wire,
// without the signature parameter.
func Sign(secretKey, message []byte) string {
	h := hmac.New(sha256.New, secretKey)
	h.Write(message)
	return hex.EncodeToString(h.Sum(nil))
}
