package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidSignature reports a payment callback whose signature does not
// match the one recomputed from the shared secret. The payment is treated
// as unverified and nothing changes.
var ErrInvalidSignature = errors.New("payment signature mismatch")

// computeSignature renders HMAC-SHA256(secret, orderID + "|" + paymentID)
// as a hex digest. This is the gateway's callback-signing protocol: only
// the gateway and this server know the secret, so a forged order/payment
// pair cannot produce a matching digest.
func computeSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature compares the recomputed digest against the provided one.
func verifySignature(secret, orderID, paymentID, provided string) error {
	if computeSignature(secret, orderID, paymentID) != provided {
		return ErrInvalidSignature
	}
	return nil
}
