package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
)

// ComputeSignature returns the hex SHA512 digest Midtrans puts on webhook
// notifications: SHA512(order_id + status_code + gross_amount + server_key).
func ComputeSignature(orderId, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderId + statusCode + grossAmount + serverKey))
	return fmt.Sprintf("%x", sum)
}

// ValidSignature reports whether the signature on a webhook notification
// matches the expected digest. Constant-time compare.
func ValidSignature(orderId, statusCode, grossAmount, serverKey, signatureKey string) bool {
	expected := ComputeSignature(orderId, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}
