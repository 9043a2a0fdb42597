package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"health-record-vault/internal/core/ports"
)

// HMACNotificationSigner implements ports.NotificationSigner. The signature
// is lowercase hex HMAC-SHA256 over METHOD|PATH|TIMESTAMP|NONCE|BODY.
type HMACNotificationSigner struct{}

// NewHMACNotificationSigner creates a signer for owner notifications.
func NewHMACNotificationSigner() *HMACNotificationSigner {
	return &HMACNotificationSigner{}
}

func (HMACNotificationSigner) Sign(secret string, msg ports.SignedMessage) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonicalMessage(msg)))
	return hex.EncodeToString(mac.Sum(nil))
}

// canonicalMessage joins the signed fields with '|'. The method is upper-cased.
func canonicalMessage(msg ports.SignedMessage) string {
	var b strings.Builder
	b.Grow(len(msg.Method) + len(msg.Path) + len(msg.Nonce) + len(msg.Body) + 24)
	b.WriteString(strings.ToUpper(msg.Method))
	b.WriteByte('|')
	b.WriteString(msg.Path)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(msg.Timestamp, 10))
	b.WriteByte('|')
	b.WriteString(msg.Nonce)
	b.WriteByte('|')
	b.Write(msg.Body)
	return b.String()
}
