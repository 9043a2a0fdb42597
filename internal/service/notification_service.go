package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"health-record-vault/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Headers on signed owner notifications.
const (
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
)

const notifyMaxRetries = 2

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OwnerNotification is the JSON body posted to the notification endpoint.
type OwnerNotification struct {
	OwnerID string           `json:"owner_id"`
	Event   ports.OwnerEvent `json:"event"`
}

// HTTPNotifier implements ports.Notifier by posting signed JSON to a
// configured endpoint. An empty endpoint disables delivery.
type HTTPNotifier struct {
	endpoint   string
	secret     string
	signer     ports.NotificationSigner
	httpClient HTTPClient
	retryWait  time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewHTTPNotifier creates a new HTTPNotifier.
func NewHTTPNotifier(endpoint, secret string, signer ports.NotificationSigner, httpClient HTTPClient, log zerolog.Logger) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint:   endpoint,
		secret:     secret,
		signer:     signer,
		httpClient: httpClient,
		retryWait:  200 * time.Millisecond,
		now:        time.Now,
		log:        log,
	}
}

// NotifyOwner posts the event, retrying failed deliveries until ctx expires.
func (n *HTTPNotifier) NotifyOwner(ctx context.Context, ownerID string, event ports.OwnerEvent) error {
	if n.endpoint == "" {
		n.log.Debug().Str("owner_id", ownerID).Msg("notify: no endpoint configured, skipping")
		return nil
	}

	body, err := json.Marshal(OwnerNotification{OwnerID: ownerID, Event: event})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	u, err := url.Parse(n.endpoint)
	if err != nil {
		return fmt.Errorf("parse notification endpoint: %w", err)
	}

	attempt := 0
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(n.retryWait), notifyMaxRetries),
		ctx,
	)
	return backoff.Retry(func() error {
		attempt++
		err := n.deliver(ctx, u, body)
		if err != nil {
			n.log.Warn().Err(err).Str("owner_id", ownerID).Int("attempt", attempt).Msg("notify: delivery failed")
			return err
		}
		n.log.Info().Str("owner_id", ownerID).Str("event", event.Type).Int("attempt", attempt).Msg("notify: delivered successfully")
		return nil
	}, b)
}

func (n *HTTPNotifier) deliver(ctx context.Context, u *url.URL, body []byte) error {
	nonce, err := newNonce()
	if err != nil {
		return backoff.Permanent(err)
	}
	ts := n.now().Unix()
	sig := n.signer.Sign(n.secret, ports.SignedMessage{
		Method:    http.MethodPost,
		Path:      u.Path,
		Timestamp: ts,
		Nonce:     nonce,
		Body:      body,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, sig)
	req.Header.Set(HeaderTimestamp, fmt.Sprintf("%d", ts))
	req.Header.Set(HeaderNonce, nonce)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return backoff.Permanent(fmt.Errorf("notification rejected with status %d", resp.StatusCode))
	}
	return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
}

func newNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return hex.EncodeToString(b), nil
}
