package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Gateway is a thin client for the Razorpay orders API. Orders are created
// here; signature verification is a pure local check against the key secret.
type Gateway struct {
	KeyID     string
	KeySecret string
	BaseURL   string

	hc *http.Client
}

func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   "https://api.razorpay.com",
		hc:        &http.Client{Timeout: 10 * time.Second},
	}
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type orderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder registers an order with the gateway. amountMajor is in major
// currency units; the gateway wants the smallest unit (paise), hence ×100.
func (g *Gateway) CreateOrder(ctx context.Context, amountMajor int64) (*Order, error) {
	body, err := json.Marshal(orderReq{
		Amount:   amountMajor * 100,
		Currency: "INR",
		Receipt:  "rcpt_" + uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.KeyID, g.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay: order create status %d", resp.StatusCode)
	}
	var o Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with the
// key secret and compares against the checkout's hex signature in constant
// time. This is the gate in front of payment recording.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Verify checks a signature against this gateway's configured secret.
func (g *Gateway) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.KeySecret)
}
