package payments_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tazhibayda/jewel-service/internal/payments"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "key_secret"
	sig := sign("order_1", "pay_1", secret)

	if !payments.VerifySignature("order_1", "pay_1", sig, secret) {
		t.Fatal("valid signature rejected")
	}
	if payments.VerifySignature("order_2", "pay_1", sig, secret) {
		t.Fatal("mutated order id accepted")
	}
	if payments.VerifySignature("order_1", "pay_2", sig, secret) {
		t.Fatal("mutated payment id accepted")
	}
	mutated := "0" + sig[1:]
	if mutated == sig {
		mutated = "1" + sig[1:]
	}
	if payments.VerifySignature("order_1", "pay_1", mutated, secret) {
		t.Fatal("mutated signature accepted")
	}
	if payments.VerifySignature("order_1", "pay_1", sig, "other_secret") {
		t.Fatal("wrong secret accepted")
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "key_secret" {
			t.Errorf("bad basic auth: %q %q", user, pass)
		}
		var in struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if in.Amount != 50000 {
			t.Errorf("amount must be in paise, got %d", in.Amount)
		}
		if in.Currency != "INR" || in.Receipt == "" {
			t.Errorf("bad order payload: %+v", in)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "order_x1", "amount": in.Amount, "currency": "INR",
			"receipt": in.Receipt, "status": "created",
		})
	}))
	defer srv.Close()

	g := payments.NewGateway("rzp_test_key", "key_secret")
	g.BaseURL = srv.URL

	o, err := g.CreateOrder(context.Background(), 500)
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != "order_x1" || o.Amount != 50000 || o.Status != "created" {
		t.Fatalf("order mismatch: %+v", o)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := payments.NewGateway("k", "s")
	g.BaseURL = srv.URL
	if _, err := g.CreateOrder(context.Background(), 100); err == nil {
		t.Fatal("gateway failure not surfaced")
	}
}
