package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pay "storefront/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func signPayload(secret string, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStripeGateway_VerifyAndParse_Valid(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	g := NewStripeGateway("sk_test", testSecret)
	g.now = fixedClock(now)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_test_123"}}}`)
	header := signPayload(testSecret, now.Unix(), payload)

	ev, err := g.VerifyAndParse(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, pay.EventCheckoutCompleted, ev.Type)
	assert.Equal(t, "cs_test_123", ev.SessionID)
}

func TestStripeGateway_VerifyAndParse_WrongSecret(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	g := NewStripeGateway("sk_test", testSecret)
	g.now = fixedClock(now)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	header := signPayload("whsec_other", now.Unix(), payload)

	_, err := g.VerifyAndParse(payload, header)
	assert.ErrorIs(t, err, pay.ErrInvalidSignature)
}

func TestStripeGateway_VerifyAndParse_TamperedPayload(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	g := NewStripeGateway("sk_test", testSecret)
	g.now = fixedClock(now)

	payload := []byte(`{"id":"evt_1"}`)
	header := signPayload(testSecret, now.Unix(), payload)

	_, err := g.VerifyAndParse([]byte(`{"id":"evt_2"}`), header)
	assert.ErrorIs(t, err, pay.ErrInvalidSignature)
}

// 許容幅（5分）を超えた古い通知はリプレイ扱い
func TestStripeGateway_VerifyAndParse_StaleTimestamp(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	g := NewStripeGateway("sk_test", testSecret)
	g.now = fixedClock(now)

	payload := []byte(`{"id":"evt_1"}`)
	header := signPayload(testSecret, now.Add(-6*time.Minute).Unix(), payload)

	_, err := g.VerifyAndParse(payload, header)
	assert.ErrorIs(t, err, pay.ErrInvalidSignature)
}

// シークレット未設定ならfail closed
func TestStripeGateway_VerifyAndParse_NoSecret(t *testing.T) {
	g := NewStripeGateway("sk_test", "")

	payload := []byte(`{"id":"evt_1"}`)
	header := signPayload(testSecret, time.Now().Unix(), payload)

	_, err := g.VerifyAndParse(payload, header)
	assert.ErrorIs(t, err, pay.ErrInvalidSignature)
}

func TestStripeGateway_VerifyAndParse_MalformedHeader(t *testing.T) {
	g := NewStripeGateway("sk_test", testSecret)

	_, err := g.VerifyAndParse([]byte(`{}`), "not a signature header")
	assert.ErrorIs(t, err, pay.ErrInvalidSignature)
}

func TestStripeGateway_CreateSession_SendsFormAndParsesResponse(t *testing.T) {
	var gotAuth, gotIdem string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotIdem = r.Header.Get("Idempotency-Key")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_123","url":"https://checkout.example/cs_test_123"}`)
	}))
	defer srv.Close()

	g := NewStripeGateway("sk_test", testSecret)
	g.baseURL = srv.URL

	session, err := g.CreateSession(context.Background(),
		[]pay.LineItem{{Title: "Wireless Premium Headphones", PriceCents: 29999, Quantity: 2}},
		"http://localhost:5173/?success=true",
		"http://localhost:5173/?canceled=true",
		map[string]string{"orderId": "42"},
	)
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.example/cs_test_123", session.URL)

	assert.Equal(t, "Bearer sk_test", gotAuth)
	assert.NotEmpty(t, gotIdem)
	assert.Equal(t, "payment", gotForm["mode"][0])
	assert.Equal(t, "42", gotForm["metadata[orderId]"][0])
	assert.Equal(t, "usd", gotForm["line_items[0][price_data][currency]"][0])
	assert.Equal(t, "Wireless Premium Headphones", gotForm["line_items[0][price_data][product_data][name]"][0])
	assert.Equal(t, "29999", gotForm["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "2", gotForm["line_items[0][quantity]"][0])
}

func TestStripeGateway_CreateSession_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"message":"Your card was declined."}}`)
	}))
	defer srv.Close()

	g := NewStripeGateway("sk_test", testSecret)
	g.baseURL = srv.URL

	_, err := g.CreateSession(context.Background(), nil, "s", "c", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, pay.ErrGateway)
	assert.Contains(t, err.Error(), "Your card was declined.")
}
