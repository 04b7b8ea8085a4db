package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pay "storefront/internal/payment"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.stripe.com"

// Webhook署名のタイムスタンプ許容幅（Stripeのデフォルトと同じ5分）
const signatureTolerance = 5 * time.Minute

// Stripe Checkoutのセッション作成とWebhook署名検証。
type StripeGateway struct {
	secretKey     string
	webhookSecret string
	baseURL       string
	httpClient    *http.Client
	now           func() time.Time
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		baseURL:       defaultBaseURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		now:           time.Now,
	}
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *StripeGateway) CreateSession(ctx context.Context, items []pay.LineItem, successURL, cancelURL string, metadata map[string]string) (pay.Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	for i, it := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][product_data][name]", it.Title)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(it.PriceCents, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(it.Quantity, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return pay.Session{}, fmt.Errorf("%w: %v", pay.ErrGateway, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	//再送されても二重にセッションを作らない
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return pay.Session{}, fmt.Errorf("%w: %v", pay.ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pay.Session{}, fmt.Errorf("%w: %v", pay.ErrGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
			return pay.Session{}, fmt.Errorf("%w: %s", pay.ErrGateway, er.Error.Message)
		}
		return pay.Session{}, fmt.Errorf("%w: status %d", pay.ErrGateway, resp.StatusCode)
	}

	var sr sessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return pay.Session{}, fmt.Errorf("%w: %v", pay.ErrGateway, err)
	}
	if sr.ID == "" || sr.URL == "" {
		return pay.Session{}, fmt.Errorf("%w: incomplete session response", pay.ErrGateway)
	}

	return pay.Session{ID: sr.ID, URL: sr.URL}, nil
}

type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// Stripe-Signatureヘッダ（t=...,v1=...）を検証してイベントを返す。
// HMAC-SHA256("<t>.<payload>")をv1と定数時間比較する。
func (g *StripeGateway) VerifyAndParse(payload []byte, sigHeader string) (pay.Event, error) {
	if g.webhookSecret == "" {
		return pay.Event{}, pay.ErrInvalidSignature
	}

	ts, sigs, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return pay.Event{}, pay.ErrInvalidSignature
	}

	//古すぎる（または未来すぎる）通知はリプレイとみなす
	age := g.now().Unix() - ts
	if math.Abs(float64(age)) > signatureTolerance.Seconds() {
		return pay.Event{}, pay.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	ok := false
	for _, s := range sigs {
		if hmac.Equal(expected, s) {
			ok = true
		}
	}
	if !ok {
		return pay.Event{}, pay.ErrInvalidSignature
	}

	var ev webhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return pay.Event{}, fmt.Errorf("%w: %v", pay.ErrGateway, err)
	}

	return pay.Event{
		ID:        ev.ID,
		Type:      ev.Type,
		SessionID: ev.Data.Object.ID,
	}, nil
}

func parseSignatureHeader(header string) (int64, [][]byte, error) {
	var ts int64 = -1
	var sigs [][]byte

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			v, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, err
			}
			ts = v
		case "v1":
			sig, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			sigs = append(sigs, sig)
		}
	}

	if ts < 0 || len(sigs) == 0 {
		return 0, nil, fmt.Errorf("malformed signature header")
	}
	return ts, sigs, nil
}
