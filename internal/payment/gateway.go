package payment

import (
	"context"
	"errors"
)

// 署名検証に失敗した（または検証できない）とき。状態は一切変えないこと。
var ErrInvalidSignature = errors.New("invalid signature")

// プロバイダ呼び出し自体が失敗したとき。
var ErrGateway = errors.New("gateway error")

// 決済セッションに載せる明細。金額はマイナー通貨単位（セント）。
type LineItem struct {
	Title      string
	PriceCents int64
	Quantity   int64
}

// プロバイダ側で作られた決済セッション。
type Session struct {
	ID  string
	URL string
}

// Webhookでプロバイダから届くイベント。
type Event struct {
	ID        string
	Type      string
	SessionID string
}

// チェックアウト完了イベントのタイプ。
const EventCheckoutCompleted = "checkout.session.completed"

// 外部決済プロバイダとの境界。
// セッション作成と非同期通知の検証・復号だけを約束する。
type Gateway interface {
	CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string, metadata map[string]string) (Session, error)

	// 署名が正しければイベントを返す。正しくなければErrInvalidSignature。
	// 比較は定数時間で行うこと（プロバイダ契約）。
	VerifyAndParse(payload []byte, sigHeader string) (Event, error)
}
