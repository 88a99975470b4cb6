package notification

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// MaxNotifications - максимальная длина журнала уведомлений.
// При вставке сверх лимита самые старые записи вытесняются.
const MaxNotifications = 100

// HistoryKey - ключ в kv-хранилище, под которым лежит сериализованный журнал.
const HistoryKey = "notification_history"

// Известные типы уведомлений. Тип - открытое множество строк:
// незнакомые значения допустимы и обрабатываются как общий случай.
const (
	TypeNewMessage     = "new_message"
	TypeRoomMessage    = "room_message"
	TypeNews           = "news"
	TypeChannelNews    = "channel_news_personal"
	TypeWalletIncoming = "wallet_incoming"
	TypeYatraUpdate    = "yatra_update"
)

// AppNotification - одна запись журнала уведомлений.
// Создается через Store.Add, меняется только переходом isRead false -> true,
// удаляется только полной очисткой журнала.
type AppNotification struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Data       map[string]any `json:"data"`
	ReceivedAt int64          `json:"receivedAt"`
	IsRead     bool           `json:"isRead"`
}

// Input - данные нового уведомления от интеграции push-доставки.
type Input struct {
	Type  string
	Title string
	Body  string
	Data  map[string]any
}

// NewID генерирует идентификатор уведомления: временной префикс плюс
// случайный суффикс. Уникальность не гарантируется, вероятность
// коллизии пренебрежимо мала.
func NewID() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + hex.EncodeToString(suffix)
}
