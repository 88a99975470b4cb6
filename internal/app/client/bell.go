// internal/app/client/bell.go
package client

import (
	"strconv"
	gosync "sync"
)

// badgeOverflow - текст бейджа при счетчике выше 99.
const badgeOverflow = "99+"

// Bell - индикатор непрочитанных уведомлений. Реагирует только на
// РОСТ счетчика: уменьшение (например, после прочтения) анимацию
// не запускает.
type Bell struct {
	mu        gosync.Mutex
	lastCount int
	onShake   func()
}

// NewBell создает индикатор; onShake вызывается при каждом росте счетчика.
func NewBell(onShake func()) *Bell {
	return &Bell{onShake: onShake}
}

// Update передает индикатору новое значение счетчика.
// Возвращает true, если нужно проиграть анимацию встряхивания.
func (b *Bell) Update(count int) bool {
	b.mu.Lock()
	shake := count > b.lastCount
	b.lastCount = count
	onShake := b.onShake
	b.mu.Unlock()

	if shake && onShake != nil {
		onShake()
	}
	return shake
}

// Badge возвращает текст числового бейджа: пусто при нуле,
// "99+" при переполнении.
func Badge(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > 99:
		return badgeOverflow
	default:
		return strconv.Itoa(count)
	}
}
