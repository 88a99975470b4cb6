// internal/app/client/panel.go
package client

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

// Пороговые значения жеста закрытия панели. Двойной порог
// (смещение ИЛИ скорость) позволяет закрыть панель быстрым
// коротким свайпом, не требуя длинного перетаскивания.
const (
	dragStartSlop   = 10.0 // px, меньшее смещение жестом не считается
	dismissDistance = 80.0 // px
	dismissVelocity = 0.5  // px/ms
	actionDelay     = 300 * time.Millisecond
)

// ActionHandler получает data-нагрузку нажатого уведомления.
// Маршрутизация диплинков - ответственность внешнего обработчика.
type ActionHandler func(data map[string]any)

// Panel - панель уведомлений: модальный лист над экраном.
// Машина состояний: hidden -> visible -> hidden; закрытие по свайпу
// вниз за порог, явному закрытию или тапу по подложке. С точки зрения
// журнала меняется только флаг panelVisible.
type Panel struct {
	store  *NotificationStore
	action ActionHandler
	log    *slog.Logger

	// delay отделен от константы ради тестов
	delay time.Duration

	dragging   bool
	dragOffset float64
}

// NewPanel создает панель поверх журнала уведомлений.
func NewPanel(store *NotificationStore, action ActionHandler, log *slog.Logger) *Panel {
	return &Panel{
		store:  store,
		action: action,
		log:    log.With("component", "panel"),
		delay:  actionDelay,
	}
}

// Open показывает панель.
func (p *Panel) Open() {
	p.store.SetPanelVisible(true)
}

// Close скрывает панель.
func (p *Panel) Close() {
	p.dragging = false
	p.dragOffset = 0
	p.store.SetPanelVisible(false)
}

// BackdropTap закрывает панель тапом по подложке.
func (p *Panel) BackdropTap() {
	p.Close()
}

// IsVisible возвращает текущее состояние панели.
func (p *Panel) IsVisible() bool {
	return p.store.IsPanelVisible()
}

// DragMove ведет панель за пальцем один к одному, но только вниз:
// смещение вверх прижимается к открытой позиции.
func (p *Panel) DragMove(dy float64) {
	if !p.store.IsPanelVisible() {
		return
	}

	if !p.dragging {
		if dy <= dragStartSlop {
			return
		}
		p.dragging = true
	}

	if dy < 0 {
		dy = 0
	}
	p.dragOffset = dy
}

// DragRelease завершает жест: панель закрывается, если смещение
// превысило порог дистанции ИЛИ скорость отпускания превысила порог
// скорости; иначе панель возвращается в открытую позицию.
// Возвращает true, если панель закрылась.
func (p *Panel) DragRelease(dy, vy float64) bool {
	p.dragging = false
	p.dragOffset = 0

	if !p.store.IsPanelVisible() {
		return false
	}

	if dy > dismissDistance || vy > dismissVelocity {
		p.store.SetPanelVisible(false)
		return true
	}

	return false
}

// DragOffset возвращает текущее смещение панели во время жеста.
func (p *Panel) DragOffset() float64 {
	return p.dragOffset
}

// Tap обрабатывает нажатие на запись журнала: помечает прочитанной,
// закрывает панель и с небольшой задержкой (чтобы анимация закрытия
// успела начаться) передает data внешнему обработчику диплинков.
func (p *Panel) Tap(ctx context.Context, id string) {
	items := p.store.List()
	var data map[string]any
	found := false
	for i := range items {
		if items[i].ID == id {
			data = items[i].Data
			found = true
			break
		}
	}
	if !found {
		return
	}

	p.store.MarkAsRead(ctx, id)
	p.Close()

	if p.action == nil {
		return
	}
	time.AfterFunc(p.delay, func() {
		p.action(data)
	})
}

// CanMarkAllRead: действие "прочитать все" доступно только при
// наличии непрочитанных.
func (p *Panel) CanMarkAllRead() bool {
	return p.store.UnreadCount() > 0
}

// CanClearAll: действие "очистить" доступно только при непустом журнале.
func (p *Panel) CanClearAll() bool {
	return p.store.Len() > 0
}
