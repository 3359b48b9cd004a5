// Package fanout описывает live-рассылку позиций подписчикам заказа.
// Доставка best-effort: без хранения, медленный подписчик теряет события.
package fanout

import (
	"errors"

	"tracking/internal/entities"
)

const channelPrefix = "tracking:order:"

var ErrBusClosed = errors.New("fan-out bus closed")

// Subscription отдает события до Close. Канал закрывается при Close или остановке шины.
type Subscription interface {
	Events() <-chan entities.PositionReport
	Close() error
}

// Channel - имя канала заказа в брокере.
func Channel(orderID string) string {
	return channelPrefix + orderID
}
