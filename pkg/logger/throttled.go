package logger

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Throttled пишет предупреждение не чаще одного раза за interval,
// остальные вызовы только считаются и попадают в следующую запись как "suppressed".
type Throttled struct {
	log        Logger
	sometimes  *rate.Sometimes
	suppressed atomic.Int64
}

func NewThrottled(log Logger, interval time.Duration) *Throttled {
	return &Throttled{
		log:       log,
		sometimes: &rate.Sometimes{First: 1, Interval: interval},
	}
}

func (t *Throttled) Warn(msg string, fields ...Field) {
	logged := false
	t.sometimes.Do(func() {
		logged = true
		suppressed := t.suppressed.Swap(0)
		t.log.Warn(msg, append(fields, NewField("suppressed", suppressed))...)
	})
	if !logged {
		t.suppressed.Add(1)
	}
}
