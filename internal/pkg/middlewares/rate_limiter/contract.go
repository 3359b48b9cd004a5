package rate_limiter

import "tracking/pkg/logger"

// Limiter реализуется *rate.Limiter из golang.org/x/time/rate.
type Limiter interface {
	Allow() bool
}

// KeyLimiter ограничивает запросы отдельного клиента.
type KeyLimiter interface {
	Allow(key string) bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
