package stream

import (
	"fmt"
	"sync"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type State int

const (
	StateConnecting State = iota
	StateCatchingUp
	StateStreaming
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateCatchingUp:
		return "catching_up"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// session сериализует записи в sink: heartbeat и forward пишут из разных горутин.
type session struct {
	mu    sync.Mutex
	sink  Sink
	log   logger.Logger
	state State
}

func (s *session) transit(next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()

	s.log.Debug("stream session state",
		logger.NewField("from", prev.String()),
		logger.NewField("to", next.String()),
	)
}

func (s *session) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sink.Open(); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return nil
}

func (s *session) sendPosition(report entities.PositionReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sink.SendPosition(report); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	EventsSentTotal.WithLabelValues("position").Inc()
	return nil
}

func (s *session) sendHeartbeat(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sink.SendHeartbeat(now); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	EventsSentTotal.WithLabelValues("heartbeat").Inc()
	return nil
}
