package track_stream_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"tracking/internal/entities"
	"tracking/internal/handlers/rest/dto"
)

const (
	eventPosition  = "position"
	eventHeartbeat = "heartbeat"
)

// sseSink пишет text/event-stream. Заголовки уходят только в Open,
// до этого хендлер еще может ответить кодом ошибки.
type sseSink struct {
	w      http.ResponseWriter
	rc     *http.ResponseController
	opened bool
}

func newSSESink(w http.ResponseWriter) *sseSink {
	return &sseSink{
		w:  w,
		rc: http.NewResponseController(w),
	}
}

func (s *sseSink) Open() error {
	// WriteTimeout сервера не должен обрывать долгую сессию
	if err := s.rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return fmt.Errorf("reset write deadline: %w", err)
	}

	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
	s.opened = true

	return s.rc.Flush()
}

func (s *sseSink) SendPosition(report entities.PositionReport) error {
	payload, err := json.Marshal(dto.FromPosition(report))
	if err != nil {
		return fmt.Errorf("marshal position event: %w", err)
	}
	return s.write(eventPosition, payload)
}

func (s *sseSink) SendHeartbeat(serverTime time.Time) error {
	payload, err := json.Marshal(dto.FromHeartbeat(serverTime))
	if err != nil {
		return fmt.Errorf("marshal heartbeat event: %w", err)
	}
	return s.write(eventHeartbeat, payload)
}

func (s *sseSink) write(event string, payload []byte) error {
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return s.rc.Flush()
}
