package track_stream_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/service/stream"
	"tracking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	sink := newSSESink(w)

	err := h.service.Serve(r.Context(), orderID, sink)
	if err == nil {
		return
	}

	if sink.opened {
		// клиент ушел посреди сессии, ответ уже начат
		h.log.Debug("stream session closed",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		return
	}

	switch {
	case errors.Is(err, stream.ErrInvalidOrderID):
		w.WriteHeader(http.StatusBadRequest)
	default:
		h.log.With(
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		).Error("open order stream")
		w.WriteHeader(http.StatusServiceUnavailable)
	}
}
