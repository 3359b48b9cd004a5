package position_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/handlers/rest/dto"
	"tracking/internal/service/tracking"
	"tracking/pkg/logger"
)

const idempotencyHeader = "Idempotency-Key"

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

	var positionDTO dto.PositionCreate
	err := json.NewDecoder(r.Body).Decode(&positionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	in := dto.ToPositionIngest(orderID, positionDTO, r.Header.Get(idempotencyHeader))

	ack, err := h.service.Ingest(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrMissingRequiredFields),
			errors.Is(err, tracking.ErrInvalidOrderID),
			errors.Is(err, tracking.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			).Error("ingest position")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromIngestAck(*ack))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
