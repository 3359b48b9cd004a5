package route_replan_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"tracking/internal/entities"
	"tracking/internal/handlers/rest/dto"
	"tracking/internal/service/route"
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

// ServeHTTP: тело необязательно, пустой запрос - пересчет всех стопов водителя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driverId"]

	var replanDTO dto.ReplanRequest
	err := json.NewDecoder(r.Body).Decode(&replanDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	plan, err := h.service.Replan(r.Context(), entities.ReplanRequest{
		DriverID: driverID,
		OrderID:  replanDTO.OrderID,
		Trigger:  entities.TriggerManual,
	})
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrNoOpenStops):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("driver", driverID),
				logger.NewField("error", err),
			).Error("replan route")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromRoutePlan(plan))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
