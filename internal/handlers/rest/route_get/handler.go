package route_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP: отсутствие плана - 200 с "plan": null.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driverId"]

	plan, err := h.service.LatestForDriver(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrPlanNotFound):
			plan = nil
		case errors.Is(err, route.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
			h.log.With(
				logger.NewField("driver", driverID),
				logger.NewField("error", err),
			).Error("latest route plan")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	response := dto.DriverRoute{
		DriverID: driverID,
		Plan:     dto.FromRoutePlan(plan),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
