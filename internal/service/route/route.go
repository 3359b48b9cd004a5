package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Service struct {
	log      logger.Logger
	stops    OpenStopsProvider
	opt      Optimizer
	plans    PlanStore
	sink     NotificationSink
	detector DeviationDetector
	inflight singleflight.Group
	now      func() time.Time
}

func New(
	log logger.Logger,
	stops OpenStopsProvider,
	opt Optimizer,
	plans PlanStore,
	sink NotificationSink,
	detector DeviationDetector,
) *Service {
	return &Service{
		log:      log.With(logger.NewField("service", "route")),
		stops:    stops,
		opt:      opt,
		plans:    plans,
		sink:     sink,
		detector: detector,
		now:      time.Now,
	}
}

// Replan строит и сохраняет новый план по открытым стопам водителя.
// Ошибка уведомления только логируется, сохраненный план не откатывается.
func (s *Service) Replan(ctx context.Context, req entities.ReplanRequest) (*entities.RoutePlan, error) {
	if !isValidID(req.DriverID) {
		return nil, ErrInvalidDriverID
	}
	if req.Trigger == "" {
		req.Trigger = entities.TriggerManual
	}

	start := time.Now()
	defer func() {
		ReplanDuration.WithLabelValues(req.Trigger.String()).Observe(time.Since(start).Seconds())
	}()

	stops, err := s.stops.GetOpenStopsForDriver(ctx, req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("get open stops: %w", err)
	}
	if len(stops) == 0 {
		return nil, ErrNoOpenStops
	}

	var startLocation *entities.Location
	location, err := s.stops.GetDriverLocation(ctx, req.DriverID)
	switch {
	case err == nil:
		startLocation = location
	case errors.Is(err, ErrDriverLocationUnknown):
	default:
		return nil, fmt.Errorf("get driver location: %w", err)
	}

	optimized := s.opt.Optimize(ctx, entities.OptimizeRequest{
		DriverID: req.DriverID,
		Start:    startLocation,
		Stops:    stops,
	})

	plan := entities.RoutePlan{
		ID:              uuid.NewString(),
		DriverID:        req.DriverID,
		OrderID:         req.OrderID,
		Stops:           optimized.Stops,
		TotalDistanceKm: optimized.TotalDistanceKm,
		Provider:        optimized.Provider,
		RawResponse:     optimized.RawResponse,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save route plan: %w", err)
	}
	ReplanTotal.WithLabelValues(req.Trigger.String(), plan.Provider.String()).Inc()

	planLog := s.log.With(
		logger.NewField("driver", plan.DriverID),
		logger.NewField("plan", plan.ID),
		logger.NewField("provider", plan.Provider.String()),
		logger.NewField("trigger", req.Trigger.String()),
	)

	if err := s.sink.RouteReplanned(ctx, plan, req.Trigger); err != nil {
		NotifyFailedTotal.Inc()
		planLog.Warn("route replanned notification failed", logger.NewField("error", err))
	}

	planLog.Info("route replanned",
		logger.NewField("stops", len(plan.Stops)),
		logger.NewField("distance_km", plan.TotalDistanceKm),
	)
	return &plan, nil
}

// OnPosition сверяет пинг с последним планом и при отклонении запускает Replan.
// Одновременные отклонения одного водителя схлопываются в один пересчет.
func (s *Service) OnPosition(ctx context.Context, report entities.PositionReport) error {
	plan, err := s.plans.LatestForDriver(ctx, report.DriverID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil
		}
		return fmt.Errorf("latest route plan: %w", err)
	}

	if distance, ok := s.detector.Evaluate(report, plan); ok {
		DeviationDistanceKm.Observe(distance)
	}
	if !s.detector.ShouldReplan(report, plan) {
		return nil
	}

	_, err, _ = s.inflight.Do(report.DriverID, func() (any, error) {
		return s.Replan(ctx, entities.ReplanRequest{
			DriverID: report.DriverID,
			OrderID:  report.OrderID,
			Trigger:  entities.TriggerDeviation,
		})
	})
	if errors.Is(err, ErrNoOpenStops) {
		return nil
	}
	return err
}

// LatestForDriver - актуальный план водителя или ErrPlanNotFound.
func (s *Service) LatestForDriver(ctx context.Context, driverID string) (*entities.RoutePlan, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	plan, err := s.plans.LatestForDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("latest route plan: %w", err)
	}
	return plan, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (*entities.RoutePlan, error) {
	if !isValidPlanID(id) {
		return nil, ErrInvalidPlanID
	}

	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route plan: %w", err)
	}
	return plan, nil
}
