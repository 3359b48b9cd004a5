package routeplan

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	"tracking/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var planColumns = []string{
	"id", "driver_id", "order_id", "total_distance_km", "provider", "raw_response", "created_at",
}

type Repository struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
	}
}

// Save пишет план и его стопы в одной транзакции. Планы не обновляются.
func (r *Repository) Save(ctx context.Context, plan entities.RoutePlan) error {
	planModel, stopModels := FromDomain(&plan)

	return r.txManager.Do(ctx, func(ctx context.Context) error {
		query := `INSERT INTO route_plans (id, driver_id, order_id, total_distance_km, provider, raw_response, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := r.querier.Exec(
			ctx,
			query,
			planModel.ID,
			planModel.DriverID,
			planModel.OrderID,
			planModel.TotalDistanceKm,
			planModel.Provider,
			planModel.RawResponse,
			planModel.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("unexpected route plan repository save error: %w", err)
		}

		if len(stopModels) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, s := range stopModels {
			batch.Queue(
				`INSERT INTO route_plan_stops (plan_id, position, latitude, longitude, order_id, kind, eta_seconds)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				planModel.ID, s.Position, s.Latitude, s.Longitude, s.OrderID, s.Kind, s.ETASeconds,
			)
		}

		results := r.querier.SendBatch(ctx, batch)
		for range stopModels {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("unexpected route plan repository save stops error: %w", err)
			}
		}

		if err := results.Close(); err != nil {
			return fmt.Errorf("unexpected route plan repository save stops error: %w", err)
		}
		return nil
	})
}

// LatestForDriver - самый новый план по created_at, при равенстве по порядку вставки.
func (r *Repository) LatestForDriver(ctx context.Context, driverID string) (*entities.RoutePlan, error) {
	query, args, err := qb.
		Select(planColumns...).
		From("route_plans").
		Where(sq.Eq{"driver_id": driverID}).
		OrderBy("created_at DESC", "insert_sequence DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route plan repository latestfordriver error: %w", err)
	}

	return r.loadPlan(ctx, query, args...)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.RoutePlan, error) {
	query, args, err := qb.
		Select(planColumns...).
		From("route_plans").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route plan repository getbyid error: %w", err)
	}

	return r.loadPlan(ctx, query, args...)
}

func (r *Repository) loadPlan(ctx context.Context, query string, args ...any) (*entities.RoutePlan, error) {
	var planModel RoutePlanDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&planModel.ID,
			&planModel.DriverID,
			&planModel.OrderID,
			&planModel.TotalDistanceKm,
			&planModel.Provider,
			&planModel.RawResponse,
			&planModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrPlanNotFound
		}
		return nil, fmt.Errorf("unexpected route plan repository load error: %w", err)
	}

	stops, err := r.loadStops(ctx, planModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&planModel, stops), nil
}

func (r *Repository) loadStops(ctx context.Context, planID string) ([]StopDB, error) {
	query := `SELECT position, latitude, longitude, order_id, kind, eta_seconds
		FROM route_plan_stops
		WHERE plan_id = $1
		ORDER BY position`

	rows, err := r.querier.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route plan repository load stops error: %w", err)
	}
	defer rows.Close()

	stops := make([]StopDB, 0, 4)
	for rows.Next() {
		var s StopDB
		if err := rows.Scan(&s.Position, &s.Latitude, &s.Longitude, &s.OrderID, &s.Kind, &s.ETASeconds); err != nil {
			return nil, fmt.Errorf("unexpected route plan repository load stops error: %w", err)
		}
		stops = append(stops, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route plan repository load stops error: %w", err)
	}
	return stops, nil
}
