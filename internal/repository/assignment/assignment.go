package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	assignmentservice "tracking/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var assignmentColumns = []string{
	"order_id", "driver_id",
	"pickup_latitude", "pickup_longitude",
	"dropoff_latitude", "dropoff_longitude",
	"status", "assigned_at",
}

var activeStatuses = []string{
	entities.AssignmentAssigned.String(),
	entities.AssignmentPickedUp.String(),
}

// Repository - read model назначений, который поддерживает worker из Kafka.
type Repository struct {
	querier   Querier
	txManager TxManager
	positions PositionLocator
}

func New(querier Querier, txManager TxManager, positions PositionLocator) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
		positions: positions,
	}
}

// Upsert создает или переназначает заказ. Возвращает прежнего водителя, если он был.
func (r *Repository) Upsert(ctx context.Context, a entities.Assignment) (string, error) {
	model := FromDomain(&a)
	query := `WITH prev AS (
			SELECT driver_id FROM order_assignments WHERE order_id = $1
		)
		INSERT INTO order_assignments (
			order_id, driver_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			status, assigned_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO UPDATE SET
			driver_id         = EXCLUDED.driver_id,
			pickup_latitude   = EXCLUDED.pickup_latitude,
			pickup_longitude  = EXCLUDED.pickup_longitude,
			dropoff_latitude  = EXCLUDED.dropoff_latitude,
			dropoff_longitude = EXCLUDED.dropoff_longitude,
			status            = EXCLUDED.status,
			assigned_at       = EXCLUDED.assigned_at,
			updated_at        = NOW()
		RETURNING COALESCE((SELECT driver_id FROM prev), '')`

	var previousDriverID string
	err := r.querier.QueryRow(
		ctx,
		query,
		model.OrderID,
		model.DriverID,
		model.PickupLatitude,
		model.PickupLongitude,
		model.DropoffLatitude,
		model.DropoffLongitude,
		model.Status,
		model.AssignedAt,
	).Scan(&previousDriverID)
	if err != nil {
		return "", fmt.Errorf("unexpected assignment repository upsert error: %w", err)
	}

	return previousDriverID, nil
}

// UpdateStatus меняет статус активного назначения под блокировкой строки.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	orderID string,
	status entities.AssignmentStatusType,
) (*entities.Assignment, error) {
	var updated *entities.Assignment

	err := r.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		query, args, err := qb.
			Select(assignmentColumns...).
			From("order_assignments").
			Where(sq.Eq{"order_id": orderID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("unexpected assignment repository updatestatus error: %w", err)
		}

		var model AssignmentDB
		if err := scanAssignment(r.querier.QueryRow(ctx, query, args...), &model); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return assignmentservice.ErrAssignmentNotFound
			}
			return fmt.Errorf("unexpected assignment repository updatestatus error: %w", err)
		}

		current := ToDomain(&model)
		if !current.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", assignmentservice.ErrAssignmentClosed, current.Status, status)
		}

		_, err = r.querier.Exec(ctx,
			`UPDATE order_assignments SET status = $2, updated_at = NOW() WHERE order_id = $1`,
			orderID, status.String(),
		)
		if err != nil {
			return fmt.Errorf("unexpected assignment repository updatestatus error: %w", err)
		}

		current.Status = status
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetOpenStopsForDriver раскладывает активные заказы водителя на стопы в порядке назначения.
func (r *Repository) GetOpenStopsForDriver(ctx context.Context, driverID string) ([]entities.Stop, error) {
	query, args, err := qb.
		Select(assignmentColumns...).
		From("order_assignments").
		Where(sq.Eq{"driver_id": driverID, "status": activeStatuses}).
		OrderBy("assigned_at", "order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getopenstops error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getopenstops error: %w", err)
	}
	defer rows.Close()

	stops := make([]entities.Stop, 0, 4)
	for rows.Next() {
		var model AssignmentDB
		if err := scanAssignment(rows, &model); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository getopenstops error: %w", err)
		}
		stops = append(stops, ToDomain(&model).OpenStops()...)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getopenstops error: %w", err)
	}

	return stops, nil
}

// GetDriverLocation возвращает route.ErrDriverLocationUnknown, если пингов не было.
func (r *Repository) GetDriverLocation(ctx context.Context, driverID string) (*entities.Location, error) {
	report, err := r.positions.LatestForDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	location := report.Location()
	return &location, nil
}

func scanAssignment(row pgx.Row, a *AssignmentDB) error {
	return row.Scan(
		&a.OrderID,
		&a.DriverID,
		&a.PickupLatitude,
		&a.PickupLongitude,
		&a.DropoffLatitude,
		&a.DropoffLongitude,
		&a.Status,
		&a.AssignedAt,
	)
}
