package position

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

var positionColumns = []string{
	"id", "order_id", "driver_id", "latitude", "longitude",
	"speed", "heading", "recorded_at", "ingest_sequence",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет точку, ingest_sequence выдает BIGSERIAL.
func (r *Repository) Append(ctx context.Context, report entities.PositionReport) (*entities.PositionReport, error) {
	positionModel := FromDomain(&report)
	query := `INSERT INTO position_reports (id, order_id, driver_id, latitude, longitude, speed, heading, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ingest_sequence`

	err := r.querier.QueryRow(
		ctx,
		query,
		positionModel.ID,
		positionModel.OrderID,
		positionModel.DriverID,
		positionModel.Latitude,
		positionModel.Longitude,
		positionModel.Speed,
		positionModel.Heading,
		positionModel.RecordedAt,
	).Scan(&positionModel.IngestSequence)
	if err != nil {
		return nil, fmt.Errorf("unexpected position repository append error: %w", err)
	}

	return ToDomain(positionModel), nil
}

// ListRecent - последние точки заказа, новые первыми.
func (r *Repository) ListRecent(ctx context.Context, orderID string, limit int) ([]entities.PositionReport, error) {
	if limit <= 0 {
		return []entities.PositionReport{}, nil
	}

	query, args, err := qb.
		Select(positionColumns...).
		From("position_reports").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("ingest_sequence DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected position repository listrecent error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected position repository listrecent error: %w", err)
	}
	defer rows.Close()

	positionModels := make([]PositionDB, 0, limit)
	for rows.Next() {
		var positionModel PositionDB
		if err := scanPosition(rows, &positionModel); err != nil {
			return nil, fmt.Errorf("unexpected position repository listrecent error: %w", err)
		}
		positionModels = append(positionModels, positionModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected position repository listrecent error: %w", err)
	}

	return ToDomainList(positionModels), nil
}

// LatestForDriver - последняя точка водителя по всем заказам.
func (r *Repository) LatestForDriver(ctx context.Context, driverID string) (*entities.PositionReport, error) {
	query, args, err := qb.
		Select(positionColumns...).
		From("position_reports").
		Where(sq.Eq{"driver_id": driverID}).
		OrderBy("ingest_sequence DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected position repository latestfordriver error: %w", err)
	}

	var positionModel PositionDB
	if err := scanPosition(r.querier.QueryRow(ctx, query, args...), &positionModel); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrDriverLocationUnknown
		}
		return nil, fmt.Errorf("unexpected position repository latestfordriver error: %w", err)
	}

	return ToDomain(&positionModel), nil
}

func scanPosition(row pgx.Row, p *PositionDB) error {
	return row.Scan(
		&p.ID,
		&p.OrderID,
		&p.DriverID,
		&p.Latitude,
		&p.Longitude,
		&p.Speed,
		&p.Heading,
		&p.RecordedAt,
		&p.IngestSequence,
	)
}
