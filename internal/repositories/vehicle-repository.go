package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"contract-system/internal/entities"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/types"
)

const vehicleTable = "vehicles"

var vehicleMap = map[string]string{
	"id":         "v.id",
	"so_khung":   "v.vin",
	"dong_xe":    "v.model",
	"tinh_trang": "v.status",
	"ma_dms":     "v.branch_code",
	"created_at": "v.created_at",
}

var vehicleColumns = []string{
	"v.id", "v.vin", "v.model", "v.variant", "v.exterior", "v.interior",
	"v.listed_price", "v.status", "v.branch_code",
	"v.created_at", "v.updated_at",
}

type VehicleRepositoryInterface interface {
	GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error)
	FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (uint64, error)
	UpdateVehicleStatus(ctx context.Context, id uint64, status string) error
	DeleteVehicle(ctx context.Context, id uint64) error
}

type VehicleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVehicleRepository(storage *pgxpool.Pool, logger *zap.Logger) VehicleRepositoryInterface {
	return &VehicleRepository{storage: storage, logger: logger}
}

func scanVehicle(row pgx.Row) (*entities.Vehicle, error) {
	var v entities.Vehicle

	err := row.Scan(
		&v.ID, &v.VIN, &v.Model, &v.Variant, &v.Exterior, &v.Interior,
		&v.ListedPrice, &v.Status, &v.BranchCode,
		&v.CreatedAt, &v.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lỗi scan vehicle: %w", err)
	}

	return &v, nil
}

func (r *VehicleRepository) GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"v.vin": pat},
				sq.ILike{"v.model": pat},
			})
		}
		return b
	}

	applyFilters := func(b sq.SelectBuilder) sq.SelectBuilder {
		for field, value := range filter.Filter {
			if col, ok := vehicleMap[field]; ok {
				b = b.Where(sq.Eq{col: value})
			}
		}
		return b
	}

	countBuilder := applyFilters(applySearch(
		psql.Select("COUNT(v.id)").From(vehicleTable + " AS v"),
	))

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Vehicle{}, 0, nil
	}

	baseBuilder := applyFilters(applySearch(
		psql.Select(vehicleColumns...).From(vehicleTable + " AS v"),
	)).OrderBy("v.id DESC")

	if filter.Limit > 0 {
		baseBuilder = baseBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		baseBuilder = baseBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vehicles := make([]entities.Vehicle, 0, filter.Limit)
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *vehicle)
	}

	return vehicles, total, nil
}

func (r *VehicleRepository) FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(vehicleColumns...).
		From(vehicleTable + " AS v").
		Where(sq.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanVehicle(r.storage.QueryRow(ctx, query, args...))
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (uint64, error) {
	query := `
		INSERT INTO vehicles (vin, model, variant, exterior, interior, listed_price, status, branch_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		vehicle.VIN, vehicle.Model, vehicle.Variant, vehicle.Exterior, vehicle.Interior,
		vehicle.ListedPrice, vehicle.Status, vehicle.BranchCode,
	).Scan(&newID)

	return newID, err
}

func (r *VehicleRepository) UpdateVehicleStatus(ctx context.Context, id uint64, status string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE vehicles SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
