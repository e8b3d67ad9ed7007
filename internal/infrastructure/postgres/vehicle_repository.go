package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleColumns = `id, vin, make, model, year, color, status, customer_id,
	declared_value, created_at, updated_at`

// VehicleRepo implements the VehicleRepository port over PostgreSQL.
type VehicleRepo struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository builds the persistence adapter for vehicles.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

// Create persists a new vehicle.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, vin, make, model, year, color, status, customer_id,
			declared_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.VIN, v.Make, v.Model, v.Year, v.Color, v.Status, v.CustomerID,
		v.DeclaredValue, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID fetches a vehicle by id; (nil, nil) when absent.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := r.pool.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id).Scan(
		&v.ID, &v.VIN, &v.Make, &v.Model, &v.Year, &v.Color, &v.Status, &v.CustomerID,
		&v.DeclaredValue, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	return &v, nil
}

// List returns vehicles newest first, optionally filtered by status.
func (r *VehicleRepo) List(ctx context.Context, status string) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(
			&v.ID, &v.VIN, &v.Make, &v.Model, &v.Year, &v.Color, &v.Status, &v.CustomerID,
			&v.DeclaredValue, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update rewrites the mutable fields of a vehicle.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET vin = $2, make = $3, model = $4, year = $5, color = $6,
			status = $7, customer_id = $8, declared_value = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.VIN, v.Make, v.Model, v.Year, v.Color,
		v.Status, v.CustomerID, v.DeclaredValue, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle by id.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
