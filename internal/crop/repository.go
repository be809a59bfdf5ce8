// AngelaMos | 2026
// repository.go

package crop

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/RajathRavikumar/SmartAgri/internal/core"
)

type Repository interface {
	SaveGrowthRecord(ctx context.Context, rec *GrowthRecord) error
	SaveIrrigationPlan(ctx context.Context, plan *IrrigationPlan) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// SaveGrowthRecord inserts the record and fills its Timestamp from the
// database default.
func (r *repository) SaveGrowthRecord(
	ctx context.Context,
	rec *GrowthRecord,
) error {
	query := `
		INSERT INTO crop_growth_analyses (
			id, email, crop_type, location, planting_date, soil_quality,
			growth_stage, soil_nutrients, weather_conditions, temperature,
			humidity, growth_status, growth_reason, best_planting_period
		)
		VALUES (
			:id, :email, :crop_type, :location, :planting_date, :soil_quality,
			:growth_stage, :soil_nutrients, :weather_conditions, :temperature,
			:humidity, :growth_status, :growth_reason, :best_planting_period
		)
		RETURNING timestamp`

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, rec)
	if err != nil {
		return fmt.Errorf("insert growth record: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	if rows.Next() {
		if err := rows.Scan(&rec.Timestamp); err != nil {
			return fmt.Errorf("scan growth record timestamp: %w", err)
		}
	}
	return rows.Err()
}

func (r *repository) SaveIrrigationPlan(
	ctx context.Context,
	plan *IrrigationPlan,
) error {
	query := `
		INSERT INTO irrigation_plans (
			id, email, crop_type, location, planting_date, growth_stage,
			weather_conditions, temperature, humidity,
			irrigation_frequency, water_amount, reason
		)
		VALUES (
			:id, :email, :crop_type, :location, :planting_date, :growth_stage,
			:weather_conditions, :temperature, :humidity,
			:irrigation_frequency, :water_amount, :reason
		)
		RETURNING timestamp`

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, plan)
	if err != nil {
		return fmt.Errorf("insert irrigation plan: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	if rows.Next() {
		if err := rows.Scan(&plan.Timestamp); err != nil {
			return fmt.Errorf("scan irrigation plan timestamp: %w", err)
		}
	}
	return rows.Err()
}
