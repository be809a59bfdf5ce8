// AngelaMos | 2026
// entity.go

// Package crop runs the AI-backed crop-growth assessment and irrigation
// planning flows and persists their results.
package crop

import (
	"time"

	"github.com/google/uuid"
)

// GrowthRecord is a saved crop-growth assessment. PlantingDate is the
// normalized YYYY-MM-DD string, or "Not provided".
type GrowthRecord struct {
	ID                 uuid.UUID `db:"id"                   json:"-"`
	Email              string    `db:"email"                json:"email"`
	CropType           string    `db:"crop_type"            json:"crop_type"`
	Location           string    `db:"location"             json:"location"`
	PlantingDate       string    `db:"planting_date"        json:"planting_date"`
	SoilQuality        string    `db:"soil_quality"         json:"soil_quality"`
	GrowthStage        string    `db:"growth_stage"         json:"growth_stage"`
	SoilNutrients      string    `db:"soil_nutrients"       json:"soil_nutrients"`
	WeatherConditions  string    `db:"weather_conditions"   json:"weather_conditions"`
	Temperature        float64   `db:"temperature"          json:"temperature"`
	Humidity           float64   `db:"humidity"             json:"humidity"`
	GrowthStatus       string    `db:"growth_status"        json:"growth_status"`
	GrowthReason       string    `db:"growth_reason"        json:"growth_reason"`
	BestPlantingPeriod string    `db:"best_planting_period" json:"best_planting_period"`
	Timestamp          time.Time `db:"timestamp"            json:"timestamp"`
}

// IrrigationPlan is a saved irrigation recommendation.
type IrrigationPlan struct {
	ID                  uuid.UUID `db:"id"                   json:"-"`
	Email               string    `db:"email"                json:"email"`
	CropType            string    `db:"crop_type"            json:"crop_type"`
	Location            string    `db:"location"             json:"location"`
	PlantingDate        string    `db:"planting_date"        json:"planting_date"`
	GrowthStage         string    `db:"growth_stage"         json:"growth_stage"`
	WeatherConditions   string    `db:"weather_conditions"   json:"weather_conditions"`
	Temperature         float64   `db:"temperature"          json:"temperature"`
	Humidity            float64   `db:"humidity"             json:"humidity"`
	IrrigationFrequency string    `db:"irrigation_frequency" json:"irrigation_frequency"`
	WaterAmount         string    `db:"water_amount"         json:"water_amount"`
	Reason              string    `db:"reason"               json:"reason"`
	Timestamp           time.Time `db:"timestamp"            json:"timestamp"`
}
