// AngelaMos | 2026
// dto.go

package crop

// GrowthRequest is the /analyze_crop_growth payload. CropType and
// Location are required; everything else is optional context for the
// model.
type GrowthRequest struct {
	CropType      string `json:"crop_type"`
	Location      string `json:"location"`
	PlantingDate  string `json:"planting_date"`
	SoilQuality   string `json:"soil_quality"`
	GrowthStage   string `json:"growth_stage"`
	SoilNutrients string `json:"soil_nutrients"`
}

// IrrigationRequest is the /irrigation_plan payload.
type IrrigationRequest struct {
	CropType     string `json:"crop_type"`
	Location     string `json:"location"`
	PlantingDate string `json:"planting_date"`
	GrowthStage  string `json:"growth_stage"`
}
