// AngelaMos | 2026
// parser_test.go

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCropAssessmentWellFormed(t *testing.T) {
	raw := "Growth Status: Optimal\n" +
		"Reason: Good soil and seasonal rain\n" +
		"Best Planting Period: October to November"

	a := ParseCropAssessment(raw)

	assert.Equal(t, "Optimal", a.GrowthStatus)
	assert.Equal(t, "Good soil and seasonal rain", a.GrowthReason)
	assert.Equal(t, "October to November", a.BestPlantingPeriod)
}

func TestParseCropAssessmentInvalidStatus(t *testing.T) {
	raw := "Growth Status: Excellent\n" +
		"Reason: Model went off script\n" +
		"Best Planting Period: October to November"

	a := ParseCropAssessment(raw)

	assert.Equal(t, "Needs Attention", a.GrowthStatus)
	assert.Equal(t, "AI returned invalid status", a.GrowthReason)
}

func TestParseCropAssessmentShortPeriod(t *testing.T) {
	raw := "Growth Status: Poor\n" +
		"Reason: Too dry for planting\n" +
		"Best Planting Period: October"

	a := ParseCropAssessment(raw)

	assert.Equal(t, "Poor", a.GrowthStatus)
	assert.Equal(t, "October to November", a.BestPlantingPeriod)
	assert.Equal(t, "Invalid period format adjusted", a.GrowthReason)
}

func TestParseCropAssessmentEmptyInput(t *testing.T) {
	a := ParseCropAssessment("")

	assert.Equal(t, "Needs Attention", a.GrowthStatus)
	assert.Equal(t, "No reason provided", a.GrowthReason)
	assert.Equal(t, "October to November", a.BestPlantingPeriod)
}

func TestParseCropAssessmentSanitizesFields(t *testing.T) {
	raw := "Growth Status: Optimal\n" +
		"Reason: Great soil, mild rain!\n" +
		"Best Planting Period: October to November*"

	a := ParseCropAssessment(raw)

	assert.Equal(t, "Great soil mild rain", a.GrowthReason)
	assert.Equal(t, "October to November", a.BestPlantingPeriod)
}

func TestParseCropAssessmentIgnoresSurroundingNoise(t *testing.T) {
	raw := "Here is my assessment:\n" +
		"  Growth Status: Poor\n" +
		"Reason: Frost risk in this period\n" +
		"Best Planting Period: early October to November\n" +
		"Good luck with the harvest!"

	a := ParseCropAssessment(raw)

	assert.Equal(t, "Poor", a.GrowthStatus)
	assert.Equal(t, "Frost risk in this period", a.GrowthReason)
	assert.Equal(t, "early October to November", a.BestPlantingPeriod)
}

func TestParseIrrigationAdviceWellFormed(t *testing.T) {
	raw := "Irrigation Frequency: daily\n" +
		"Water Amount: 3000 liters per hectare\n" +
		"Reason: Hot dry weather expected"

	p := ParseIrrigationAdvice(raw)

	assert.Equal(t, "daily", p.Frequency)
	assert.Equal(t, "3000 liters per hectare", p.WaterAmount)
	assert.Equal(t, "Hot dry weather expected", p.Reason)
}

func TestParseIrrigationAdviceDefaults(t *testing.T) {
	p := ParseIrrigationAdvice("complete nonsense from the model")

	assert.Equal(t, "weekly", p.Frequency)
	assert.Equal(t, "5000 liters per hectare", p.WaterAmount)
	assert.Equal(t, "Default irrigation plan", p.Reason)
}

func TestParseIrrigationAdviceSanitizes(t *testing.T) {
	raw := "Irrigation Frequency: twice-weekly!\n" +
		"Water Amount: ~4000 liters per hectare\n" +
		"Reason: Moderate humidity, some rain."

	p := ParseIrrigationAdvice(raw)

	assert.Equal(t, "twice-weekly", p.Frequency)
	assert.Equal(t, "4000 liters per hectare", p.WaterAmount)
	assert.Equal(t, "Moderate humidity some rain", p.Reason)
}
