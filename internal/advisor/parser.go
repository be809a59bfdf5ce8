// AngelaMos | 2026
// parser.go

package advisor

import "strings"

// CropAssessment is the parsed, repaired, sanitized result of a
// crop-growth prompt.
type CropAssessment struct {
	GrowthStatus       string
	GrowthReason       string
	BestPlantingPeriod string
}

// IrrigationAdvice is the parsed, sanitized result of an irrigation
// prompt. Its fields have no enum to enforce, so repair is sanitization
// plus line-level defaults only.
type IrrigationAdvice struct {
	Frequency   string
	WaterAmount string
	Reason      string
}

const (
	defaultGrowthStatus   = "Needs Attention"
	defaultGrowthReason   = "No reason provided"
	defaultPlantingPeriod = "October to November"
)

var validStatuses = map[string]struct{}{
	"Optimal":         {},
	"Poor":            {},
	"Needs Attention": {},
}

// extractLabeled scans lines of model output and fills dest for each
// label that appears. Missing labels keep their pre-seeded defaults.
func extractLabeled(raw string, dest map[string]*string) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		for label, target := range dest {
			if strings.HasPrefix(line, label) {
				*target = strings.TrimSpace(strings.TrimPrefix(line, label))
			}
		}
	}
}

// ParseCropAssessment parses the three-line assessment format. A status
// outside the allowed set, or a planting period under three words, is
// replaced by the default and noted in the reason. All fields are
// sanitized to letters, digits, spaces, and hyphens.
func ParseCropAssessment(raw string) CropAssessment {
	a := CropAssessment{
		GrowthStatus:       defaultGrowthStatus,
		GrowthReason:       defaultGrowthReason,
		BestPlantingPeriod: defaultPlantingPeriod,
	}

	extractLabeled(raw, map[string]*string{
		"Growth Status:":        &a.GrowthStatus,
		"Reason:":               &a.GrowthReason,
		"Best Planting Period:": &a.BestPlantingPeriod,
	})

	if _, ok := validStatuses[a.GrowthStatus]; !ok {
		a.GrowthStatus = defaultGrowthStatus
		a.GrowthReason = "AI returned invalid status"
	}

	if len(strings.Fields(a.BestPlantingPeriod)) < 3 {
		a.BestPlantingPeriod = defaultPlantingPeriod
		a.GrowthReason = "Invalid period format adjusted"
	}

	a.GrowthStatus = Sanitize(a.GrowthStatus)
	a.GrowthReason = Sanitize(a.GrowthReason)
	a.BestPlantingPeriod = Sanitize(a.BestPlantingPeriod)
	return a
}

// ParseIrrigationAdvice parses the three-line irrigation plan format.
func ParseIrrigationAdvice(raw string) IrrigationAdvice {
	p := IrrigationAdvice{
		Frequency:   "weekly",
		WaterAmount: "5000 liters per hectare",
		Reason:      "Default irrigation plan",
	}

	extractLabeled(raw, map[string]*string{
		"Irrigation Frequency:": &p.Frequency,
		"Water Amount:":         &p.WaterAmount,
		"Reason:":               &p.Reason,
	})

	p.Frequency = Sanitize(p.Frequency)
	p.WaterAmount = Sanitize(p.WaterAmount)
	p.Reason = Sanitize(p.Reason)
	return p
}
