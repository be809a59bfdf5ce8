// AngelaMos | 2026
// prompt.go

package advisor

import (
	"fmt"
	"strings"
	"time"
)

// DetectLanguagePrompt asks the model to classify the language of a text
// and reply with a bare language code.
func DetectLanguagePrompt(text string) string {
	return fmt.Sprintf(
		"Detect the language of this text: '%s'. "+
			"Return only the language code (e.g., 'en', 'kn', 'hi', 'sp', 'te').",
		text,
	)
}

// ChatPrompt frames a farming question for the chatbot, pinned to a
// single response language.
func ChatPrompt(query, langCode string) string {
	return fmt.Sprintf(
		"Agriculture expert chatbot. Answer this question: '%s'. "+
			"Respond only in %s, do not include any other language.",
		query, LanguageName(langCode),
	)
}

// DiseaseImagePrompt instructs the model to diagnose a plant disease
// from an attached image.
func DiseaseImagePrompt(langCode string) string {
	return fmt.Sprintf(
		"Identify the plant disease and provide its name, causes, and "+
			"treatment. Respond in %s.",
		LanguageName(langCode),
	)
}

// DiseaseDescriptionPrompt instructs the model to diagnose from a
// written symptom description.
func DiseaseDescriptionPrompt(description, langCode string) string {
	return fmt.Sprintf(
		"Based on this description: '%s', identify the plant disease and "+
			"provide its name, causes, and treatment. "+
			"Respond only in %s, do not include any other language.",
		description, LanguageName(langCode),
	)
}

// CropConditions carries the inputs for a crop-growth assessment prompt.
type CropConditions struct {
	CropType     string
	Location     string
	PlantingDate string
	SoilQuality  string
	Temperature  float64
	Humidity     float64
	Conditions   string
}

// CropGrowthPrompt builds the structured assessment prompt. The seasonal
// reference facts keep the model anchored to local Bangalore climate, and
// the three-line output contract is what ParseCropAssessment expects.
func CropGrowthPrompt(c CropConditions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As an agriculture expert, evaluate this crop's planting conditions:\n")
	fmt.Fprintf(&b, "- Crop Type: %s\n", c.CropType)
	fmt.Fprintf(&b, "- Location: %s\n", c.Location)
	fmt.Fprintf(&b, "- Planting Date: %s\n", c.PlantingDate)
	fmt.Fprintf(&b, "- Soil Quality: %s\n", c.SoilQuality)
	fmt.Fprintf(&b, "- Current Date: %s (reference only, ignore for status)\n",
		time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "- Current Temperature: %.1fC (reference only)\n", c.Temperature)
	fmt.Fprintf(&b, "- Current Humidity: %.0f%% (reference only)\n", c.Humidity)
	fmt.Fprintf(&b, "- Current Weather: %s (reference only)\n", c.Conditions)
	fmt.Fprintf(&b, "For %s (Bangalore, India):\n", c.Location)
	b.WriteString("- Typical October weather: 25-28C, moderate rain\n")
	b.WriteString("- Typical November weather: 20-25C, dry\n")
	b.WriteString("- Typical December weather: 18-23C, dry\n")
	b.WriteString("- Wheat planting season: October to early December\n")
	fmt.Fprintf(&b, "Base growth status only on typical weather and soil for %s.\n",
		c.PlantingDate)
	b.WriteString("Return exactly three lines in this format:\n")
	b.WriteString("Growth Status: [Optimal, Poor, or Needs Attention]\n")
	b.WriteString("Reason: [one sentence, max 10 words]\n")
	b.WriteString("Best Planting Period: [e.g., October to November]\n")
	b.WriteString("Default to 'Needs Attention' if unsure.\n")
	b.WriteString("Use only letters, numbers, spaces, and hyphens.")
	return b.String()
}

// IrrigationConditions carries the inputs for an irrigation plan prompt.
type IrrigationConditions struct {
	CropType     string
	Location     string
	PlantingDate string
	GrowthStage  string
	Temperature  float64
	Humidity     float64
	Conditions   string
}

// IrrigationPrompt builds the three-line irrigation plan prompt consumed
// by ParseIrrigationAdvice.
func IrrigationPrompt(c IrrigationConditions) string {
	var b strings.Builder
	b.WriteString("As an irrigation expert, create a plan for this crop:\n")
	fmt.Fprintf(&b, "- Crop Type: %s\n", c.CropType)
	fmt.Fprintf(&b, "- Location: %s\n", c.Location)
	fmt.Fprintf(&b, "- Planting Date: %s\n", c.PlantingDate)
	fmt.Fprintf(&b, "- Growth Stage: %s\n", c.GrowthStage)
	fmt.Fprintf(&b, "- Current Temperature: %.1fC\n", c.Temperature)
	fmt.Fprintf(&b, "- Current Humidity: %.0f%%\n", c.Humidity)
	fmt.Fprintf(&b, "- Current Weather: %s\n", c.Conditions)
	fmt.Fprintf(&b, "For %s (Bangalore, India):\n", c.Location)
	b.WriteString("- Typical October: 25-28C, moderate rain\n")
	b.WriteString("- Typical November: 20-25C, dry\n")
	b.WriteString("- Typical December: 18-23C, dry\n")
	b.WriteString("Return exactly three lines in this format:\n")
	b.WriteString("Irrigation Frequency: [e.g., daily, weekly]\n")
	b.WriteString("Water Amount: [e.g., X liters per hectare]\n")
	b.WriteString("Reason: [one sentence, max 10 words]\n")
	b.WriteString("Base plan on current weather and typical seasonal conditions.\n")
	b.WriteString("Use only letters, numbers, spaces, and hyphens.")
	return b.String()
}
