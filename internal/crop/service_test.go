// AngelaMos | 2026
// service_test.go

package crop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajathRavikumar/SmartAgri/internal/weather"
)

type stubRepo struct {
	growth     []*GrowthRecord
	irrigation []*IrrigationPlan
}

func (r *stubRepo) SaveGrowthRecord(_ context.Context, rec *GrowthRecord) error {
	r.growth = append(r.growth, rec)
	return nil
}

func (r *stubRepo) SaveIrrigationPlan(
	_ context.Context,
	plan *IrrigationPlan,
) error {
	r.irrigation = append(r.irrigation, plan)
	return nil
}

type stubWeather struct {
	snapshot *weather.Snapshot
	err      error
}

func (w *stubWeather) Current(
	_ context.Context,
	_ string,
) (*weather.Snapshot, error) {
	return w.snapshot, w.err
}

type stubAI struct {
	reply  string
	prompt string
}

func (a *stubAI) GenerateText(_ context.Context, prompt string) (string, error) {
	a.prompt = prompt
	return a.reply, nil
}

func testDeps(reply string) (*stubRepo, *stubWeather, *stubAI) {
	return &stubRepo{},
		&stubWeather{snapshot: &weather.Snapshot{
			Temperature: 26.5,
			Humidity:    55,
			Conditions:  "scattered clouds",
		}},
		&stubAI{reply: reply}
}

func TestAnalyzeGrowthPersistsRepairedAssessment(t *testing.T) {
	repo, ws, ai := testDeps(
		"Growth Status: Optimal\n" +
			"Reason: Seasonal conditions are favorable\n" +
			"Best Planting Period: October to November")
	svc := NewService(repo, ws, ai)

	record, err := svc.AnalyzeGrowth(
		context.Background(),
		"farmer@example.com",
		GrowthRequest{
			CropType:     "wheat",
			Location:     "Bangalore",
			PlantingDate: "05/10/2025",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "farmer@example.com", record.Email)
	assert.Equal(t, "2025-10-05", record.PlantingDate)
	assert.Equal(t, NotProvided, record.SoilQuality)
	assert.Equal(t, "Optimal", record.GrowthStatus)
	assert.Equal(t, "scattered clouds", record.WeatherConditions)
	assert.Equal(t, 26.5, record.Temperature)

	require.Len(t, repo.growth, 1)
	assert.Same(t, record, repo.growth[0])

	assert.Contains(t, ai.prompt, "- Crop Type: wheat")
	assert.Contains(t, ai.prompt, "- Planting Date: 2025-10-05")
	assert.Contains(t, ai.prompt, "Typical October weather: 25-28C")
}

func TestAnalyzeGrowthInvalidDate(t *testing.T) {
	repo, ws, ai := testDeps("irrelevant")
	svc := NewService(repo, ws, ai)

	_, err := svc.AnalyzeGrowth(
		context.Background(),
		"farmer@example.com",
		GrowthRequest{
			CropType:     "wheat",
			Location:     "Bangalore",
			PlantingDate: "2025-10-05",
		},
	)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, repo.growth)
}

func TestAnalyzeGrowthUnknownLocation(t *testing.T) {
	repo, ws, ai := testDeps("irrelevant")
	ws.snapshot = nil
	ws.err = weather.ErrInvalidLocation
	svc := NewService(repo, ws, ai)

	_, err := svc.AnalyzeGrowth(
		context.Background(),
		"farmer@example.com",
		GrowthRequest{CropType: "wheat", Location: "Nowheresville"},
	)
	assert.ErrorIs(t, err, weather.ErrInvalidLocation)
}

func TestAnalyzeGrowthRepairsBadModelOutput(t *testing.T) {
	repo, ws, ai := testDeps("Growth Status: Amazing\nsome rambling text")
	svc := NewService(repo, ws, ai)

	record, err := svc.AnalyzeGrowth(
		context.Background(),
		"farmer@example.com",
		GrowthRequest{CropType: "wheat", Location: "Bangalore"},
	)
	require.NoError(t, err)

	assert.Equal(t, "Needs Attention", record.GrowthStatus)
	assert.Equal(t, "AI returned invalid status", record.GrowthReason)
	assert.Equal(t, "October to November", record.BestPlantingPeriod)
}

func TestPlanIrrigationPersistsAdvice(t *testing.T) {
	repo, ws, ai := testDeps(
		"Irrigation Frequency: daily\n" +
			"Water Amount: 3000 liters per hectare\n" +
			"Reason: Hot dry weather expected")
	svc := NewService(repo, ws, ai)

	plan, err := svc.PlanIrrigation(
		context.Background(),
		"farmer@example.com",
		IrrigationRequest{CropType: "rice", Location: "Bangalore"},
	)
	require.NoError(t, err)

	assert.Equal(t, "daily", plan.IrrigationFrequency)
	assert.Equal(t, "3000 liters per hectare", plan.WaterAmount)
	assert.Equal(t, NotProvided, plan.GrowthStage)
	assert.Equal(t, NotProvided, plan.PlantingDate)

	require.Len(t, repo.irrigation, 1)
	assert.Contains(t, ai.prompt, "- Growth Stage: Not provided")
}
