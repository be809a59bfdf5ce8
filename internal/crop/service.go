// AngelaMos | 2026
// service.go

package crop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/RajathRavikumar/SmartAgri/internal/advisor"
	"github.com/RajathRavikumar/SmartAgri/internal/weather"
)

// WeatherSource supplies current conditions for a named location.
type WeatherSource interface {
	Current(ctx context.Context, location string) (*weather.Snapshot, error)
}

// TextGenerator produces a model completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	repo    Repository
	weather WeatherSource
	ai      TextGenerator
}

func NewService(
	repo Repository,
	weatherSource WeatherSource,
	ai TextGenerator,
) *Service {
	return &Service{
		repo:    repo,
		weather: weatherSource,
		ai:      ai,
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return NotProvided
	}
	return s
}

// AnalyzeGrowth runs the full assessment pipeline: normalize the
// planting date, fetch current weather, ask the model, repair and
// sanitize its answer, and persist the record.
func (s *Service) AnalyzeGrowth(
	ctx context.Context,
	email string,
	req GrowthRequest,
) (*GrowthRecord, error) {
	plantingDate, err := NormalizePlantingDate(req.PlantingDate)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.weather.Current(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	prompt := advisor.CropGrowthPrompt(advisor.CropConditions{
		CropType:     req.CropType,
		Location:     req.Location,
		PlantingDate: plantingDate,
		SoilQuality:  orNotProvided(req.SoilQuality),
		Temperature:  snapshot.Temperature,
		Humidity:     snapshot.Humidity,
		Conditions:   snapshot.Conditions,
	})

	raw, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("crop growth generation: %w", err)
	}

	assessment := advisor.ParseCropAssessment(raw)

	record := &GrowthRecord{
		ID:                 uuid.New(),
		Email:              email,
		CropType:           req.CropType,
		Location:           req.Location,
		PlantingDate:       plantingDate,
		SoilQuality:        orNotProvided(req.SoilQuality),
		GrowthStage:        req.GrowthStage,
		SoilNutrients:      req.SoilNutrients,
		WeatherConditions:  snapshot.Conditions,
		Temperature:        snapshot.Temperature,
		Humidity:           snapshot.Humidity,
		GrowthStatus:       assessment.GrowthStatus,
		GrowthReason:       assessment.GrowthReason,
		BestPlantingPeriod: assessment.BestPlantingPeriod,
	}

	if err := s.repo.SaveGrowthRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// PlanIrrigation mirrors AnalyzeGrowth for the irrigation flow.
func (s *Service) PlanIrrigation(
	ctx context.Context,
	email string,
	req IrrigationRequest,
) (*IrrigationPlan, error) {
	plantingDate, err := NormalizePlantingDate(req.PlantingDate)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.weather.Current(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	growthStage := orNotProvided(req.GrowthStage)

	prompt := advisor.IrrigationPrompt(advisor.IrrigationConditions{
		CropType:     req.CropType,
		Location:     req.Location,
		PlantingDate: plantingDate,
		GrowthStage:  growthStage,
		Temperature:  snapshot.Temperature,
		Humidity:     snapshot.Humidity,
		Conditions:   snapshot.Conditions,
	})

	raw, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("irrigation plan generation: %w", err)
	}

	advice := advisor.ParseIrrigationAdvice(raw)

	plan := &IrrigationPlan{
		ID:                  uuid.New(),
		Email:               email,
		CropType:            req.CropType,
		Location:            req.Location,
		PlantingDate:        plantingDate,
		GrowthStage:         growthStage,
		WeatherConditions:   snapshot.Conditions,
		Temperature:         snapshot.Temperature,
		Humidity:            snapshot.Humidity,
		IrrigationFrequency: advice.Frequency,
		WaterAmount:         advice.WaterAmount,
		Reason:              advice.Reason,
	}

	if err := s.repo.SaveIrrigationPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
